// Package localstore persists client-side state in an embedded sqlite
// database: cart snapshots and resumable sessions. Everything here is a
// convenience cache around the remote API; losing the file loses nothing
// the server cannot restate except unplaced carts.
package localstore

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SnapshotDTO is one named blob of client state. Owner is who the state
// belongs to (a customer id for carts, a session key for sessions), Name is
// which kind of state it is.
type SnapshotDTO struct {
	Owner     string `gorm:"primaryKey"`
	Name      string `gorm:"primaryKey"`
	Data      string
	UpdatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "snapshots".
func (SnapshotDTO) TableName() string {
	return "snapshots"
}

// Open opens (or creates) the sqlite database at path and migrates the
// snapshot table. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&SnapshotDTO{}); err != nil {
		return nil, err
	}

	return db, nil
}
