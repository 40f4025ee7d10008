package localstore

import (
	"context"
	"errors"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sessionSnapshotName = "session"

// SessionStore implements ports.SessionStore over the snapshot table. The
// session key is the row owner; the stored data is the raw credential.
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore creates a session store over an opened database.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create stores the credential under a freshly minted session key.
func (s *SessionStore) Create(ctx context.Context, credential string) (string, error) {
	key := uuid.NewString()

	dto := SnapshotDTO{
		Owner:     key,
		Name:      sessionSnapshotName,
		Data:      credential,
		UpdatedAt: time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return "", err
	}

	return key, nil
}

// Get returns the credential stored under the session key and refreshes the
// session's timestamp so active sessions outlive the janitor.
func (s *SessionStore) Get(ctx context.Context, sessionKey string) (string, error) {
	var dto SnapshotDTO

	err := s.db.WithContext(ctx).
		Where("owner = ? AND name = ?", sessionKey, sessionSnapshotName).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errs.NewObjectNotFoundError("sessionKey", sessionKey)
	}
	if err != nil {
		return "", err
	}

	s.db.WithContext(ctx).
		Model(&SnapshotDTO{}).
		Where("owner = ? AND name = ?", sessionKey, sessionSnapshotName).
		Update("updated_at", time.Now())

	return dto.Data, nil
}

// Delete removes the session.
func (s *SessionStore) Delete(ctx context.Context, sessionKey string) error {
	return s.db.WithContext(ctx).
		Where("owner = ? AND name = ?", sessionKey, sessionSnapshotName).
		Delete(&SnapshotDTO{}).Error
}

// PruneStale deletes sessions not touched within olderThan.
func (s *SessionStore) PruneStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("name = ? AND updated_at < ?", sessionSnapshotName, time.Now().Add(-olderThan)).
		Delete(&SnapshotDTO{})

	return result.RowsAffected, result.Error
}
