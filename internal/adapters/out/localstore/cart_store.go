package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const cartSnapshotName = "cart"

// CartStore implements ports.CartStore over the snapshot table. Lines are
// stored as a JSON array under the entry name "cart", one row per customer.
type CartStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewCartStore creates a cart store over an opened database.
func NewCartStore(db *gorm.DB, logger *slog.Logger) *CartStore {
	return &CartStore{
		db:     db,
		logger: logger.With("component", "cart_store"),
	}
}

type cartLineDTO struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Load returns the owner's cart. A missing row or a snapshot that no longer
// parses both come back as an empty cart; a corrupt snapshot additionally
// gets logged and deleted so it cannot re-trip every request.
func (s *CartStore) Load(ctx context.Context, owner kernel.ID) (*cart.Cart, error) {
	var dto SnapshotDTO

	err := s.db.WithContext(ctx).
		Where("owner = ? AND name = ?", owner.String(), cartSnapshotName).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cart.NewCart(), nil
	}
	if err != nil {
		return nil, err
	}

	restored, err := s.restore(dto.Data)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable cart snapshot",
			"owner", owner.String(), "error", err)
		_ = s.Clear(ctx, owner)
		return cart.NewCart(), nil
	}

	return restored, nil
}

func (s *CartStore) restore(data string) (*cart.Cart, error) {
	var lineDTOs []cartLineDTO
	if err := json.Unmarshal([]byte(data), &lineDTOs); err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(lineDTOs))
	for _, dto := range lineDTOs {
		foodID, err := kernel.IDFromString(dto.FoodID)
		if err != nil {
			return nil, err
		}
		line, err := cart.RestoreLine(foodID, dto.Name, dto.Price, dto.Quantity, dto.Image)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(lines), nil
}

// Save writes the owner's cart, replacing any previous snapshot.
func (s *CartStore) Save(ctx context.Context, owner kernel.ID, c *cart.Cart) error {
	lines := c.Lines()
	lineDTOs := make([]cartLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, cartLineDTO{
			FoodID:   line.FoodID().String(),
			Name:     line.Name(),
			Price:    line.UnitPrice(),
			Quantity: line.Quantity(),
			Image:    line.Image(),
		})
	}

	data, err := json.Marshal(lineDTOs)
	if err != nil {
		return err
	}

	dto := SnapshotDTO{
		Owner:     owner.String(),
		Name:      cartSnapshotName,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&dto).Error
}

// Clear removes the owner's cart snapshot.
func (s *CartStore) Clear(ctx context.Context, owner kernel.ID) error {
	return s.db.WithContext(ctx).
		Where("owner = ? AND name = ?", owner.String(), cartSnapshotName).
		Delete(&SnapshotDTO{}).Error
}

// PruneStale deletes cart snapshots not touched within olderThan.
func (s *CartStore) PruneStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("name = ? AND updated_at < ?", cartSnapshotName, time.Now().Add(-olderThan)).
		Delete(&SnapshotDTO{})

	return result.RowsAffected, result.Error
}
