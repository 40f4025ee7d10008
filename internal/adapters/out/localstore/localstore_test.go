package localstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/adapters/out/localstore"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openStore(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := localstore.Open(":memory:")
	require.NoError(t, err)
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func mustFood(t *testing.T, id, name string, price float64) food.Food {
	t.Helper()
	f, err := food.NewFood(mustID(t, id), name, price, "", "")
	require.NoError(t, err)
	return f
}

func TestCartStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewCartStore(openStore(t), discardLogger())
	owner := mustID(t, "customer-1")

	c := cart.NewCart()
	require.NoError(t, c.AddItem(mustFood(t, "pizza", "Pizza", 10), 2))
	require.NoError(t, c.AddItem(mustFood(t, "fries", "Fries", 3), 1))

	require.NoError(t, store.Save(ctx, owner, c))

	loaded, err := store.Load(ctx, owner)

	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Count())
	assert.InDelta(t, 23.0, loaded.Total(), 1e-9)

	lines := loaded.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "pizza", lines[0].FoodID().String())
	assert.Equal(t, "fries", lines[1].FoodID().String())
}

func TestCartStore_Load_MissingSnapshotIsEmptyCart(t *testing.T) {
	store := localstore.NewCartStore(openStore(t), discardLogger())

	loaded, err := store.Load(context.Background(), mustID(t, "nobody"))

	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestCartStore_Load_CorruptSnapshotFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	db := openStore(t)
	store := localstore.NewCartStore(db, discardLogger())
	owner := mustID(t, "customer-1")

	require.NoError(t, db.Create(&localstore.SnapshotDTO{
		Owner:     owner.String(),
		Name:      "cart",
		Data:      "{not json",
		UpdatedAt: time.Now(),
	}).Error)

	loaded, err := store.Load(ctx, owner)

	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())

	// The corrupt row is gone, not waiting to fail again.
	var count int64
	db.Model(&localstore.SnapshotDTO{}).Where("owner = ?", owner.String()).Count(&count)
	assert.Zero(t, count)
}

func TestCartStore_Save_ReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewCartStore(openStore(t), discardLogger())
	owner := mustID(t, "customer-1")

	first := cart.NewCart()
	require.NoError(t, first.AddItem(mustFood(t, "pizza", "Pizza", 10), 1))
	require.NoError(t, store.Save(ctx, owner, first))

	second := cart.NewCart()
	require.NoError(t, second.AddItem(mustFood(t, "fries", "Fries", 3), 2))
	require.NoError(t, store.Save(ctx, owner, second))

	loaded, err := store.Load(ctx, owner)

	require.NoError(t, err)
	require.Len(t, loaded.Lines(), 1)
	assert.Equal(t, "fries", loaded.Lines()[0].FoodID().String())
}

func TestCartStore_CartsAreScopedPerOwner(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewCartStore(openStore(t), discardLogger())

	c := cart.NewCart()
	require.NoError(t, c.AddItem(mustFood(t, "pizza", "Pizza", 10), 1))
	require.NoError(t, store.Save(ctx, mustID(t, "customer-1"), c))

	other, err := store.Load(ctx, mustID(t, "customer-2"))

	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewCartStore(openStore(t), discardLogger())
	owner := mustID(t, "customer-1")

	c := cart.NewCart()
	require.NoError(t, c.AddItem(mustFood(t, "pizza", "Pizza", 10), 1))
	require.NoError(t, store.Save(ctx, owner, c))

	require.NoError(t, store.Clear(ctx, owner))

	loaded, err := store.Load(ctx, owner)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestCartStore_PruneStale(t *testing.T) {
	ctx := context.Background()
	db := openStore(t)
	store := localstore.NewCartStore(db, discardLogger())

	fresh := cart.NewCart()
	require.NoError(t, fresh.AddItem(mustFood(t, "pizza", "Pizza", 10), 1))
	require.NoError(t, store.Save(ctx, mustID(t, "recent"), fresh))

	require.NoError(t, db.Create(&localstore.SnapshotDTO{
		Owner:     "old",
		Name:      "cart",
		Data:      "[]",
		UpdatedAt: time.Now().Add(-60 * 24 * time.Hour),
	}).Error)

	pruned, err := store.PruneStale(ctx, 30*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	kept, err := store.Load(ctx, mustID(t, "recent"))
	require.NoError(t, err)
	assert.False(t, kept.IsEmpty())
}

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewSessionStore(openStore(t))

	key, err := store.Create(ctx, "jwt-token-abc")
	require.NoError(t, err)
	require.NotEmpty(t, key)

	credential, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token-abc", credential)

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Get(ctx, key)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSessionStore_Delete_AbsentSessionIsNoop(t *testing.T) {
	store := localstore.NewSessionStore(openStore(t))

	require.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestSessionStore_PruneStale(t *testing.T) {
	ctx := context.Background()
	db := openStore(t)
	store := localstore.NewSessionStore(db)

	_, err := store.Create(ctx, "fresh-token")
	require.NoError(t, err)

	require.NoError(t, db.Create(&localstore.SnapshotDTO{
		Owner:     "stale-session",
		Name:      "session",
		Data:      "old-token",
		UpdatedAt: time.Now().Add(-14 * 24 * time.Hour),
	}).Error)

	pruned, err := store.PruneStale(ctx, 7*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)
}
