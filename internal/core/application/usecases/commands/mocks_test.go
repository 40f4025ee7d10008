package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) Create(ctx context.Context, req ports.CreateOrderRequest) (*order.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) GetMine(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderGateway) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderGateway) UpdateStatus(
	ctx context.Context, id kernel.ID, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) Cancel(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) AssignRider(
	ctx context.Context, id kernel.ID, riderID kernel.ID,
) (*order.Order, error) {
	args := m.Called(ctx, id, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) GetMyDeliveries(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderGateway) UpdateDeliveryStatus(
	ctx context.Context, id kernel.ID, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockReviewGateway struct{ mock.Mock }

func (m *MockReviewGateway) Create(ctx context.Context, req ports.CreateReviewRequest) (*review.Review, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewGateway) GetMine(ctx context.Context) ([]*review.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

func (m *MockReviewGateway) GetByFood(ctx context.Context, foodID kernel.ID) ([]*review.Review, error) {
	args := m.Called(ctx, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) GetFoods(ctx context.Context) ([]food.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]food.Food), args.Error(1)
}

func (m *MockCatalogGateway) GetFood(ctx context.Context, id kernel.ID) (food.Food, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(food.Food), args.Error(1)
}

func (m *MockCatalogGateway) GetCategories(ctx context.Context) ([]food.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]food.Category), args.Error(1)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Load(ctx context.Context, owner kernel.ID) (*cart.Cart, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, owner kernel.ID, c *cart.Cart) error {
	args := m.Called(ctx, owner, c)
	return args.Error(0)
}

func (m *MockCartStore) Clear(ctx context.Context, owner kernel.ID) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockCartStore) PruneStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func mustActor(t *testing.T, id string, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(mustID(t, id), "Test Actor", role)
	require.NoError(t, err)
	return a
}

func mustFood(t *testing.T, id, name string, price float64) food.Food {
	t.Helper()
	f, err := food.NewFood(mustID(t, id), name, price, "", "")
	require.NoError(t, err)
	return f
}

func testOrder(t *testing.T, customerID string, status order.Status, riderID *kernel.ID) *order.Order {
	t.Helper()
	item, err := order.NewItem(mustID(t, "pizza"), "Pizza", 2, 10, "")
	require.NoError(t, err)
	addr, err := order.NewShippingAddress("John", "+123", "1 Main St", "Springfield", "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		mustID(t, "order-1"),
		mustID(t, customerID),
		[]order.Item{item},
		addr,
		order.CashOnDelivery,
		20+order.DeliveryFee,
		status,
		time.Now(),
		riderID,
	)
	require.NoError(t, err)
	return o
}
