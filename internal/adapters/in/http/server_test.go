package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapterhttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/identity"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/inflight"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
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

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Create(ctx context.Context, credential string) (string, error) {
	args := m.Called(ctx, credential)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionKey string) (string, error) {
	args := m.Called(ctx, sessionKey)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionKey string) error {
	args := m.Called(ctx, sessionKey)
	return args.Error(0)
}

func (m *MockSessionStore) PruneStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

var testSecret = []byte("test-secret")

func signToken(t *testing.T, id, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  id,
		"name": "Test Actor",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

type testEnv struct {
	echo     *echo.Echo
	orders   *MockOrderGateway
	reviews  *MockReviewGateway
	catalog  *MockCatalogGateway
	carts    *MockCartStore
	sessions *MockSessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		orders:   &MockOrderGateway{},
		reviews:  &MockReviewGateway{},
		catalog:  &MockCatalogGateway{},
		carts:    &MockCartStore{},
		sessions: &MockSessionStore{},
	}

	policy := services.NewAccessPolicy()
	muts := inflight.NewGuard()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := adapterhttp.NewServer(
		commands.NewAddCartItemCommandHandler(policy, env.catalog, env.carts),
		commands.NewRemoveCartItemCommandHandler(policy, env.carts),
		commands.NewSetCartQuantityCommandHandler(policy, env.carts),
		commands.NewClearCartCommandHandler(policy, env.carts),
		commands.NewCheckoutCommandHandler(policy, env.orders, env.carts),
		commands.NewChangeOrderStatusCommandHandler(policy, env.orders, muts),
		commands.NewAssignRiderCommandHandler(policy, env.orders, muts),
		commands.NewSubmitReviewCommandHandler(policy, env.orders, env.reviews, muts),
		queries.NewGetCartQueryHandler(policy, env.carts),
		queries.NewGetCatalogQueryHandler(env.catalog),
		queries.NewGetMyOrdersQueryHandler(policy, env.orders),
		queries.NewGetOrderQueryHandler(policy, env.orders),
		queries.NewGetAllOrdersQueryHandler(policy, env.orders),
		queries.NewGetRiderDeliveriesQueryHandler(policy, env.orders),
		queries.NewGetMyReviewsQueryHandler(policy, env.reviews),
		queries.NewGetFoodReviewsQueryHandler(env.reviews, logger),
		env.sessions,
	)

	e := echo.New()
	e.Use(adapterhttp.ActorMiddleware(identity.NewJWTProvider(testSecret), env.sessions))
	server.RegisterRoutes(e)
	env.echo = e

	return env
}

func (env *testEnv) request(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func testOrder(t *testing.T, id, customerID string, status order.Status) *order.Order {
	t.Helper()
	orderID, err := kernel.IDFromString(id)
	require.NoError(t, err)
	custID, err := kernel.IDFromString(customerID)
	require.NoError(t, err)
	item, err := order.NewItem(custID, "Pizza", 2, 10, "")
	require.NoError(t, err)
	addr, err := order.NewShippingAddress("John", "+123", "1 Main St", "Springfield", "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		orderID, custID, []order.Item{item}, addr,
		order.CashOnDelivery, 20+order.DeliveryFee, status, time.Now(), nil,
	)
	require.NoError(t, err)
	return o
}

func TestServer_Catalog(t *testing.T) {
	env := newTestEnv(t)

	foodID, err := kernel.IDFromString("f1")
	require.NoError(t, err)
	pizza, err := food.NewFood(foodID, "Pizza", 11.5, "pizza.png", "Italian")
	require.NoError(t, err)

	env.catalog.On("GetFoods", mock.Anything).Return([]food.Food{pizza}, nil)
	env.catalog.On("GetCategories", mock.Anything).
		Return([]food.Category{{ID: foodID, Name: "Italian"}}, nil)

	rec := env.request(http.MethodGet, "/api/catalog", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["foods"], 1)
	assert.Len(t, body["categories"], 1)
}

func TestServer_Cart(t *testing.T) {
	t.Run("anonymous_cannot_touch_the_cart", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(http.MethodPost, "/api/cart/items", "", `{"foodId":"f1","quantity":1}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("customer_adds_an_item", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "u1", "customer")

		foodID, err := kernel.IDFromString("f1")
		require.NoError(t, err)
		ownerID, err := kernel.IDFromString("u1")
		require.NoError(t, err)
		pizza, err := food.NewFood(foodID, "Pizza", 11.5, "", "")
		require.NoError(t, err)

		env.catalog.On("GetFood", mock.Anything, foodID).Return(pizza, nil)
		env.carts.On("Load", mock.Anything, ownerID).Return(cart.NewCart(), nil)
		env.carts.On("Save", mock.Anything, ownerID, mock.Anything).Return(nil)

		rec := env.request(http.MethodPost, "/api/cart/items", token, `{"foodId":"f1","quantity":2}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(2), body["count"])
		assert.Equal(t, 23.0, body["total"])
	})

	t.Run("invalid_quantity_is_a_bad_request", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "u1", "customer")

		rec := env.request(http.MethodPost, "/api/cart/items", token, `{"foodId":"f1","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Checkout(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, "u1", "customer")

	ownerID, err := kernel.IDFromString("u1")
	require.NoError(t, err)
	foodID, err := kernel.IDFromString("f1")
	require.NoError(t, err)
	pizza, err := food.NewFood(foodID, "Pizza", 10, "", "")
	require.NoError(t, err)

	filled := cart.NewCart()
	require.NoError(t, filled.AddItem(pizza, 2))

	placed := testOrder(t, "order-1", "u1", order.Pending)

	env.carts.On("Load", mock.Anything, ownerID).Return(filled, nil)
	env.orders.On("Create", mock.Anything, mock.MatchedBy(func(req ports.CreateOrderRequest) bool {
		return req.TotalPrice == 20+order.DeliveryFee
	})).Return(placed, nil)
	env.carts.On("Clear", mock.Anything, ownerID).Return(nil)

	rec := env.request(http.MethodPost, "/api/checkout", token, `{
		"shippingAddress": {"name":"John","phone":"+123","address":"1 Main St","city":"Springfield"},
		"paymentMethod": "Cash on Delivery"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	placedBody := body["order"].(map[string]any)
	assert.Equal(t, "order-1", placedBody["_id"])
	assert.Equal(t, "Pending", placedBody["orderStatus"])
}

func TestServer_OrderStatus(t *testing.T) {
	t.Run("customer_cannot_advance_an_order", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "u1", "customer")

		env.orders.On("Get", mock.Anything, mock.Anything).
			Return(testOrder(t, "order-1", "u1", order.Pending), nil)

		rec := env.request(http.MethodPut, "/api/orders/order-1/status", token, `{"orderStatus":"Preparing"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		env.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin_advances_an_order", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "boss", "admin")

		pending := testOrder(t, "order-1", "u1", order.Pending)
		preparing := testOrder(t, "order-1", "u1", order.Preparing)

		env.orders.On("Get", mock.Anything, pending.ID()).Return(pending, nil)
		env.orders.On("UpdateStatus", mock.Anything, pending.ID(), order.Preparing).
			Return(preparing, nil)

		rec := env.request(http.MethodPut, "/api/orders/order-1/status", token, `{"orderStatus":"Preparing"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Preparing", body["order"].(map[string]any)["orderStatus"])
	})

	t.Run("illegal_step_is_a_conflict", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "boss", "admin")

		pending := testOrder(t, "order-1", "u1", order.Pending)
		env.orders.On("Get", mock.Anything, pending.ID()).Return(pending, nil)

		rec := env.request(http.MethodPut, "/api/orders/order-1/status", token, `{"orderStatus":"Delivered"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServer_GetOrder(t *testing.T) {
	t.Run("owner_sees_the_order", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "u1", "customer")

		o := testOrder(t, "order-1", "u1", order.Delivered)
		env.orders.On("Get", mock.Anything, o.ID()).Return(o, nil)

		rec := env.request(http.MethodGet, "/api/orders/order-1", token, "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		orderBody := body["order"].(map[string]any)
		assert.Equal(t, "order-1", orderBody["_id"])
		assert.Equal(t, float64(3), orderBody["progress"])
	})

	t.Run("missing_order_is_not_found", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "u1", "customer")

		env.orders.On("Get", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", "order-9"))

		rec := env.request(http.MethodGet, "/api/orders/order-9", token, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_SubmitReview(t *testing.T) {
	env := newTestEnv(t)
	token := signToken(t, "u1", "customer")

	delivered := testOrder(t, "order-1", "u1", order.Delivered)
	reviewID, err := kernel.IDFromString("rev-1")
	require.NoError(t, err)
	created, err := review.RestoreReview(
		reviewID, delivered.ID(), delivered.CustomerID(), 5, "Great", time.Now(),
	)
	require.NoError(t, err)

	env.orders.On("Get", mock.Anything, delivered.ID()).Return(delivered, nil)
	env.reviews.On("GetMine", mock.Anything).Return([]*review.Review{}, nil)
	env.reviews.On("Create", mock.Anything, ports.CreateReviewRequest{
		OrderID: delivered.ID(), Rating: 5, Comment: "Great",
	}).Return(created, nil)

	rec := env.request(http.MethodPost, "/api/orders/order-1/reviews", token, `{"rating":5,"comment":"Great"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(5), body["review"].(map[string]any)["rating"])
}

func TestServer_Sessions(t *testing.T) {
	t.Run("bearer_credential_becomes_a_session", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "u1", "customer")

		env.sessions.On("Create", mock.Anything, token).Return("session-key-1", nil)

		rec := env.request(http.MethodPost, "/api/sessions", token, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "session-key-1", body["sessionKey"])
	})

	t.Run("session_key_resolves_the_actor", func(t *testing.T) {
		env := newTestEnv(t)
		token := signToken(t, "u1", "customer")
		ownerID, err := kernel.IDFromString("u1")
		require.NoError(t, err)

		env.sessions.On("Get", mock.Anything, "session-key-1").Return(token, nil)
		env.carts.On("Load", mock.Anything, ownerID).Return(cart.NewCart(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Session-Key", "session-key-1")
		rec := httptest.NewRecorder()
		env.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
	})

	t.Run("unknown_session_key_is_anonymous", func(t *testing.T) {
		env := newTestEnv(t)

		env.sessions.On("Get", mock.Anything, "stale-key").
			Return("", errs.NewObjectNotFoundError("sessionKey", "stale-key"))

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Session-Key", "stale-key")
		rec := httptest.NewRecorder()
		env.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("anonymous_cannot_create_a_session", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(http.MethodPost, "/api/sessions", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("session_is_deleted_on_sign_out", func(t *testing.T) {
		env := newTestEnv(t)

		env.sessions.On("Delete", mock.Anything, "session-key-1").Return(nil)

		rec := env.request(http.MethodDelete, "/api/sessions/session-key-1", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		env.sessions.AssertExpectations(t)
	})
}

func TestServer_InvalidToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/cart", "not-a-jwt", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
