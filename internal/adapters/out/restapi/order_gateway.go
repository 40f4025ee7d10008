package restapi

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// OrderGateway implements ports.OrderGateway against the /orders endpoints.
type OrderGateway struct {
	client *Client
}

// NewOrderGateway creates the order gateway.
func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

type createOrderPayload struct {
	OrderItems     []orderItemPayload `json:"orderItems"`
	Address        addressDTO         `json:"shippingAddress"`
	PaymentMethod  string             `json:"paymentMethod"`
	TotalPrice     float64            `json:"totalPrice"`
	IdempotencyKey string             `json:"idempotencyKey,omitempty"`
}

type orderItemPayload struct {
	Food     string  `json:"food"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// Create places a new order.
func (g *OrderGateway) Create(ctx context.Context, req ports.CreateOrderRequest) (*order.Order, error) {
	items := make([]orderItemPayload, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderItemPayload{
			Food:     item.FoodID().String(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Image:    item.Image(),
		})
	}

	payload := createOrderPayload{
		OrderItems: items,
		Address: addressDTO{
			Name:       req.Address.Name(),
			Phone:      req.Address.Phone(),
			Address:    req.Address.Address(),
			City:       req.Address.City(),
			PostalCode: req.Address.PostalCode(),
		},
		PaymentMethod:  req.Payment.String(),
		TotalPrice:     req.TotalPrice,
		IdempotencyKey: req.IdempotencyKey,
	}

	env, err := g.client.do(ctx, "create order", http.MethodPost, "/orders", payload)
	if err != nil {
		return nil, err
	}

	return singleOrder(env, "create order")
}

// Get retrieves one order.
func (g *OrderGateway) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	env, err := g.client.do(ctx, "get order", http.MethodGet, "/orders/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	return singleOrder(env, "get order")
}

// GetMine retrieves the calling customer's orders.
func (g *OrderGateway) GetMine(ctx context.Context) ([]*order.Order, error) {
	env, err := g.client.do(ctx, "get my orders", http.MethodGet, "/orders/myorders", nil)
	if err != nil {
		return nil, err
	}

	return ordersToDomain(env.Orders)
}

// GetAll retrieves every order.
func (g *OrderGateway) GetAll(ctx context.Context) ([]*order.Order, error) {
	env, err := g.client.do(ctx, "get all orders", http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}

	return ordersToDomain(env.Orders)
}

// UpdateStatus moves an order via the admin status endpoint.
func (g *OrderGateway) UpdateStatus(
	ctx context.Context, id kernel.ID, status order.Status,
) (*order.Order, error) {
	payload := map[string]string{"orderStatus": status.String()}

	env, err := g.client.do(ctx, "update order status", http.MethodPut, "/orders/"+id.String()+"/status", payload)
	if err != nil {
		return nil, err
	}

	return singleOrder(env, "update order status")
}

// Cancel cancels an order via the admin cancel endpoint.
func (g *OrderGateway) Cancel(ctx context.Context, id kernel.ID) (*order.Order, error) {
	env, err := g.client.do(ctx, "cancel order", http.MethodPut, "/orders/"+id.String()+"/cancel", nil)
	if err != nil {
		return nil, err
	}

	return singleOrder(env, "cancel order")
}

// AssignRider attaches a rider to an order.
func (g *OrderGateway) AssignRider(
	ctx context.Context, id kernel.ID, riderID kernel.ID,
) (*order.Order, error) {
	payload := map[string]string{"riderId": riderID.String()}

	env, err := g.client.do(ctx, "assign rider", http.MethodPut, "/orders/"+id.String()+"/assign-rider", payload)
	if err != nil {
		return nil, err
	}

	return singleOrder(env, "assign rider")
}

// GetMyDeliveries retrieves the calling rider's assigned orders.
func (g *OrderGateway) GetMyDeliveries(ctx context.Context) ([]*order.Order, error) {
	env, err := g.client.do(ctx, "get my deliveries", http.MethodGet, "/orders/rider/my-deliveries", nil)
	if err != nil {
		return nil, err
	}

	return ordersToDomain(env.Orders)
}

// UpdateDeliveryStatus moves an order via the rider delivery endpoint.
func (g *OrderGateway) UpdateDeliveryStatus(
	ctx context.Context, id kernel.ID, status order.Status,
) (*order.Order, error) {
	payload := map[string]string{"orderStatus": status.String()}

	env, err := g.client.do(
		ctx, "update delivery status", http.MethodPut, "/orders/"+id.String()+"/delivery-status", payload,
	)
	if err != nil {
		return nil, err
	}

	return singleOrder(env, "update delivery status")
}

func singleOrder(env *envelope, operation string) (*order.Order, error) {
	if env.Order == nil {
		return nil, errs.NewRemoteFailureErrorWithCause(operation, fmt.Errorf("response carries no order"))
	}
	return env.Order.toDomain()
}
