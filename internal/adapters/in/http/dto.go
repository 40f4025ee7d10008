package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type cartLineResponse struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
	Subtotal float64 `json:"subtotal"`
}

type cartResponse struct {
	Success bool               `json:"success"`
	Items   []cartLineResponse `json:"items"`
	Count   int                `json:"count"`
	Total   float64            `json:"total"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	lines := c.Lines()
	items := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, cartLineResponse{
			FoodID:   line.FoodID().String(),
			Name:     line.Name(),
			Price:    line.UnitPrice(),
			Quantity: line.Quantity(),
			Image:    line.Image(),
			Subtotal: line.Subtotal(),
		})
	}

	return cartResponse{
		Success: true,
		Items:   items,
		Count:   c.Count(),
		Total:   c.Total(),
	}
}

type addressPayload struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type orderItemResponse struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}

type orderResponse struct {
	ID          string              `json:"_id"`
	CustomerID  string              `json:"customerId"`
	Items       []orderItemResponse `json:"orderItems"`
	Address     addressPayload      `json:"shippingAddress"`
	Payment     string              `json:"paymentMethod"`
	TotalPrice  float64             `json:"totalPrice"`
	OrderStatus string              `json:"orderStatus"`
	Progress    *int                `json:"progress,omitempty"`
	RiderID     string              `json:"riderId,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func newOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemResponse{
			FoodID:   item.FoodID().String(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Image:    item.Image(),
		})
	}

	riderID := ""
	if o.Rider() != nil {
		riderID = o.Rider().String()
	}

	// Cancelled orders have no position on the tracking scale.
	var progress *int
	if ordinal, ok := o.Status().Progress(); ok {
		progress = &ordinal
	}

	return orderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Items:      items,
		Address: addressPayload{
			Name:       o.ShippingAddress().Name(),
			Phone:      o.ShippingAddress().Phone(),
			Address:    o.ShippingAddress().Address(),
			City:       o.ShippingAddress().City(),
			PostalCode: o.ShippingAddress().PostalCode(),
		},
		Payment:     o.PaymentMethod().String(),
		TotalPrice:  o.TotalPrice(),
		OrderStatus: o.Status().String(),
		Progress:    progress,
		RiderID:     riderID,
		CreatedAt:   o.CreatedAt(),
	}
}

func newOrderListResponse(orders []*order.Order) []orderResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, newOrderResponse(o))
	}
	return responses
}

type reviewResponse struct {
	ID        string    `json:"_id"`
	OrderID   string    `json:"orderId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newReviewResponse(r *review.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID().String(),
		OrderID:   r.OrderID().String(),
		Rating:    r.Rating(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt(),
	}
}

func newReviewListResponse(reviews []*review.Review) []reviewResponse {
	responses := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, newReviewResponse(r))
	}
	return responses
}

type foodResponse struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category,omitempty"`
}

type categoryResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type catalogResponse struct {
	Success    bool               `json:"success"`
	Foods      []foodResponse     `json:"foods"`
	Categories []categoryResponse `json:"categories"`
}

func newCatalogResponse(c queries.Catalog) catalogResponse {
	foods := make([]foodResponse, 0, len(c.Foods))
	for _, f := range c.Foods {
		foods = append(foods, foodResponse{
			ID:       f.ID().String(),
			Name:     f.Name(),
			Price:    f.Price(),
			Image:    f.Image(),
			Category: f.Category(),
		})
	}

	categories := make([]categoryResponse, 0, len(c.Categories))
	for _, cat := range c.Categories {
		categories = append(categories, categoryResponse{
			ID:   cat.ID.String(),
			Name: cat.Name,
		})
	}

	return catalogResponse{Success: true, Foods: foods, Categories: categories}
}

type deliveriesResponse struct {
	Success bool            `json:"success"`
	Orders  []orderResponse `json:"orders"`
	Stats   statsResponse   `json:"stats"`
}

type statsResponse struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Delivered int `json:"delivered"`
}

func newDeliveriesResponse(d queries.RiderDeliveries) deliveriesResponse {
	return deliveriesResponse{
		Success: true,
		Orders:  newOrderListResponse(d.Orders),
		Stats: statsResponse{
			Total:     d.Stats.Total,
			Active:    d.Stats.Active,
			Delivered: d.Stats.Delivered,
		},
	}
}
