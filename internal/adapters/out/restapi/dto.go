package restapi

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
)

// objectRef is a document reference that arrives either as a bare id string
// or as a populated object. Which form shows up depends on whether the
// endpoint populates the relation, so both are accepted everywhere.
type objectRef struct {
	ID   string
	Name string
}

func (r *objectRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var populated struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &populated); err != nil {
		return err
	}

	r.ID = populated.ID
	r.Name = populated.Name
	return nil
}

func (r objectRef) toID() (kernel.ID, error) {
	return kernel.IDFromString(r.ID)
}

type orderItemDTO struct {
	Food     objectRef `json:"food"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Image    string    `json:"image"`
}

type addressDTO struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type orderDTO struct {
	ID            string         `json:"_id"`
	User          objectRef      `json:"user"`
	OrderItems    []orderItemDTO `json:"orderItems"`
	Address       addressDTO     `json:"shippingAddress"`
	PaymentMethod string         `json:"paymentMethod"`
	TotalPrice    float64        `json:"totalPrice"`
	OrderStatus   string         `json:"orderStatus"`
	Rider         *objectRef     `json:"rider"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (d orderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.IDFromString(d.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := d.User.toID()
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(d.OrderItems))
	for _, itemDTO := range d.OrderItems {
		foodID, itemErr := itemDTO.Food.toID()
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(foodID, itemDTO.Name, itemDTO.Quantity, itemDTO.Price, itemDTO.Image)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewShippingAddress(
		d.Address.Name, d.Address.Phone, d.Address.Address, d.Address.City, d.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	payment, err := order.ParsePaymentMethod(d.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(d.OrderStatus)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.ID
	if d.Rider != nil && d.Rider.ID != "" {
		rid, riderErr := d.Rider.toID()
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rid
	}

	return order.RestoreOrder(id, customerID, items, address, payment, d.TotalPrice, status, d.CreatedAt, riderID)
}

func ordersToDomain(dtos []orderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

type reviewDTO struct {
	ID        string    `json:"_id"`
	Order     objectRef `json:"order"`
	User      objectRef `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d reviewDTO) toDomain() (*review.Review, error) {
	id, err := kernel.IDFromString(d.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := d.Order.toID()
	if err != nil {
		return nil, err
	}

	customerID, err := d.User.toID()
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, orderID, customerID, d.Rating, d.Comment, d.CreatedAt)
}

func reviewsToDomain(dtos []reviewDTO) ([]*review.Review, error) {
	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		r, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

type foodDTO struct {
	ID       string     `json:"_id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Image    string     `json:"image"`
	Category *objectRef `json:"category"`
}

func (d foodDTO) toDomain() (food.Food, error) {
	id, err := kernel.IDFromString(d.ID)
	if err != nil {
		return food.Food{}, err
	}

	categoryName := ""
	if d.Category != nil {
		categoryName = d.Category.Name
	}

	return food.NewFood(id, d.Name, d.Price, d.Image, categoryName)
}

type categoryDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (d categoryDTO) toDomain() (food.Category, error) {
	id, err := kernel.IDFromString(d.ID)
	if err != nil {
		return food.Category{}, err
	}

	return food.Category{ID: id, Name: d.Name}, nil
}
