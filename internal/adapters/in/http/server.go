// Package http exposes the storefront as a thin JSON API over echo. Handlers
// bind the wire payload, build a command or query, and let the use case
// decide everything else; no business rule lives here.
package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server wires the storefront operations to their use case handlers.
type Server struct {
	// Command handlers
	addCartItemHandler     commands.AddCartItemCommandHandler
	removeCartItemHandler  commands.RemoveCartItemCommandHandler
	setCartQuantityHandler commands.SetCartQuantityCommandHandler
	clearCartHandler       commands.ClearCartCommandHandler
	checkoutHandler        commands.CheckoutCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	assignRiderHandler     commands.AssignRiderCommandHandler
	submitReviewHandler    commands.SubmitReviewCommandHandler

	// Query handlers
	getCartHandler            queries.GetCartQueryHandler
	getCatalogHandler         queries.GetCatalogQueryHandler
	getMyOrdersHandler        queries.GetMyOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getRiderDeliveriesHandler queries.GetRiderDeliveriesQueryHandler
	getMyReviewsHandler       queries.GetMyReviewsQueryHandler
	getFoodReviewsHandler     queries.GetFoodReviewsQueryHandler

	sessions ports.SessionStore
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	setCartQuantityHandler commands.SetCartQuantityCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getRiderDeliveriesHandler queries.GetRiderDeliveriesQueryHandler,
	getMyReviewsHandler queries.GetMyReviewsQueryHandler,
	getFoodReviewsHandler queries.GetFoodReviewsQueryHandler,
	sessions ports.SessionStore,
) *Server {
	return &Server{
		addCartItemHandler:        addCartItemHandler,
		removeCartItemHandler:     removeCartItemHandler,
		setCartQuantityHandler:    setCartQuantityHandler,
		clearCartHandler:          clearCartHandler,
		checkoutHandler:           checkoutHandler,
		changeStatusHandler:       changeStatusHandler,
		assignRiderHandler:        assignRiderHandler,
		submitReviewHandler:       submitReviewHandler,
		getCartHandler:            getCartHandler,
		getCatalogHandler:         getCatalogHandler,
		getMyOrdersHandler:        getMyOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getRiderDeliveriesHandler: getRiderDeliveriesHandler,
		getMyReviewsHandler:       getMyReviewsHandler,
		getFoodReviewsHandler:     getFoodReviewsHandler,
		sessions:                  sessions,
	}
}

// RegisterRoutes attaches every storefront endpoint under /api.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/catalog", s.GetCatalog)
	api.GET("/foods/:id/reviews", s.GetFoodReviews)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PUT("/cart/items/:foodId", s.SetCartQuantity)
	api.DELETE("/cart/items/:foodId", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/checkout", s.Checkout)

	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/my", s.GetMyOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/orders/:id/assign-rider", s.AssignRider)
	api.POST("/orders/:id/reviews", s.SubmitReview)

	api.GET("/deliveries", s.GetRiderDeliveries)
	api.GET("/reviews/my", s.GetMyReviews)

	api.POST("/sessions", s.CreateSession)
	api.DELETE("/sessions/:key", s.DeleteSession)
}

// GetCatalog handles GET /api/catalog.
func (s *Server) GetCatalog(c echo.Context) error {
	catalog, err := s.getCatalogHandler.Handle(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newCatalogResponse(catalog))
}

// GetFoodReviews handles GET /api/foods/:id/reviews.
func (s *Server) GetFoodReviews(c echo.Context) error {
	foodID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	q, err := queries.NewGetFoodReviewsQuery(foodID)
	if err != nil {
		return respondError(c, err)
	}

	reviews, err := s.getFoodReviewsHandler.Handle(c.Request().Context(), q)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"reviews": newReviewListResponse(reviews),
	})
}

// GetCart handles GET /api/cart.
func (s *Server) GetCart(c echo.Context) error {
	cart, err := s.getCartHandler.Handle(c.Request().Context(), actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newCartResponse(cart))
}

type addCartItemPayload struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
}

// AddCartItem handles POST /api/cart/items.
func (s *Server) AddCartItem(c echo.Context) error {
	var payload addCartItemPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	foodID, err := kernel.IDFromString(payload.FoodID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAddCartItemCommand(foodID, payload.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	cart, err := s.addCartItemHandler.Handle(c.Request().Context(), actorFrom(c), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newCartResponse(cart))
}

type setQuantityPayload struct {
	Quantity int `json:"quantity"`
}

// SetCartQuantity handles PUT /api/cart/items/:foodId.
func (s *Server) SetCartQuantity(c echo.Context) error {
	var payload setQuantityPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	foodID, err := kernel.IDFromString(c.Param("foodId"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewSetCartQuantityCommand(foodID, payload.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	cart, err := s.setCartQuantityHandler.Handle(c.Request().Context(), actorFrom(c), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// RemoveCartItem handles DELETE /api/cart/items/:foodId.
func (s *Server) RemoveCartItem(c echo.Context) error {
	foodID, err := kernel.IDFromString(c.Param("foodId"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(foodID)
	if err != nil {
		return respondError(c, err)
	}

	cart, err := s.removeCartItemHandler.Handle(c.Request().Context(), actorFrom(c), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// ClearCart handles DELETE /api/cart.
func (s *Server) ClearCart(c echo.Context) error {
	if err := s.clearCartHandler.Handle(c.Request().Context(), actorFrom(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

type checkoutPayload struct {
	Address       addressPayload `json:"shippingAddress"`
	PaymentMethod string         `json:"paymentMethod"`
}

// Checkout handles POST /api/checkout.
func (s *Server) Checkout(c echo.Context) error {
	var payload checkoutPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	address, err := order.NewShippingAddress(
		payload.Address.Name,
		payload.Address.Phone,
		payload.Address.Address,
		payload.Address.City,
		payload.Address.PostalCode,
	)
	if err != nil {
		return respondError(c, err)
	}

	payment, err := order.ParsePaymentMethod(payload.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCheckoutCommand(address, payment)
	if err != nil {
		return respondError(c, err)
	}

	placed, err := s.checkoutHandler.Handle(c.Request().Context(), actorFrom(c), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"order":   newOrderResponse(placed),
	})
}

// GetMyOrders handles GET /api/orders/my.
func (s *Server) GetMyOrders(c echo.Context) error {
	orders, err := s.getMyOrdersHandler.Handle(c.Request().Context(), actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"orders":  newOrderListResponse(orders),
	})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	q, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, err)
	}

	o, err := s.getOrderHandler.Handle(c.Request().Context(), actorFrom(c), q)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"order":   newOrderResponse(o),
	})
}

// GetAllOrders handles GET /api/orders.
func (s *Server) GetAllOrders(c echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(c.Request().Context(), actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"orders":  newOrderListResponse(orders),
	})
}

type changeStatusPayload struct {
	OrderStatus string `json:"orderStatus"`
}

// ChangeOrderStatus handles PUT /api/orders/:id/status. Cancellation is the
// same endpoint with orderStatus "Cancelled".
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	var payload changeStatusPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	next, err := order.StatusFromString(payload.OrderStatus)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.changeStatusHandler.Handle(c.Request().Context(), actorFrom(c), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"order":   newOrderResponse(updated),
	})
}

type assignRiderPayload struct {
	RiderID string `json:"riderId"`
}

// AssignRider handles PUT /api/orders/:id/assign-rider.
func (s *Server) AssignRider(c echo.Context) error {
	var payload assignRiderPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	riderID, err := kernel.IDFromString(payload.RiderID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.assignRiderHandler.Handle(c.Request().Context(), actorFrom(c), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"order":   newOrderResponse(updated),
	})
}

type submitReviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitReview handles POST /api/orders/:id/reviews.
func (s *Server) SubmitReview(c echo.Context) error {
	var payload submitReviewPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewSubmitReviewCommand(orderID, payload.Rating, payload.Comment)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.submitReviewHandler.Handle(c.Request().Context(), actorFrom(c), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"review":  newReviewResponse(created),
	})
}

// GetRiderDeliveries handles GET /api/deliveries.
func (s *Server) GetRiderDeliveries(c echo.Context) error {
	deliveries, err := s.getRiderDeliveriesHandler.Handle(c.Request().Context(), actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newDeliveriesResponse(deliveries))
}

// GetMyReviews handles GET /api/reviews/my.
func (s *Server) GetMyReviews(c echo.Context) error {
	reviews, err := s.getMyReviewsHandler.Handle(c.Request().Context(), actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"reviews": newReviewListResponse(reviews),
	})
}

// CreateSession handles POST /api/sessions: exchanges the bearer credential
// for a session key the client can resume with.
func (s *Server) CreateSession(c echo.Context) error {
	credential, ok := ports.CredentialFromContext(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: "authentication required"})
	}

	key, err := s.sessions.Create(c.Request().Context(), credential)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success":    true,
		"sessionKey": key,
	})
}

// DeleteSession handles DELETE /api/sessions/:key.
func (s *Server) DeleteSession(c echo.Context) error {
	if err := s.sessions.Delete(c.Request().Context(), c.Param("key")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
