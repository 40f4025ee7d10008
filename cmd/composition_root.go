package cmd

import (
	"log/slog"

	"storefront/internal/adapters/out/identity"
	"storefront/internal/adapters/out/localstore"
	"storefront/internal/adapters/out/restapi"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/inflight"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters together and hands out use case
// handlers. Handlers are cheap value types; the shared pieces (HTTP client,
// sqlite handle, inflight guard) live here.
type CompositionRoot struct {
	policy   *services.AccessPolicy
	muts     *inflight.Guard
	orders   ports.OrderGateway
	reviews  ports.ReviewGateway
	catalog  ports.CatalogGateway
	carts    ports.CartStore
	sessions ports.SessionStore
	identity ports.IdentityProvider
	logger   *slog.Logger
}

// NewCompositionRoot builds the adapter graph from the config and an open
// local store.
func NewCompositionRoot(config Config, db *gorm.DB, logger *slog.Logger) CompositionRoot {
	client := restapi.NewClient(config.APIBaseURL, logger)

	return CompositionRoot{
		policy:   services.NewAccessPolicy(),
		muts:     inflight.NewGuard(),
		orders:   restapi.NewOrderGateway(client),
		reviews:  restapi.NewReviewGateway(client),
		catalog:  restapi.NewCatalogGateway(client),
		carts:    localstore.NewCartStore(db, logger),
		sessions: localstore.NewSessionStore(db),
		identity: identity.NewJWTProvider([]byte(config.JWTSecret)),
		logger:   logger,
	}
}

func (c *CompositionRoot) IdentityProvider() ports.IdentityProvider {
	return c.identity
}

func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) CartStore() ports.CartStore {
	return c.carts
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.policy, c.catalog, c.carts)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.policy, c.carts)
}

func (c *CompositionRoot) CreateSetCartQuantityCommandHandler() commands.SetCartQuantityCommandHandler {
	return commands.NewSetCartQuantityCommandHandler(c.policy, c.carts)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.policy, c.carts)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.policy, c.orders, c.carts)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.policy, c.orders, c.muts)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.policy, c.orders, c.muts)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	return commands.NewSubmitReviewCommandHandler(c.policy, c.orders, c.reviews, c.muts)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.policy, c.carts)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.policy, c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.policy, c.orders)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.policy, c.orders)
}

func (c *CompositionRoot) CreateGetRiderDeliveriesQueryHandler() queries.GetRiderDeliveriesQueryHandler {
	return queries.NewGetRiderDeliveriesQueryHandler(c.policy, c.orders)
}

func (c *CompositionRoot) CreateGetMyReviewsQueryHandler() queries.GetMyReviewsQueryHandler {
	return queries.NewGetMyReviewsQueryHandler(c.policy, c.reviews)
}

func (c *CompositionRoot) CreateGetFoodReviewsQueryHandler() queries.GetFoodReviewsQueryHandler {
	return queries.NewGetFoodReviewsQueryHandler(c.reviews, c.logger)
}
