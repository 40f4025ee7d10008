package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"storefront/cmd"
	adapterhttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/localstore"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := localstore.Open(configs.LocalStorePath)
	if err != nil {
		log.Fatalf("Error opening local store: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(
		root.CartStore(),
		root.SessionStore(),
		configs.CartTTL,
		configs.SessionTTL,
		configs.JanitorSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		APIBaseURL:      goDotEnvVariable("API_BASE_URL"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		LocalStorePath:  goDotEnvVariable("LOCAL_STORE_PATH"),
		CartTTL:         durationVariable("CART_TTL", 30*24*time.Hour),
		SessionTTL:      durationVariable("SESSION_TTL", 7*24*time.Hour),
		JanitorSchedule: scheduleVariable("JANITOR_SCHEDULE", "0 0 * * * *"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return d
}

func scheduleVariable(key, fallback string) string {
	if raw := goDotEnvVariable(key); raw != "" {
		return raw
	}
	return fallback
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(adapterhttp.ActorMiddleware(root.IdentityProvider(), root.SessionStore()))

	server := adapterhttp.NewServer(
		root.CreateAddCartItemCommandHandler(),
		root.CreateRemoveCartItemCommandHandler(),
		root.CreateSetCartQuantityCommandHandler(),
		root.CreateClearCartCommandHandler(),
		root.CreateCheckoutCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateAssignRiderCommandHandler(),
		root.CreateSubmitReviewCommandHandler(),
		root.CreateGetCartQueryHandler(),
		root.CreateGetCatalogQueryHandler(),
		root.CreateGetMyOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		root.CreateGetRiderDeliveriesQueryHandler(),
		root.CreateGetMyReviewsQueryHandler(),
		root.CreateGetFoodReviewsQueryHandler(),
		root.SessionStore(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", healthHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func healthHandler(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
