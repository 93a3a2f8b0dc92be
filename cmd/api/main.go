package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Malmeu/car-manager-server/docs"
	"github.com/Malmeu/car-manager-server/internal/config"
	"github.com/Malmeu/car-manager-server/internal/database"
	handlers "github.com/Malmeu/car-manager-server/internal/http/handler"
	"github.com/Malmeu/car-manager-server/internal/http/middleware"
	"github.com/Malmeu/car-manager-server/internal/otel"
	"github.com/Malmeu/car-manager-server/internal/repository/mongodb"
	"github.com/Malmeu/car-manager-server/internal/service"
	"github.com/Malmeu/car-manager-server/internal/storage"
)

// @title Car Manager API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background()) //nolint:errcheck

	// Connect to the document store; missing credentials are fatal at startup.
	client, db, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		log.Fatalf("failed to connect to document store: %v", err)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("failed to initialize blob storage: %v", err)
	}

	// Initialize repositories and services
	vehicleRepo := mongodb.NewVehicleMongo(db)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	uploadSvc := service.NewUploadService(store, vehicleRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Storage.MaxUploadBytes,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	// PUT is declared for parity with the reference CORS policy even though
	// no PUT route exists.
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	reg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, client, vehicleSvc, uploadSvc, store)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newStorage selects the blob storage backend from configuration.
func newStorage(cfg *config.AppConfig) (storage.Storage, error) {
	if cfg.Storage.Backend == "minio" {
		return storage.NewMinIO(cfg.MinIO)
	}
	return storage.NewLocal(cfg.Storage.Root)
}
