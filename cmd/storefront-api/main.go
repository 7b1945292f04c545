package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hogarfix/storefront-api/internal/api/handlers"
	"github.com/hogarfix/storefront-api/internal/api/middleware"
	"github.com/hogarfix/storefront-api/internal/cart"
	"github.com/hogarfix/storefront-api/internal/config"
	"github.com/hogarfix/storefront-api/internal/health"
	"github.com/hogarfix/storefront-api/internal/metrics"
	repository "github.com/hogarfix/storefront-api/internal/repositories"
	service "github.com/hogarfix/storefront-api/internal/services"
	"github.com/hogarfix/storefront-api/pkg/marketplace"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)

	// Marketplace client setup
	opaquePolicy := marketplace.OpaqueAssumeGranted
	if cfg.Marketplace.FailClosedPermissions {
		opaquePolicy = marketplace.OpaqueDeny
	}

	marketplaceClient := marketplace.NewClient(
		cfg.Marketplace.ProxyBaseURL,
		cfg.Marketplace.OriginBaseURL,
		cfg.Marketplace.Timeout,
		opaquePolicy,
	)

	cartStore := cart.NewMemoryStore()

	cartService := service.NewCartService(cartStore)
	cartHandler := handlers.NewCartHandler(cartService)
	catalogService := service.NewCatalogService(marketplaceClient, cfg.Marketplace.CommerceID)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	checkoutService := service.NewCheckoutService(cartStore, marketplaceClient, rateLimitRepo)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		MarketplaceClient: marketplaceClient,
	})
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("services initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/services", catalogHandler.ListServices())
	routerMux.HandleFunc("GET /api/v1/terms", catalogHandler.GetTerms())
	routerMux.HandleFunc("GET /api/v1/permissions/category", catalogHandler.CheckCategoryPermission())
	routerMux.HandleFunc("POST /api/v1/carts", cartHandler.CreateCart())
	routerMux.HandleFunc("GET /api/v1/carts/{id}", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/carts/{id}/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("PUT /api/v1/carts/{id}/zone", cartHandler.SetZone())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.SubmitOrder())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront-api")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
