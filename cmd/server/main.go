package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Forhemit/StarterClub-sub002/common/id"
	"github.com/Forhemit/StarterClub-sub002/common/logger"
	"github.com/Forhemit/StarterClub-sub002/common/otel"
	"github.com/Forhemit/StarterClub-sub002/core/config"
	"github.com/Forhemit/StarterClub-sub002/core/db"
	"github.com/Forhemit/StarterClub-sub002/internal/http/dto"
	"github.com/Forhemit/StarterClub-sub002/internal/http/middleware"
	httprouter "github.com/Forhemit/StarterClub-sub002/internal/http/router"
	"github.com/Forhemit/StarterClub-sub002/internal/mailer"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
	"github.com/Forhemit/StarterClub-sub002/internal/service"
	"github.com/Forhemit/StarterClub-sub002/internal/store"
)

const invalidationStreamMaxLen = 10000

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "starterclub api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	publisher, err := newPublisher(ctx, cfg.Redis)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	m, err := mailer.New(ctx, cfg.Mailer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize mailer", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "mailer ready", "type", cfg.Mailer.Type)

	services := service.NewServices(
		store.NewStores(database.Queries()),
		service.NewTxRunner(database),
		publisher,
		m,
		service.NewWorkOSDirectory(),
		cfg.WorkOS,
		cfg.DashboardURL,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := setupRouter(cfg, services)
	if err != nil {
		slog.ErrorContext(ctx, "failed to set up router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// newPublisher falls back to logging invalidations when REDIS_URL is unset.
func newPublisher(ctx context.Context, cfg config.RedisConfig) (queue.Publisher, error) {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "redis disabled, invalidations are logged only")
		return queue.NewLogPublisher(), nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Stream)

	return queue.NewRedisPublisher(client, cfg.Stream, invalidationStreamMaxLen), nil
}

func setupRouter(cfg config.Config, services *service.Services) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		IsProduction: cfg.IsProduction(),
		AdminAPIKey:  cfg.AdminAPIKey,
		WorkOS:       cfg.WorkOS,
		Stripe:       cfg.Stripe,
	})

	return router, nil
}
