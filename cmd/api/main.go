package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Alberto-Moura/pedidos-backend/api/routes"
	"github.com/Alberto-Moura/pedidos-backend/internal/capture"
	"github.com/Alberto-Moura/pedidos-backend/internal/catalog"
	"github.com/Alberto-Moura/pedidos-backend/internal/sessions"
	"github.com/Alberto-Moura/pedidos-backend/pkg/config"
	"github.com/Alberto-Moura/pedidos-backend/pkg/logger"
	"github.com/Alberto-Moura/pedidos-backend/pkg/metrics"
	"github.com/Alberto-Moura/pedidos-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	catalogService, err := catalog.NewService(catalog.DefaultProducts(), catalog.DefaultFranchisees())
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	var sessionBackend *redis.Client
	var sessionStore sessions.Store
	if cfg.Redis.Enabled() {
		sessionBackend, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := sessionBackend.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		sessionStore, err = sessions.NewRedisStore(sessionBackend, cfg.Session.TTL())
		if err != nil {
			logg.Error(context.Background(), "failed to create session store", err)
			os.Exit(1)
		}
		logg.Info(context.Background(), "order sessions backed by redis")
	} else {
		sessionStore = sessions.NewMemoryStore(cfg.Session.TTL())
		logg.Info(context.Background(), "order sessions kept in process memory")
	}

	orderMetrics := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)

	captureService, err := capture.NewService(capture.ServiceParams{
		Catalog: catalogService,
		Store:   sessionStore,
		Metrics: orderMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create capture service", err)
		os.Exit(1)
	}

	handler := routes.NewRouter(cfg, logg, catalogService, captureService, sessionBackend)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithField(context.Background(), "addr", addr)
	logg.Info(ctx, "api listening")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logg.Error(ctx, "server stopped", err)
		os.Exit(1)
	}
}
