package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bleeshop/bleeshop-backend/api/routes"
	"github.com/bleeshop/bleeshop-backend/internal/shipping"
	"github.com/bleeshop/bleeshop-backend/pkg/config"
	"github.com/bleeshop/bleeshop-backend/pkg/logger"
	"github.com/bleeshop/bleeshop-backend/pkg/melhorenvio"
	"github.com/bleeshop/bleeshop-backend/pkg/metrics"
	"github.com/bleeshop/bleeshop-backend/pkg/redis"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	rateClient, err := melhorenvio.NewClient(
		cfg.Shipping.Token,
		melhorenvio.WithBaseURL(cfg.Shipping.BaseURL),
		melhorenvio.WithUserAgent(cfg.Shipping.UserAgent),
		melhorenvio.WithTimeout(cfg.Shipping.Timeout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create carrier client", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	shippingMetrics := metrics.NewShippingMetrics(promRegistry)

	var quoteService shipping.Service = shipping.NewResolver(rateClient, cfg.Shipping, logg, shippingMetrics)
	if cfg.QuoteCache.Enabled {
		quoteService = shipping.NewCachedService(quoteService, redisClient, cfg.QuoteCache.TTL, logg)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, quoteService, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
