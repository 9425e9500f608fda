package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bleeshop/bleeshop-backend/api/controllers"
	shippingcontrollers "github.com/bleeshop/bleeshop-backend/api/controllers/shipping"
	"github.com/bleeshop/bleeshop-backend/api/middleware"
	shippingsvc "github.com/bleeshop/bleeshop-backend/internal/shipping"
	"github.com/bleeshop/bleeshop-backend/pkg/config"
	"github.com/bleeshop/bleeshop-backend/pkg/logger"
	"github.com/bleeshop/bleeshop-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	quoteService shippingsvc.Service,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	quotePolicy := middleware.NewRateLimitPolicy(
		"shipping_quote",
		cfg.RateLimit.Window,
		cfg.RateLimit.IPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/shipping", func(r chi.Router) {
		r.With(middleware.RateLimit(quotePolicy, redisClient, logg)).
			Post("/quote", shippingcontrollers.Quote(quoteService, logg))
	})

	return r
}
