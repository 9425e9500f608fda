package controllers

import (
	"net/http"

	"github.com/bleeshop/bleeshop-backend/api/responses"
	"github.com/bleeshop/bleeshop-backend/pkg/config"
	pkgerrors "github.com/bleeshop/bleeshop-backend/pkg/errors"
	"github.com/bleeshop/bleeshop-backend/pkg/logger"
	"github.com/bleeshop/bleeshop-backend/pkg/redis"
)

const envHeader = "X-BleeShop-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness; the quote cache and rate limiter both sit
// on redis, so readiness pings it.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		ctx := r.Context()

		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
