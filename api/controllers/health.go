package controllers

import (
	"net/http"

	"github.com/angelmondragon/bacola-storefront/api/responses"
	"github.com/angelmondragon/bacola-storefront/pkg/config"
	pkgerrors "github.com/angelmondragon/bacola-storefront/pkg/errors"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
	"github.com/angelmondragon/bacola-storefront/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bacola-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness. When the service runs on the in-memory store
// the pinger is nil and readiness reduces to liveness.
func HealthReady(cfg *config.Config, logg *logger.Logger, store redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("X-Bacola-Env", cfg.App.Env)

		if store != nil {
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
