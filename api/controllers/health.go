package controllers

import (
	"net/http"

	"github.com/suryalovesjs/dema-inventory-service/api/responses"
	"github.com/suryalovesjs/dema-inventory-service/pkg/config"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db"
	pkgerrors "github.com/suryalovesjs/dema-inventory-service/pkg/errors"
	"github.com/suryalovesjs/dema-inventory-service/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Dema-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the database answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Dema-Env", cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: ping"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
