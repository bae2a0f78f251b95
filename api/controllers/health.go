package controllers

import (
	"context"
	"net/http"

	"github.com/Alberto-Moura/pedidos-backend/api/responses"
	"github.com/Alberto-Moura/pedidos-backend/pkg/config"
	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
	"github.com/Alberto-Moura/pedidos-backend/pkg/logger"
)

type pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pedidos-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the session backend when one is configured; with the
// in-memory store there is nothing to check.
func HealthReady(cfg *config.Config, logg *logger.Logger, sessionBackend pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pedidos-Env", cfg.App.Env)
		if sessionBackend != nil {
			if err := sessionBackend.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session backend unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
