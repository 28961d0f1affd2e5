package controllers

import (
	"context"
	"net/http"

	"github.com/fishweb-iq/fishweb-backend/api/responses"
	"github.com/fishweb-iq/fishweb-backend/pkg/config"
	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
	"go.uber.org/multierr"
)

// Pinger is anything that can confirm its backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-FishWeb-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every wired dependency answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-FishWeb-Env", cfg.App.Env)

		checks := map[string]string{}
		var pingErr error
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				checks[name] = err.Error()
				pingErr = multierr.Append(pingErr, err)
			}
		}

		if pingErr != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, pingErr, "dependencies unavailable").WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
