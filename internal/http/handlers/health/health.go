// Package health exposes the liveness endpoint used by load balancers
// and uptime monitors.
package health

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/student-records/internal/utils/response"
)

// Pinger is anything that can report whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

// Check handles GET /health: 200 {"status":"ok"} when the database
// answers a ping, 503 otherwise.
func Check(db Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Error("health check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable,
				response.GeneralError(errors.New("database unavailable")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK())
	}
}
