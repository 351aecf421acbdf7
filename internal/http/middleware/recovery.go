package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/student-records/internal/utils/response"
)

// Recovery turns a handler panic into a logged 500 JSON response.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recovery(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.Error("panic recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				response.WriteJSON(w, http.StatusInternalServerError,
					response.GeneralError(errors.New("internal server error")))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
