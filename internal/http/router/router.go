// Package router builds the application's http.Handler: the route table
// plus the middleware every request passes through.
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/student-records/internal/http/handlers/health"
	"github.com/aanand-mishra/student-records/internal/http/handlers/student"
	"github.com/aanand-mishra/student-records/internal/http/middleware"
)

// New registers the routes:
//
//	GET    /api/v1/students        → list all students
//	GET    /api/v1/students/{id}   → get one student by id
//	POST   /api/v1/students        → create a new student
//	DELETE /api/v1/students/{id}   → delete a student
//	GET    /health                 → database liveness
func New(svc student.Service, db health.Pinger, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/students", student.GetList(svc, log))
	mux.HandleFunc("GET /api/v1/students/{id}", student.GetByID(svc, log))
	mux.HandleFunc("POST /api/v1/students", student.New(svc, log))
	mux.HandleFunc("DELETE /api/v1/students/{id}", student.Delete(svc, log))

	mux.HandleFunc("GET /health", health.Check(db, log))

	// RequestID runs first so the logger and recovery see the id;
	// Recovery sits inside Logger so a recovered panic is logged as a 500.
	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Recovery(log),
	)
}
