// Package student contains all HTTP handlers related to the Student resource.
//
// Each exported function is a factory: it receives the Service and logger
// once at startup and returns the handler that runs on every request.
//
//	router.HandleFunc("POST /api/v1/students", student.New(svc, log))
package student

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/student-records/internal/http/middleware"
	"github.com/aanand-mishra/student-records/internal/service"
	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/aanand-mishra/student-records/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// Service is the part of service.StudentService the handlers need.
type Service interface {
	ListAll(ctx context.Context) ([]types.Student, error)
	GetByID(ctx context.Context, id int64) (types.Student, error)
	Add(ctx context.Context, candidate types.Student) (types.Student, error)
	Remove(ctx context.Context, id int64) error
}

// validate caches struct metadata, so one instance is shared by all requests.
var validate = validator.New()

// addRequest is the body accepted by New. It has no id field: the database
// assigns ids, so whatever a client sends as "id" is never decoded.
type addRequest struct {
	Name   string       `json:"name"   validate:"required"`
	Email  string       `json:"email"  validate:"required"`
	Gender types.Gender `json:"gender" validate:"required,oneof=MALE FEMALE"`
}

func (req addRequest) student() types.Student {
	return types.Student{Name: req.Name, Email: req.Email, Gender: req.Gender}
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/v1/students
// Creates a new student from the JSON request body. Any "id" is ignored.
//
// Request body (JSON):
//
//	{ "name": "Ann", "email": "a@x.com", "gender": "FEMALE" }
//
// Success response: 200 OK, empty body.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, missing field, unknown
//	                   gender, or an email that is already taken
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(svc Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(log, r)
		log.Debug("creating a student")

		var req addRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validate.Struct(req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(err))
			return
		}

		saved, err := svc.Add(r.Context(), req.student())
		if err != nil {
			writeError(w, log, err, slog.String("email", req.Email))
			return
		}

		log.Debug("student created", slog.Int64("id", saved.ID))
		w.WriteHeader(http.StatusOK)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/v1/students/{id}
//
// Success response (200 OK):
//
//	{ "id": 1, "name": "Ann", "email": "a@x.com", "gender": "FEMALE" }
//
// Error responses:
//
//	400 Bad Request  — id is not a valid integer
//	404 Not Found    — no student with that id
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(svc Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		log := requestLogger(log, r)
		log.Debug("getting a student", slog.Int64("id", id))

		student, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, log, err, slog.Int64("id", id))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// GetList handles GET /api/v1/students and returns a JSON array of all
// students, [] (not null) when there are none.
func GetList(svc Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(log, r)
		log.Debug("getting all students")

		students, err := svc.ListAll(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}
		if students == nil {
			students = []types.Student{}
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// Delete handles DELETE /api/v1/students/{id}.
// 200 with an empty body on success, 404 if the student does not exist.
func Delete(svc Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		log := requestLogger(log, r)
		log.Debug("deleting a student", slog.Int64("id", id))

		if err := svc.Remove(r.Context(), id); err != nil {
			writeError(w, log, err, slog.Int64("id", id))
			return
		}

		log.Debug("student deleted", slog.Int64("id", id))
		w.WriteHeader(http.StatusOK)
	}
}

// pathID parses the {id} path segment. On failure it writes a 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// requestLogger tags log with the request id so handler lines can be
// matched to the access log line written by middleware.Logger.
func requestLogger(log *slog.Logger, r *http.Request) *slog.Logger {
	if id := middleware.GetRequestID(r.Context()); id != "" {
		return log.With(slog.String("request_id", id))
	}
	return log
}

// writeError maps a service error to its status code. Domain errors keep
// their message; anything else is logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, log *slog.Logger, err error, attrs ...any) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
	case errors.Is(err, service.ErrConflict):
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
	default:
		log.Error("student request failed",
			append(attrs, slog.String("error", err.Error()))...)
		response.WriteJSON(w, http.StatusInternalServerError,
			response.GeneralError(errors.New("internal server error")))
	}
}
