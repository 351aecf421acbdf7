// Package service holds the student business rules that sit between the
// HTTP handlers and storage: email uniqueness on create, and turning a
// missing row into a NotFoundError.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/types"
)

// StudentService is stateless; one instance serves all requests.
type StudentService struct {
	storage storage.Storage
}

// NewStudentService creates a StudentService backed by storage.
func NewStudentService(storage storage.Storage) *StudentService {
	return &StudentService{storage: storage}
}

// ListAll returns every student.
func (s *StudentService) ListAll(ctx context.Context) ([]types.Student, error) {
	students, err := s.storage.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// GetByID returns the student with id, or a *NotFoundError.
func (s *StudentService) GetByID(ctx context.Context, id int64) (types.Student, error) {
	student, err := s.storage.FindByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return types.Student{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return types.Student{}, fmt.Errorf("get student %d: %w", id, err)
	}
	return student, nil
}

// Add stores a new student built from the candidate's name, email and
// gender. The candidate's ID is discarded so a caller cannot pick the row
// identity. A duplicate email yields a *ConflictError and nothing is written.
func (s *StudentService) Add(ctx context.Context, candidate types.Student) (types.Student, error) {
	email := candidate.Email

	exists, err := s.storage.ExistsByEmail(ctx, email)
	if err != nil {
		return types.Student{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return types.Student{}, &ConflictError{Email: email}
	}

	saved, err := s.storage.Save(ctx, types.Student{
		Name:   candidate.Name,
		Email:  email,
		Gender: candidate.Gender,
	})
	// The existence check and the insert are separate statements; a
	// concurrent Add of the same email lands here via the UNIQUE constraint.
	if errors.Is(err, storage.ErrDuplicateEmail) {
		slog.Debug("email taken between check and insert", slog.String("email", email))
		return types.Student{}, &ConflictError{Email: email}
	}
	if err != nil {
		return types.Student{}, fmt.Errorf("save student: %w", err)
	}

	return saved, nil
}

// Remove deletes the student with id. It returns a *NotFoundError when no
// such student exists, including when the row disappears between the
// lookup and the delete.
func (s *StudentService) Remove(ctx context.Context, id int64) error {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.storage.Delete(ctx, student)
	if errors.Is(err, storage.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	if err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}

	return nil
}
