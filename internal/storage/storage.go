// Package storage defines the Storage interface — the contract the
// student service uses to reach the database.
//
// The service depends only on this interface, so a fake that satisfies
// it can stand in for SQLite in unit tests.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/student-records/internal/types"
)

var (
	// ErrNotFound is returned when no student matches the requested id.
	ErrNotFound = errors.New("student not found")

	// ErrDuplicateEmail is returned by Save when the database rejects the
	// insert because another row already holds the email.
	ErrDuplicateEmail = errors.New("student email already exists")
)

// Storage is the database contract.
type Storage interface {
	// FindAll returns every student ordered by id.
	// Returns an empty slice (not nil) if there are no students.
	FindAll(ctx context.Context) ([]types.Student, error)

	// FindByID fetches a single student by primary key, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (types.Student, error)

	// ExistsByEmail reports whether a student with exactly this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save inserts a new student and returns it with the generated id.
	// student.ID is never written.
	Save(ctx context.Context, student types.Student) (types.Student, error)

	// Delete removes the row with student.ID, or returns ErrNotFound if
	// there was none.
	Delete(ctx context.Context, student types.Student) error

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}
