package service

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks. The typed errors below match them, so
// callers that only care about the category need not unpack the details.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// NotFoundError reports that no student has the requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("student with id %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError reports that another student already uses the email.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("email %s already exists", e.Email)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
