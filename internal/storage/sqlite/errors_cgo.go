//go:build cgo

package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isCGOUniqueViolation matches the sqlite3.Error value that
// mattn/go-sqlite3 returns.
func isCGOUniqueViolation(err error) bool {
	var cgoErr sqlite3.Error
	if errors.As(err, &cgoErr) {
		return cgoErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
