package sqlite

import (
	"errors"
	"strings"

	moderncsqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// isUniqueViolation reports whether err is SQLite rejecting a write
// because of a UNIQUE constraint, for either registered driver.
func isUniqueViolation(err error) bool {
	if isCGOUniqueViolation(err) {
		return true
	}

	// modernc.org/sqlite returns *sqlite.Error. Extended result codes are
	// on by default there; the primary-code branch covers builds where
	// they are not.
	var pureErr *moderncsqlite.Error
	if errors.As(err, &pureErr) {
		switch pureErr.Code() {
		case sqlitelib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		case sqlitelib.SQLITE_CONSTRAINT:
			return strings.Contains(pureErr.Error(), "UNIQUE constraint failed")
		}
	}

	return false
}
