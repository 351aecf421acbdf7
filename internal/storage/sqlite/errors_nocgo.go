//go:build !cgo

package sqlite

// Without CGO, mattn/go-sqlite3 only registers a stub driver that fails
// on Open, so it never produces constraint errors.
func isCGOUniqueViolation(error) bool { return false }
