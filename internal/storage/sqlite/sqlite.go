// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// Two drivers are registered and either can back the store, chosen by
// config.StorageDriver:
//
//	"sqlite3" — github.com/mattn/go-sqlite3 (CGO, the default)
//	"sqlite"  — modernc.org/sqlite (pure Go, no C toolchain needed)
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/types"

	// Blank imports: side-effect only (they register the drivers).
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// schema is applied on every startup; every statement is idempotent.
//
// The UNIQUE constraint on email backs up the service's existence check:
// two concurrent inserts of the same email cannot both succeed.
const schema = `
	CREATE TABLE IF NOT EXISTS students (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name   TEXT    NOT NULL,
		email  TEXT    NOT NULL UNIQUE,
		gender TEXT    NOT NULL CHECK (gender IN ('MALE', 'FEMALE'))
	)
`

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at cfg.StoragePath with cfg.StorageDriver,
// creates the students table if it does not already exist, and returns
// a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and data source name (DSN).
	db, err := sql.Open(cfg.StorageDriver, dataSourceName(cfg))
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// busyTimeoutMS is how long a connection waits for another connection's
// write lock before failing with SQLITE_BUSY.
const busyTimeoutMS = 5000

// dataSourceName builds the DSN for the configured driver.
//
// mattn/go-sqlite3 already waits 5s on a locked database. modernc.org/sqlite
// does not wait at all unless asked, and the pragma has to be in the DSN so
// that every pooled connection runs it, not just the first one.
func dataSourceName(cfg *config.Config) string {
	if cfg.StorageDriver != config.DriverPure {
		return cfg.StoragePath
	}

	dsn := cfg.StoragePath
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", dsn, sep, busyTimeoutMS)
}

// ─────────────────────────────────────────────────────────────────────────────
// FindAll returns all student rows as a slice, in id order.
//
// Query returns *sql.Rows — a cursor over multiple rows. rows.Next()
// advances it and rows.Err() reports anything that broke the iteration.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) FindAll(ctx context.Context) ([]types.Student, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT id, name, email, gender FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("FindAll: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAll: query: %w", err)
	}
	defer rows.Close()

	// Returning [] instead of null in JSON is better API behaviour.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student

		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Gender,
		); err != nil {
			return nil, fmt.Errorf("FindAll: scan row: %w", err)
		}

		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindAll: rows iteration: %w", err)
	}

	return students, nil
}

// FindByID fetches exactly one student row matched by primary key.
func (s *SQLite) FindByID(ctx context.Context, id int64) (types.Student, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT id, name, email, gender FROM students WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("FindByID: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student

	// QueryRow never returns nil; a missing row surfaces as
	// sql.ErrNoRows from Scan.
	err = stmt.QueryRowContext(ctx, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Gender,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, storage.ErrNotFound
		}
		return types.Student{}, fmt.Errorf("FindByID: scan: %w", err)
	}

	return student, nil
}

// ExistsByEmail matches the email byte for byte; SQLite's default BINARY
// collation makes "=" case-sensitive.
func (s *SQLite) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM students WHERE email = ?)",
	)
	if err != nil {
		return false, fmt.Errorf("ExistsByEmail: prepare: %w", err)
	}
	defer stmt.Close()

	var exists bool
	if err := stmt.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByEmail: scan: %w", err)
	}

	return exists, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save inserts a new row into the students table.
//
// Only name, email and gender are written. The ? placeholders keep the
// values out of the SQL text, so user input is never parsed as SQL.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Save(ctx context.Context, student types.Student) (types.Student, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"INSERT INTO students (name, email, gender) VALUES (?, ?, ?)",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("Save: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, student.Name, student.Email, string(student.Gender))
	if err != nil {
		if isUniqueViolation(err) {
			return types.Student{}, storage.ErrDuplicateEmail
		}
		return types.Student{}, fmt.Errorf("Save: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Student{}, fmt.Errorf("Save: last insert id: %w", err)
	}

	return types.Student{
		ID:     lastID,
		Name:   student.Name,
		Email:  student.Email,
		Gender: student.Gender,
	}, nil
}

// Delete removes a student row by primary key.
func (s *SQLite) Delete(ctx context.Context, student types.Student) error {
	stmt, err := s.Db.PrepareContext(ctx, "DELETE FROM students WHERE id = ?")
	if err != nil {
		return fmt.Errorf("Delete: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, student.ID)
	if err != nil {
		return fmt.Errorf("Delete: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// Ping verifies a connection to the database can be established.
// The /health endpoint uses it.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.Db.PingContext(ctx)
}

// Close closes the connection pool. Call it once, on shutdown.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
