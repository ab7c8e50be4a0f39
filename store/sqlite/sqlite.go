/*
Package sqlite persists saved calculations.

PURPOSE:
  The engine itself is pure and never persists anything; saving a
  calculation so offers can be revisited and compared later is a service
  concern, and this package is that collaborator. Input and result are
  stored as the JSON the API produced, so a saved row replays exactly what
  the user saw.

SCHEMA:
  calculations:
    id           TEXT PRIMARY KEY  (uuid)
    label        TEXT              user-facing name for the offer
    view         TEXT              contract | paycheck | normalized
    input_json   TEXT              submitted field values
    result_json  TEXT              computed figures at save time
    created_at   TEXT              RFC3339

CONCURRENCY:
  sync.RWMutex around the handle; SQLite is opened in WAL mode so readers
  do not block each other.

USAGE:
  store, err := sqlite.New("./data/locum.db")   // ":memory:" for tests
  defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SavedCalculation is one persisted calculator run.
type SavedCalculation struct {
	ID         string
	Label      string
	View       string
	InputJSON  string
	ResultJSON string
	CreatedAt  time.Time
}

// Store persists saved calculations in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (and migrates) a store at the given path. Use ":memory:" for
// an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		view TEXT NOT NULL,
		input_json TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts a calculation.
func (s *Store) Save(ctx context.Context, calc SavedCalculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, label, view, input_json, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		calc.ID, calc.Label, calc.View, calc.InputJSON, calc.ResultJSON,
		calc.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// List returns all saved calculations, newest first.
func (s *Store) List(ctx context.Context) ([]SavedCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, view, input_json, result_json, created_at
		FROM calculations
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var calcs []SavedCalculation
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}
	return calcs, rows.Err()
}

// Get returns one saved calculation, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, id string) (*SavedCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, label, view, input_json, result_json, created_at
		FROM calculations WHERE id = ?`, id)

	calc, err := scanCalculation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

// Delete removes a saved calculation. Reports whether a row existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete calculation: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row rowScanner) (SavedCalculation, error) {
	var calc SavedCalculation
	var createdAt string

	err := row.Scan(&calc.ID, &calc.Label, &calc.View,
		&calc.InputJSON, &calc.ResultJSON, &createdAt)
	if err != nil {
		return SavedCalculation{}, err
	}

	calc.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return SavedCalculation{}, fmt.Errorf("corrupt created_at for %s: %w", calc.ID, err)
	}
	return calc, nil
}
