package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ceplan/fichas/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ResultStore = (*Store)(nil)

// Store is a SQLite-based result store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.fichas/data/fichas.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fichas", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "fichas.db")

	// WAL lets the watch command write while list/show read.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every pending "NNN_name.up.sql" file in version order,
// each in its own transaction together with its schema_migrations row.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// Save stores or replaces the result for a ficha code.
func (s *Store) Save(ctx context.Context, ficha *domain.ProcessedFicha) error {
	if ficha == nil || ficha.Code == "" {
		return domain.ErrInvalidInput
	}

	input, err := json.Marshal(ficha.Input)
	if err != nil {
		return fmt.Errorf("marshalling input: %w", err)
	}
	content, err := json.Marshal(ficha.Content)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	audit, err := json.Marshal(ficha.Audit)
	if err != nil {
		return fmt.Errorf("marshalling audit: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fichas (code, id, run_id, input, content, audit, rubro, subrubro, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			id = excluded.id,
			run_id = excluded.run_id,
			input = excluded.input,
			content = excluded.content,
			audit = excluded.audit,
			rubro = excluded.rubro,
			subrubro = excluded.subrubro,
			processed_at = excluded.processed_at
	`, ficha.Code, ficha.ID, ficha.RunID, string(input), string(content), string(audit),
		ficha.Classification.Rubro, ficha.Classification.Subrubro,
		ficha.ProcessedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("saving ficha: %w", err)
	}
	return nil
}

const selectFichas = `
	SELECT code, id, run_id, input, content, audit, rubro, subrubro, processed_at
	FROM fichas`

// Get retrieves the result for a ficha code.
func (s *Store) Get(ctx context.Context, code string) (*domain.ProcessedFicha, error) {
	row := s.db.QueryRowContext(ctx, selectFichas+" WHERE code = ?", code)

	ficha, err := scanFicha(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ficha, nil
}

// List returns all results ordered by code.
func (s *Store) List(ctx context.Context) ([]domain.ProcessedFicha, error) {
	return s.query(ctx, selectFichas+" ORDER BY code")
}

// ListByRun returns the results of one run ordered by code.
func (s *Store) ListByRun(ctx context.Context, runID string) ([]domain.ProcessedFicha, error) {
	return s.query(ctx, selectFichas+" WHERE run_id = ? ORDER BY code", runID)
}

// Delete removes the result for a ficha code.
func (s *Store) Delete(ctx context.Context, code string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM fichas WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("deleting ficha: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting ficha: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]domain.ProcessedFicha, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying fichas: %w", err)
	}
	defer rows.Close()

	fichas := []domain.ProcessedFicha{}
	for rows.Next() {
		ficha, err := scanFicha(rows)
		if err != nil {
			return nil, err
		}
		fichas = append(fichas, *ficha)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fichas: %w", err)
	}
	return fichas, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFicha(row scanner) (*domain.ProcessedFicha, error) {
	var (
		ficha                 domain.ProcessedFicha
		input, content, audit string
		processedAt           string
	)
	if err := row.Scan(&ficha.Code, &ficha.ID, &ficha.RunID, &input, &content, &audit,
		&ficha.Classification.Rubro, &ficha.Classification.Subrubro, &processedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning ficha: %w", err)
	}

	if err := json.Unmarshal([]byte(input), &ficha.Input); err != nil {
		return nil, fmt.Errorf("unmarshalling input of %s: %w", ficha.Code, err)
	}
	if err := json.Unmarshal([]byte(content), &ficha.Content); err != nil {
		return nil, fmt.Errorf("unmarshalling content of %s: %w", ficha.Code, err)
	}
	if err := json.Unmarshal([]byte(audit), &ficha.Audit); err != nil {
		return nil, fmt.Errorf("unmarshalling audit of %s: %w", ficha.Code, err)
	}

	t, err := time.Parse(time.RFC3339Nano, processedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing processed_at of %s: %w", ficha.Code, err)
	}
	ficha.ProcessedAt = t

	return &ficha, nil
}
