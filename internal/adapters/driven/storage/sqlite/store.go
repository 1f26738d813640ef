package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tawa-digital/tawa-content/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/tawa-digital/tawa-content/internal/core/domain"
	"github.com/tawa-digital/tawa-content/internal/core/ports/driven"
)

// DefaultDataDir is the database directory used when none is configured.
const DefaultDataDir = ".tawa"

const databaseFile = "snapshots.db"

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// Store persists export runs and their snapshots in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the snapshot database in dataDir.
// If dataDir is empty, DefaultDataDir is used.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, databaseFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
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

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
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
		// "001_snapshots.up.sql" -> 1
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
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// BeginRun records the start of an export run.
func (s *Store) BeginRun(ctx context.Context, run domain.ExportRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO export_runs (id, started_at, routes)
		VALUES (?, ?, 0)
	`, run.ID, run.StartedAt.UTC())
	if err != nil {
		return fmt.Errorf("beginning run: %w", err)
	}
	return nil
}

// SaveSnapshot stores or replaces the view-model of one route.
// Returns domain.ErrNotFound if the run was never begun.
func (s *Store) SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	if _, err := s.getRun(ctx, snapshot.RunID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (run_id, route, kind, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, route) DO UPDATE SET
			kind = excluded.kind,
			payload = excluded.payload
	`, snapshot.RunID, snapshot.Route, snapshot.Kind, snapshot.Payload)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// FinishRun marks a run complete.
func (s *Store) FinishRun(ctx context.Context, runID string, finishedAt time.Time, routes int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE export_runs SET finished_at = ?, routes = ? WHERE id = ?
	`, finishedAt.UTC(), routes, runID)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteRun removes a run and its snapshots.
func (s *Store) DeleteRun(ctx context.Context, runID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("deleting run snapshots: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM export_runs WHERE id = ?`, runID); err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	return nil
}

// LatestRun returns the most recently finished run.
func (s *Store) LatestRun(ctx context.Context) (*domain.ExportRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, routes
		FROM export_runs
		WHERE finished_at IS NOT NULL
		ORDER BY finished_at DESC
		LIMIT 1
	`)
	return scanRun(row)
}

// GetSnapshot returns the snapshot of a route within a run.
func (s *Store) GetSnapshot(ctx context.Context, runID, route string) (*domain.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, route, kind, payload
		FROM snapshots WHERE run_id = ? AND route = ?
	`, runID, route)

	var snapshot domain.Snapshot
	if err := row.Scan(&snapshot.RunID, &snapshot.Route, &snapshot.Kind, &snapshot.Payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}
	return &snapshot, nil
}

// ListSnapshots returns every snapshot of a run ordered by route.
func (s *Store) ListSnapshots(ctx context.Context, runID string) ([]domain.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, route, kind, payload
		FROM snapshots WHERE run_id = ?
		ORDER BY route
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.Snapshot{}
	for rows.Next() {
		var snapshot domain.Snapshot
		if err := rows.Scan(&snapshot.RunID, &snapshot.Route, &snapshot.Kind, &snapshot.Payload); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

func (s *Store) getRun(ctx context.Context, id string) (*domain.ExportRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, routes
		FROM export_runs WHERE id = ?
	`, id)
	return scanRun(row)
}

func scanRun(row *sql.Row) (*domain.ExportRun, error) {
	var run domain.ExportRun
	var finishedAt sql.NullTime
	if err := row.Scan(&run.ID, &run.StartedAt, &finishedAt, &run.Routes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}
	return &run, nil
}
