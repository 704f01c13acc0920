package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Epistemic-Technology/pdfsplit/internal/logger"
	"github.com/Epistemic-Technology/pdfsplit/models"
)

// timeLayout is fixed width so created_at sorts lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(dbPath string, log logger.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across queries
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db, log: log}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the database tables if they don't exist
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source_path TEXT,
		source_url TEXT,
		zotero_id TEXT,
		output_dir TEXT NOT NULL,
		pages_per_chunk INTEGER NOT NULL,
		page_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_chunks (
		run_id TEXT NOT NULL,
		chunk_number INTEGER NOT NULL,
		path TEXT NOT NULL,
		first_page INTEGER NOT NULL,
		last_page INTEGER NOT NULL,
		PRIMARY KEY (run_id, chunk_number),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordRun stores a run and its chunk files in one transaction
func (s *SQLiteStore) RecordRun(ctx context.Context, run *models.SplitRun) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.ChunkCount = len(run.Chunks)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, source_path, source_url, zotero_id, output_dir, pages_per_chunk, page_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.Source.Path, run.Source.URL, run.Source.ZoteroID, run.OutputDir,
		run.PagesPerChunk, run.PageCount, run.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_chunks WHERE run_id = ?`, run.RunID); err != nil {
		return "", fmt.Errorf("failed to clear chunks: %w", err)
	}

	for _, c := range run.Chunks {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_chunks (run_id, chunk_number, path, first_page, last_page)
			VALUES (?, ?, ?, ?, ?)
		`, run.RunID, c.Number, c.Path, c.FirstPage, c.LastPage)
		if err != nil {
			return "", fmt.Errorf("failed to insert chunk %d: %w", c.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.log != nil {
		s.log.Debug("Recorded run %s with %d chunks", run.RunID, len(run.Chunks))
	}
	return run.RunID, nil
}

// GetRun retrieves a run by ID with its chunk files
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*models.SplitRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, source_url, zotero_id, output_dir, pages_per_chunk, page_count, created_at,
			(SELECT COUNT(*) FROM run_chunks WHERE run_id = runs.id)
		FROM runs
		WHERE id = ?
	`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT chunk_number, path, first_page, last_page FROM run_chunks
		WHERE run_id = ?
		ORDER BY chunk_number
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.ChunkFile
		if err := rows.Scan(&c.Number, &c.Path, &c.FirstPage, &c.LastPage); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		run.Chunks = append(run.Chunks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chunks: %w", err)
	}

	return run, nil
}

// ListRuns returns recorded runs, newest first
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]models.SplitRun, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, source_url, zotero_id, output_dir, pages_per_chunk, page_count, created_at,
			(SELECT COUNT(*) FROM run_chunks WHERE run_id = runs.id)
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.SplitRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run and its chunk records
func (s *SQLiteStore) DeleteRun(ctx context.Context, runID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_chunks WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("failed to delete chunks: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.SplitRun, error) {
	var run models.SplitRun
	var sourcePath, sourceURL, zoteroID sql.NullString
	var createdAt string

	err := row.Scan(&run.RunID, &sourcePath, &sourceURL, &zoteroID, &run.OutputDir,
		&run.PagesPerChunk, &run.PageCount, &createdAt, &run.ChunkCount)
	if err != nil {
		return nil, err
	}

	run.Source = models.SourceInfo{
		Path:     sourcePath.String,
		URL:      sourceURL.String,
		ZoteroID: zoteroID.String,
	}
	run.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	return &run, nil
}

// Ensure SQLiteStore implements Store interface
var _ Store = (*SQLiteStore)(nil)
