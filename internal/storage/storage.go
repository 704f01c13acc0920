package storage

import (
	"context"
	"errors"

	"github.com/Epistemic-Technology/pdfsplit/models"
)

// ErrRunNotFound is returned when a run ID has no record
var ErrRunNotFound = errors.New("run not found")

// Store defines the interface for recording split runs
type Store interface {
	// RecordRun stores a run and its chunk files, assigning a run ID when the
	// run has none. Returns the run ID.
	RecordRun(ctx context.Context, run *models.SplitRun) (string, error)

	// GetRun retrieves a run with its chunk files
	GetRun(ctx context.Context, runID string) (*models.SplitRun, error)

	// ListRuns returns the most recent runs first, without chunk files.
	// A limit of zero or less returns every run.
	ListRuns(ctx context.Context, limit int) ([]models.SplitRun, error)

	// DeleteRun removes a run and its chunk records. Files on disk are untouched.
	DeleteRun(ctx context.Context, runID string) error

	// Close closes the database connection
	Close() error
}
