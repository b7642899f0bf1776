package storage

import (
	"errors"

	"github.com/julianstephens/bloom/internal/models"
)

// ErrNotInitialized is returned by Load when no snapshot has been persisted
// yet. Callers treat it as "start from a fresh seed", not as a failure.
var ErrNotInitialized = errors.New("storage not initialized")

// Provider persists the application snapshot. Implementations hold the
// serialized copy at rest; the in-memory snapshot is owned by the session.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple bloom processes against the same storage path is
//     not supported and may lead to data loss.
type Provider interface {
	// Init creates the storage location and persists the initial snapshot.
	// It fails if storage already exists.
	Init(initial models.AppState) error

	// Load reads the persisted snapshot. Missing optional fields are
	// defaulted; a missing store returns ErrNotInitialized.
	Load() (models.AppState, error)

	// Save persists the snapshot, replacing what is at rest.
	Save(models.AppState) error

	// Clear removes the persisted snapshot so a subsequent Load reports
	// ErrNotInitialized.
	Clear() error

	Close() error

	// GetConfigPath returns the path of the underlying storage file.
	GetConfigPath() string
}
