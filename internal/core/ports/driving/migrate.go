package driving

import (
	"context"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

// Migrator runs the export pipeline.
type Migrator interface {
	// Run fetches, maps, renders and writes every configured collection.
	// It stops at the first error and returns it.
	Run(ctx context.Context) error

	// Status returns a snapshot of the current or last run.
	Status() domain.RunStatus
}

// ProgressFunc is called synchronously after each processed record.
type ProgressFunc func(status domain.RunStatus)
