package driven

import (
	"context"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

// DocumentWriter persists documents under an output root.
type DocumentWriter interface {
	// Write creates missing directories and writes doc, overwriting any
	// existing file. Fails with *domain.WriteError.
	Write(ctx context.Context, doc *domain.OutputDocument) (domain.WriteResult, error)

	// Root returns the output root directory.
	Root() string
}
