package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
)

// Ensure PathRegistry implements the interface.
var _ driven.PathRegistry = (*PathRegistry)(nil)

// PathRegistry is an in-memory set of claimed output paths.
type PathRegistry struct {
	mu     sync.Mutex
	owners map[string]string
}

// NewPathRegistry creates an empty registry.
func NewPathRegistry() *PathRegistry {
	return &PathRegistry{owners: make(map[string]string)}
}

// Claim records path for owner. Claiming the same path again for the same
// owner is allowed.
func (r *PathRegistry) Claim(path, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.owners[path]; ok && existing != owner {
		return fmt.Errorf("%w: %s already written for %s", domain.ErrPathCollision, path, existing)
	}
	r.owners[path] = owner
	return nil
}
