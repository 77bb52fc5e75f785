package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
)

// Ensure TermStore implements the interface.
var _ driven.TermIndex = (*TermStore)(nil)

// TermStore is an in-memory index of one taxonomy.
type TermStore struct {
	mu       sync.RWMutex
	terms    map[int64]domain.Term
	filter   map[string]struct{}
	filtered map[int64]struct{}
}

// NewTermStore creates an empty index. Terms whose name is in filterNames
// are marked as filtered when added.
func NewTermStore(filterNames ...string) *TermStore {
	filter := make(map[string]struct{}, len(filterNames))
	for _, name := range filterNames {
		filter[name] = struct{}{}
	}
	return &TermStore{
		terms:    make(map[int64]domain.Term),
		filter:   filter,
		filtered: make(map[int64]struct{}),
	}
}

// Add indexes a term.
func (s *TermStore) Add(term domain.Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.terms[term.ID]; ok {
		return fmt.Errorf("%s %d: %w", term.Taxonomy, term.ID, domain.ErrAlreadyExists)
	}
	s.terms[term.ID] = term

	if _, ok := s.filter[term.Name]; ok {
		s.filtered[term.ID] = struct{}{}
	}
	return nil
}

// Get retrieves a term by ID.
func (s *TermStore) Get(id int64) (domain.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term, ok := s.terms[id]
	if !ok {
		return domain.Term{}, domain.ErrNotFound
	}
	return term, nil
}

// IsFiltered reports whether any of ids is a filtered term.
func (s *TermStore) IsFiltered(ids []int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range ids {
		if _, ok := s.filtered[id]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of indexed terms.
func (s *TermStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.terms)
}
