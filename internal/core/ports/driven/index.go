package driven

import "github.com/custodia-labs/wpmigrate/internal/core/domain"

// TermIndex holds the terms of one taxonomy for the duration of a run.
type TermIndex interface {
	// Add indexes a term. Returns domain.ErrAlreadyExists for a duplicate ID.
	Add(term domain.Term) error

	// Get returns the term with the given ID or domain.ErrNotFound.
	Get(id int64) (domain.Term, error)

	// IsFiltered reports whether any of ids belongs to a filtered term.
	IsFiltered(ids []int64) bool

	// Len returns the number of indexed terms.
	Len() int
}

// PathRegistry tracks output paths claimed during a run.
type PathRegistry interface {
	// Claim records path for the given owner. Returns domain.ErrPathCollision
	// if another owner already claimed it.
	Claim(path string, owner string) error
}
