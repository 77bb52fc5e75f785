package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPathCollision indicates two records resolved to the same output path
	// within one run.
	ErrPathCollision = errors.New("output path collision")

	// Pipeline stage errors. Every FetchError, RenderError and WriteError
	// matches the corresponding sentinel with errors.Is.

	// ErrFetch indicates the content API could not be read.
	ErrFetch = errors.New("fetch failed")

	// ErrRender indicates a record could not be turned into a document.
	ErrRender = errors.New("render failed")

	// ErrWrite indicates a document could not be written to disk.
	ErrWrite = errors.New("write failed")
)

// FetchError reports a network failure or a non-success API response.
type FetchError struct {
	Collection string
	Page       int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s page %d: %v", e.Collection, e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches ErrFetch.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// RenderError reports a record with missing or unresolvable fields.
type RenderError struct {
	RecordID int64
	Field    string
	Err      error
}

func (e *RenderError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("render record %d: %s: %v", e.RecordID, e.Field, e.Err)
	}
	return fmt.Sprintf("render record %d: %v", e.RecordID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Is matches ErrRender.
func (e *RenderError) Is(target error) bool { return target == ErrRender }

// WriteError reports a filesystem failure for one output path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is matches ErrWrite.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }
