package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrPathCollision", ErrPathCollision},
		{"ErrFetch", ErrFetch},
		{"ErrRender", ErrRender},
		{"ErrWrite", ErrWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestStageErrors_MatchSentinel(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		others   []error
	}{
		{
			name:     "fetch",
			err:      &FetchError{Collection: "posts", Page: 2, Err: cause},
			sentinel: ErrFetch,
			others:   []error{ErrRender, ErrWrite},
		},
		{
			name:     "render",
			err:      &RenderError{RecordID: 7, Field: "title", Err: cause},
			sentinel: ErrRender,
			others:   []error{ErrFetch, ErrWrite},
		},
		{
			name:     "write",
			err:      &WriteError{Path: "about/index.md", Err: cause},
			sentinel: ErrWrite,
			others:   []error{ErrFetch, ErrRender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("run: %w", tt.err)

			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.ErrorIs(t, wrapped, cause)
			for _, other := range tt.others {
				assert.NotErrorIs(t, wrapped, other)
			}
		})
	}
}

func TestFetchError_Message(t *testing.T) {
	err := &FetchError{Collection: "pages", Page: 3, Err: errors.New("status 500")}
	assert.Equal(t, "fetch pages page 3: status 500", err.Error())
}

func TestRenderError_Message(t *testing.T) {
	withField := &RenderError{RecordID: 12, Field: "title", Err: ErrNotFound}
	assert.Equal(t, "render record 12: title: not found", withField.Error())

	withoutField := &RenderError{RecordID: 12, Err: ErrInvalidInput}
	assert.Equal(t, "render record 12: invalid input", withoutField.Error())
}

func TestWriteError_Collision(t *testing.T) {
	err := &WriteError{Path: "about/index.md", Err: ErrPathCollision}

	assert.ErrorIs(t, err, ErrPathCollision)
	assert.ErrorIs(t, err, ErrWrite)
	assert.Equal(t, "write about/index.md: output path collision", err.Error())

	var target *WriteError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &target))
	assert.Equal(t, "about/index.md", target.Path)
}
