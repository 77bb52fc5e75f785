package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

type bodyEncoder struct{ err error }

func (e bodyEncoder) Encode(doc *domain.OutputDocument) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []byte(doc.Body), nil
}

func TestWriter_Write(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root, bodyEncoder{})
	ctx := context.Background()

	doc := &domain.OutputDocument{Path: "a/b/index.md", Body: "one"}

	result, err := w.Write(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteCreated, result)

	data, err := os.ReadFile(filepath.Join(root, "a", "b", "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	result, err = w.Write(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteUnchanged, result)

	doc.Body = "two"
	result, err = w.Write(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, domain.WriteUpdated, result)

	data, err = os.ReadFile(filepath.Join(root, "a", "b", "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
	assert.Equal(t, root, w.Root())
}

func TestWriter_Write_RootIndex(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(filepath.Join(root, "out"), bodyEncoder{})

	_, err := w.Write(context.Background(), &domain.OutputDocument{Path: "index.md", Body: "home"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "out", "index.md"))
}

func TestWriter_Write_Errors(t *testing.T) {
	encodeErr := errors.New("encode failed")

	tests := []struct {
		name    string
		path    string
		encoder bodyEncoder
		cause   error
	}{
		{name: "escapes root", path: "../evil.md", cause: ErrOutsideRoot},
		{name: "absolute", path: "/etc/passwd", cause: domain.ErrInvalidInput},
		{name: "empty", path: "", cause: domain.ErrInvalidInput},
		{name: "encoder failure", path: "x/index.md", encoder: bodyEncoder{err: encodeErr}, cause: encodeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(t.TempDir(), tt.encoder)

			_, err := w.Write(context.Background(), &domain.OutputDocument{Path: tt.path})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrWrite)
			assert.ErrorIs(t, err, tt.cause)

			var writeErr *domain.WriteError
			require.ErrorAs(t, err, &writeErr)
			assert.Equal(t, tt.path, writeErr.Path)
		})
	}
}

func TestWriter_Write_DirectoryBlockedByFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("file"), 0o644))

	w := NewWriter(root, bodyEncoder{})
	_, err := w.Write(context.Background(), &domain.OutputDocument{Path: "a/index.md", Body: "x"})
	assert.ErrorIs(t, err, domain.ErrWrite)
}

func TestWriter_Write_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWriter(t.TempDir(), bodyEncoder{})
	_, err := w.Write(ctx, &domain.OutputDocument{Path: "index.md"})
	assert.ErrorIs(t, err, context.Canceled)
}
