package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
	"github.com/custodia-labs/wpmigrate/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// ErrOutsideRoot indicates a document path escaping the output root.
var ErrOutsideRoot = errors.New("path escapes output root")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer encodes documents and writes them below root.
type Writer struct {
	root    string
	encoder driven.DocumentEncoder
}

// NewWriter creates a writer for the given output root.
func NewWriter(root string, encoder driven.DocumentEncoder) *Writer {
	return &Writer{root: root, encoder: encoder}
}

// Root returns the output root directory.
func (w *Writer) Root() string {
	return w.root
}

// Write encodes doc and writes it to <root>/<doc.Path>. Missing directories
// are created and existing files overwritten. A file that already holds the
// same bytes is left untouched.
func (w *Writer) Write(ctx context.Context, doc *domain.OutputDocument) (domain.WriteResult, error) {
	fail := func(err error) (domain.WriteResult, error) {
		return 0, &domain.WriteError{Path: doc.Path, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	target, err := w.resolve(doc.Path)
	if err != nil {
		return fail(err)
	}

	data, err := w.encoder.Encode(doc)
	if err != nil {
		return fail(err)
	}

	result := domain.WriteCreated
	existing, err := os.ReadFile(target)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			logger.Debug("unchanged %s", doc.Path)
			return domain.WriteUnchanged, nil
		}
		result = domain.WriteUpdated
	case !errors.Is(err, os.ErrNotExist):
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return fail(fmt.Errorf("create directory: %w", err))
	}
	if err := os.WriteFile(target, data, filePerm); err != nil {
		return fail(err)
	}

	logger.Debug("wrote %s (%d bytes)", doc.Path, len(data))
	return result, nil
}

// resolve maps a slash-separated relative path to a file below root.
func (w *Writer) resolve(rel string) (string, error) {
	if rel == "" || strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidInput, rel)
	}
	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}
	return filepath.Join(w.root, filepath.FromSlash(clean)), nil
}
