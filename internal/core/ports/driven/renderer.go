package driven

import "github.com/custodia-labs/wpmigrate/internal/core/domain"

// Renderer turns records into output documents.
// Rendering is deterministic and side-effect free.
type Renderer interface {
	// Render builds the document for a post or page at loc.
	// Fails with *domain.RenderError when title or body is absent or a
	// referenced term is unknown.
	Render(rec domain.ContentRecord, loc domain.Location) (*domain.OutputDocument, error)

	// RenderAuthor builds the data file for an author at path.
	RenderAuthor(author domain.Author, path string) (*domain.OutputDocument, error)
}

// DocumentEncoder serialises documents to file content.
type DocumentEncoder interface {
	// Encode returns the bytes written to disk for doc.
	Encode(doc *domain.OutputDocument) ([]byte, error)
}
