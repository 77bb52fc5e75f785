package driven

import "github.com/custodia-labs/wpmigrate/internal/core/domain"

// PathMapper derives output locations from records.
// Mapping is a pure function of the record.
type PathMapper interface {
	// Map returns the output path and permalink of a post or page.
	// Fails with domain.ErrInvalidInput for URLs that cannot be mapped.
	Map(rec domain.ContentRecord) (domain.Location, error)

	// AuthorKey returns the name front-matter uses to reference an author.
	// It matches the base name of the file MapAuthor returns.
	AuthorKey(author domain.Author) string

	// MapAuthor returns the output path of an author data file.
	MapAuthor(author domain.Author) (string, error)
}
