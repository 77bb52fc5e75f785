package domain

import (
	"strings"
	"time"
)

// ContentType identifies the kind of WordPress object a record came from.
type ContentType string

// Content types exported by the migration.
const (
	// ContentPost is a dated blog post.
	ContentPost ContentType = "post"

	// ContentPage is a static, usually hierarchical, page.
	ContentPage ContentType = "page"
)

// IsValid returns true if the content type is recognised.
func (t ContentType) IsValid() bool {
	return t == ContentPost || t == ContentPage
}

// Collection returns the REST collection the content type is listed under.
func (t ContentType) Collection() string {
	return string(t) + "s"
}

// String returns the string representation.
func (t ContentType) String() string {
	return string(t)
}

// ContentRecord is one post or page fetched from the WordPress API.
// Records are immutable once fetched and discarded after being written.
type ContentRecord struct {
	// ID is the WordPress object identifier.
	ID int64

	// Type is the object type ("post" or "page").
	Type ContentType

	// Slug is the WordPress slug, unique within its type.
	Slug string

	// Link is the original public URL of the object.
	Link string

	// Title is the rendered title. Empty means absent.
	Title string

	// Body is the rendered HTML content. Empty means absent.
	Body string

	// Date is the local publication timestamp as sent by WordPress
	// (no zone, e.g. "2019-04-02T13:45:10").
	Date string

	// AuthorID references a user.
	AuthorID int64

	// CategoryIDs references categories in order.
	CategoryIDs []int64

	// TagIDs references tags in order.
	TagIDs []int64

	// Fields holds every top-level attribute of the API object as decoded
	// JSON (string, int64, float64, bool, nil, []any, map[string]any).
	Fields map[string]any
}

// Has reports whether the API object carried the given attribute.
func (r ContentRecord) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// PublishedAt parses Date. Returns the zero time and false when the date
// is missing or malformed.
func (r ContentRecord) PublishedAt() (time.Time, bool) {
	if strings.TrimSpace(r.Date) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02T15:04:05", r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Location is where a record lands in the output tree.
type Location struct {
	// Path is the slash-separated file path relative to the output root.
	Path string

	// Permalink is the site path the record is served at, with leading
	// and trailing slash ("/" for the site root).
	Permalink string
}
