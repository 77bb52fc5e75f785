package domain

import "time"

const unknownDescription = "Unknown"

// OutputLayout decides how records are placed in the output tree.
type OutputLayout string

// Available layouts.
const (
	// LayoutPermalink mirrors every record's URL path as <path>/index.md.
	LayoutPermalink OutputLayout = "permalink"

	// LayoutJekyll puts posts in _posts/YYYY-MM-DD-<title>.md and pages
	// under their URL path.
	LayoutJekyll OutputLayout = "jekyll"
)

// IsValid returns true if the layout is recognised.
func (l OutputLayout) IsValid() bool {
	switch l {
	case LayoutPermalink, LayoutJekyll:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l OutputLayout) String() string {
	return string(l)
}

// Description returns a human-readable description of the layout.
func (l OutputLayout) Description() string {
	switch l {
	case LayoutPermalink:
		return "Permalink (one index.md per URL path)"
	case LayoutJekyll:
		return "Jekyll (_posts for posts, URL paths for pages)"
	default:
		return unknownDescription
	}
}

// FrontMatterFormat selects the front-matter syntax.
type FrontMatterFormat string

// Available front-matter formats.
const (
	FormatYAML FrontMatterFormat = "yaml"
	FormatTOML FrontMatterFormat = "toml"
)

// IsValid returns true if the format is recognised.
func (f FrontMatterFormat) IsValid() bool {
	return f == FormatYAML || f == FormatTOML
}

// String returns the string representation.
func (f FrontMatterFormat) String() string {
	return string(f)
}

// Delimiter returns the fence line surrounding the front-matter block.
func (f FrontMatterFormat) Delimiter() string {
	if f == FormatTOML {
		return "+++"
	}
	return "---"
}

// BodyMode selects how rendered HTML bodies are emitted.
type BodyMode string

// Available body modes.
const (
	// BodyMarkdown converts HTML to Markdown.
	BodyMarkdown BodyMode = "markdown"

	// BodyHTML passes the HTML through unchanged.
	BodyHTML BodyMode = "html"
)

// IsValid returns true if the body mode is recognised.
func (m BodyMode) IsValid() bool {
	return m == BodyMarkdown || m == BodyHTML
}

// String returns the string representation.
func (m BodyMode) String() string {
	return string(m)
}

// DefaultContentKeys are the record attributes copied into front-matter.
func DefaultContentKeys() []string {
	return []string{
		"id", "date", "date_gmt", "guid", "modified", "modified_gmt",
		"slug", "status", "type", "link", "title", "excerpt", "author",
		"featured_media", "comment_status", "ping_status", "sticky",
		"template", "format", "meta", "categories", "tags", "acf",
	}
}

// DefaultAuthorKeys are the user attributes written to author data files.
func DefaultAuthorKeys() []string {
	return []string{"id", "name", "url", "description", "slug", "meta", "acf"}
}

// Settings is the resolved configuration of a migration run.
type Settings struct {
	// BaseURL is the site root, e.g. "https://example.org".
	BaseURL string

	// APIPath is appended to BaseURL to reach the REST namespace.
	APIPath string

	// OutputDir is the root of the generated tree.
	OutputDir string

	Layout OutputLayout
	Format FrontMatterFormat
	Body   BodyMode

	// ContentTypes lists the collections to export, in order.
	ContentTypes []ContentType

	// ContentKeys is the front-matter whitelist for posts and pages.
	ContentKeys []string

	// AuthorKeys is the whitelist for author data files.
	AuthorKeys []string

	// FilterTags skips posts tagged with any of these tag names.
	FilterTags []string

	// WriteAuthors enables _data/authors/<slug>.yml output.
	WriteAuthors bool

	// PerPage is the page size requested from the API (1-100).
	PerPage int

	Timeout   time.Duration
	UserAgent string

	// Rate caps requests per second. Zero disables throttling.
	Rate float64

	// User selects HTTP Basic auth with Token as the application password.
	// When empty, Token is sent as a bearer token (JWT or OAuth).
	User string

	// Token is an optional credential; see User.
	Token string
}

// Endpoint returns the REST namespace URL.
func (s Settings) Endpoint() string {
	return s.BaseURL + s.APIPath
}

// DefaultSettings returns the settings used when nothing is configured.
// BaseURL has no default.
func DefaultSettings() Settings {
	return Settings{
		APIPath:      "/wp-json/wp/v2",
		OutputDir:    "output",
		Layout:       LayoutPermalink,
		Format:       FormatYAML,
		Body:         BodyMarkdown,
		ContentTypes: []ContentType{ContentPost, ContentPage},
		ContentKeys:  DefaultContentKeys(),
		AuthorKeys:   DefaultAuthorKeys(),
		WriteAuthors: true,
		PerPage:      100,
		Timeout:      30 * time.Second,
		UserAgent:    "wpmigrate",
	}
}
