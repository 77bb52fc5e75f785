package paths

import (
	"fmt"
	"html"
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
	"github.com/custodia-labs/wpmigrate/internal/logger"
)

// Ensure Mapper implements the interface.
var _ driven.PathMapper = (*Mapper)(nil)

const (
	// IndexFile is the file name a directory-style URL maps to.
	IndexFile = "index.md"

	// Extension is appended to generated file names.
	Extension = ".md"

	// PostsDir holds posts in the jekyll layout.
	PostsDir = "_posts"

	// AuthorsDir holds author data files.
	AuthorsDir = "_data/authors"
)

// strippedExtensions are dropped from the last URL segment.
var strippedExtensions = []string{".html", ".htm", ".php"}

// plainQueryKeys identify WordPress "plain" permalinks such as /?p=123.
var plainQueryKeys = []string{"p", "page_id", "attachment_id"}

// Mapper derives output locations for a given layout.
type Mapper struct {
	layout    domain.OutputLayout
	warnPlain sync.Once
}

// NewMapper creates a mapper. An empty layout means permalink.
func NewMapper(layout domain.OutputLayout) *Mapper {
	if layout == "" {
		layout = domain.LayoutPermalink
	}
	return &Mapper{layout: layout}
}

// Map returns the output path and permalink of a record.
func (m *Mapper) Map(rec domain.ContentRecord) (domain.Location, error) {
	permalink, err := Permalink(rec.Link)
	if err != nil {
		return domain.Location{}, err
	}
	if IsPlainPermalink(rec.Link) {
		m.warnPlain.Do(func() {
			logger.Warn("%s %d: link %s uses plain permalinks, so records share %s; enable pretty permalinks on the site",
				rec.Type, rec.ID, rec.Link, IndexFile)
		})
	}

	if m.layout == domain.LayoutJekyll && rec.Type == domain.ContentPost {
		p, err := PostPath(rec)
		if err != nil {
			return domain.Location{}, err
		}
		return domain.Location{Path: p, Permalink: permalink}, nil
	}

	p, err := OutputPath(rec.Link)
	if err != nil {
		return domain.Location{}, err
	}
	return domain.Location{Path: p, Permalink: permalink}, nil
}

// AuthorKey returns the name an author is referenced by from front-matter,
// which is also the base name of its data file. Percent-encoded slugs are
// decoded before slugifying, so "jos%c3%a9" becomes "jose".
func (m *Mapper) AuthorKey(author domain.Author) string {
	return AuthorKey(author.Slug)
}

// AuthorKey slugifies a raw WordPress author slug.
func AuthorKey(raw string) string {
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	return slug.Make(raw)
}

// MapAuthor returns _data/authors/<key>.yml.
func (m *Mapper) MapAuthor(author domain.Author) (string, error) {
	name := AuthorKey(author.Slug)
	if name == "" {
		return "", fmt.Errorf("%w: author %d has no slug", domain.ErrInvalidInput, author.ID)
	}
	return AuthorsDir + "/" + name + ".yml", nil
}

// OutputPath maps a URL (absolute or path-only) to a slash-separated file
// path relative to the output root. "/about/" and "/about" both map to
// "about/index.md"; "/" and "" map to "index.md".
func OutputPath(rawURL string) (string, error) {
	segments, err := Segments(rawURL)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return IndexFile, nil
	}
	return path.Join(segments...) + "/" + IndexFile, nil
}

// Permalink returns the URL path with a leading and trailing slash.
func Permalink(rawURL string) (string, error) {
	segments, err := Segments(rawURL)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "/", nil
	}
	return "/" + strings.Join(segments, "/") + "/", nil
}

// Segments splits the path of rawURL into cleaned segments. Scheme, host,
// query and fragment are ignored. Segments are percent-decoded and NFC
// normalised; "." and ".." are rejected.
func Segments(rawURL string) ([]string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("%w: url %q: %v", domain.ErrInvalidInput, rawURL, err)
	}

	var segments []string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == "" {
			continue
		}
		seg = norm.NFC.String(seg)
		if seg == "." || seg == ".." {
			return nil, fmt.Errorf("%w: url %q contains a relative segment", domain.ErrInvalidInput, rawURL)
		}
		if strings.ContainsAny(seg, "\\\x00") {
			return nil, fmt.Errorf("%w: url %q contains an invalid character", domain.ErrInvalidInput, rawURL)
		}
		segments = append(segments, seg)
	}

	if n := len(segments); n > 0 {
		last, stripped := stripExtension(segments[n-1])
		switch {
		case last == "" || (stripped && last == "index"):
			segments = segments[:n-1]
		default:
			segments[n-1] = last
		}
	}

	return segments, nil
}

// IsPlainPermalink reports whether rawURL is a query-string permalink
// (/?p=1, /?page_id=2) whose path carries no location.
func IsPlainPermalink(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || strings.Trim(u.Path, "/") != "" {
		return false
	}
	q := u.Query()
	for _, key := range plainQueryKeys {
		if q.Has(key) {
			return true
		}
	}
	return false
}

func stripExtension(seg string) (string, bool) {
	lower := strings.ToLower(seg)
	for _, ext := range strippedExtensions {
		if strings.HasSuffix(lower, ext) {
			return seg[:len(seg)-len(ext)], true
		}
	}
	return seg, false
}

// PostPath returns _posts/YYYY-MM-DD-<title-slug>.md for a post. The slug is
// built from the unescaped title, falling back to the record slug.
func PostPath(rec domain.ContentRecord) (string, error) {
	published, ok := rec.PublishedAt()
	if !ok {
		return "", fmt.Errorf("%w: post %d has no valid date", domain.ErrInvalidInput, rec.ID)
	}

	name := TitleSlug(rec)
	if name == "" {
		return "", fmt.Errorf("%w: post %d has neither title nor slug", domain.ErrInvalidInput, rec.ID)
	}

	return PostsDir + "/" + published.Format("2006-01-02") + "-" + name + Extension, nil
}

// TitleSlug slugifies the record title, or its slug when the title is empty.
func TitleSlug(rec domain.ContentRecord) string {
	if s := slug.Make(html.UnescapeString(rec.Title)); s != "" {
		return s
	}
	return slug.Make(rec.Slug)
}
