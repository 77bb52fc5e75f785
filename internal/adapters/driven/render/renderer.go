package render

import (
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
	"github.com/custodia-labs/wpmigrate/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// ErrMissingField indicates a required record attribute is absent or blank.
var ErrMissingField = errors.New("missing required field")

// Front-matter keys added to every page.
const (
	KeyLayout       = "layout"
	KeyPermalink    = "permalink"
	KeyRedirectFrom = "redirect_from"
)

// Indexes resolves IDs referenced by records.
type Indexes struct {
	Categories driven.TermIndex
	Tags       driven.TermIndex
	Authors    driven.TermIndex
}

// Options selects which attributes are copied into front-matter.
type Options struct {
	// ContentKeys is the whitelist for posts and pages, in output order.
	ContentKeys []string

	// AuthorKeys is the whitelist for author data files.
	AuthorKeys []string
}

// Renderer builds output documents from records.
type Renderer struct {
	opts Options
	idx  Indexes
	body driven.BodyConverter
}

// New creates a renderer. Empty key lists fall back to the defaults; a nil
// body converter passes HTML through unchanged.
func New(opts Options, idx Indexes, body driven.BodyConverter) *Renderer {
	if len(opts.ContentKeys) == 0 {
		opts.ContentKeys = domain.DefaultContentKeys()
	}
	if len(opts.AuthorKeys) == 0 {
		opts.AuthorKeys = domain.DefaultAuthorKeys()
	}
	return &Renderer{opts: opts, idx: idx, body: body}
}

// Render builds the document for a post or page.
func (r *Renderer) Render(rec domain.ContentRecord, loc domain.Location) (*domain.OutputDocument, error) {
	fail := func(field string, err error) error {
		return &domain.RenderError{RecordID: rec.ID, Field: field, Err: err}
	}

	title := strings.TrimSpace(html.UnescapeString(rec.Title))
	if title == "" {
		return nil, fail("title", ErrMissingField)
	}
	if strings.TrimSpace(rec.Body) == "" {
		return nil, fail("content", ErrMissingField)
	}

	body, err := r.convert(rec.Body)
	if err != nil {
		return nil, fail("content", err)
	}
	if body == "" {
		return nil, fail("content", ErrMissingField)
	}

	var fm domain.FrontMatter
	for _, key := range r.opts.ContentKeys {
		if !rec.Has(key) {
			continue
		}
		value, ok, err := r.value(rec, key)
		if err != nil {
			return nil, fail(key, err)
		}
		if ok {
			fm.Set(key, value)
		}
	}

	// Title, date and original URL are always present.
	fm.Set("title", title)
	if _, ok := fm.Get("date"); !ok && rec.Date != "" {
		fm.Set("date", rec.Date)
	}
	if _, ok := fm.Get("link"); !ok && rec.Link != "" {
		fm.Set("link", rec.Link)
	}

	redirects, err := r.redirects(rec, loc.Permalink)
	if err != nil {
		return nil, fail("categories", err)
	}

	fm.Set(KeyLayout, "legacy-"+rec.Type.String())
	fm.Set(KeyPermalink, loc.Permalink)
	fm.Set(KeyRedirectFrom, redirects)

	return &domain.OutputDocument{
		Path:        loc.Path,
		FrontMatter: fm,
		Body:        body,
		Kind:        domain.KindPage,
	}, nil
}

// RenderAuthor builds the data file for an author.
func (r *Renderer) RenderAuthor(author domain.Author, path string) (*domain.OutputDocument, error) {
	var fm domain.FrontMatter
	for _, key := range r.opts.AuthorKeys {
		if value, ok := author.Fields[key]; ok {
			fm.Set(key, value)
		}
	}
	if fm.Len() == 0 {
		return nil, &domain.RenderError{RecordID: author.ID, Err: ErrMissingField}
	}

	return &domain.OutputDocument{
		Path:        path,
		FrontMatter: fm,
		Kind:        domain.KindData,
	}, nil
}

func (r *Renderer) convert(src string) (string, error) {
	if r.body == nil {
		return strings.TrimSpace(src), nil
	}
	out, err := r.body.Convert(src)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// value returns the front-matter value of one attribute. ok is false when
// the attribute should be omitted.
func (r *Renderer) value(rec domain.ContentRecord, key string) (any, bool, error) {
	raw := rec.Fields[key]

	switch key {
	case "title":
		return html.UnescapeString(rendered(raw)), true, nil
	case "content", "excerpt", "guid":
		return strings.TrimSpace(rendered(raw)), true, nil
	case "categories":
		slugs, err := slugs(r.idx.Categories, domain.TaxonomyCategory, rec.CategoryIDs)
		return slugs, err == nil, err
	case "tags":
		slugs, err := slugs(r.idx.Tags, domain.TaxonomyTag, rec.TagIDs)
		return slugs, err == nil, err
	case "author":
		if r.idx.Authors == nil {
			return nil, false, nil
		}
		author, err := r.idx.Authors.Get(rec.AuthorID)
		if err != nil {
			logger.Warn("author=%d not found (record %d)", rec.AuthorID, rec.ID)
			return nil, false, nil
		}
		return author.Slug, true, nil
	default:
		return raw, true, nil
	}
}

// redirects lists the legacy category URLs of a post: /<category>/<name>/
// and, for child categories, /<parent>/<category>/<name>/.
func (r *Renderer) redirects(rec domain.ContentRecord, permalink string) ([]string, error) {
	redirects := []string{}
	if rec.Type != domain.ContentPost {
		return redirects, nil
	}

	trimmed := strings.Trim(permalink, "/")
	if trimmed == "" {
		return redirects, nil
	}
	name := trimmed[strings.LastIndex(trimmed, "/")+1:]

	seen := make(map[string]struct{})
	for _, id := range rec.CategoryIDs {
		category, err := lookup(r.idx.Categories, domain.TaxonomyCategory, id)
		if err != nil {
			return nil, err
		}

		redirect := "/" + category.Slug + "/" + name + "/"
		if redirect == permalink {
			continue
		}
		seen[redirect] = struct{}{}

		if category.Parent != 0 {
			parent, err := lookup(r.idx.Categories, domain.TaxonomyCategory, category.Parent)
			if err != nil {
				return nil, err
			}
			seen["/"+parent.Slug+redirect] = struct{}{}
		}
	}

	for redirect := range seen {
		redirects = append(redirects, redirect)
	}
	sort.Strings(redirects)
	return redirects, nil
}

func lookup(index driven.TermIndex, taxonomy domain.Taxonomy, id int64) (domain.Term, error) {
	if index == nil {
		return domain.Term{}, fmt.Errorf("%s %d: %w", taxonomy, id, domain.ErrNotFound)
	}
	term, err := index.Get(id)
	if err != nil {
		return domain.Term{}, fmt.Errorf("%s %d: %w", taxonomy, id, err)
	}
	return term, nil
}

func slugs(index driven.TermIndex, taxonomy domain.Taxonomy, ids []int64) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		term, err := lookup(index, taxonomy, id)
		if err != nil {
			return nil, err
		}
		out = append(out, term.Slug)
	}
	return out, nil
}

// rendered unwraps {"rendered": "..."} objects.
func rendered(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["rendered"].(string); ok {
			return s
		}
	}
	return ""
}
