package html

import (
	"fmt"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.BodyConverter = (*Converter)(nil)

// linkAttributes lists the element attributes rewritten to site-relative URLs.
var linkAttributes = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"img[src]", "src"},
}

// Converter turns rendered HTML into Markdown, or passes it through in
// BodyHTML mode.
type Converter struct {
	mode     domain.BodyMode
	siteHost string
	md       *md.Converter
}

// New creates a converter. siteURL identifies links to rewrite; it may be
// empty, in which case links are left untouched.
func New(mode domain.BodyMode, siteURL string) (*Converter, error) {
	if mode == "" {
		mode = domain.BodyMarkdown
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: body mode %q", domain.ErrInvalidInput, mode)
	}

	var host string
	if siteURL != "" {
		u, err := url.Parse(siteURL)
		if err != nil {
			return nil, fmt.Errorf("%w: site url: %v", domain.ErrInvalidInput, err)
		}
		host = canonicalHost(u.Host)
	}

	conv := md.NewConverter("", true, &md.Options{
		CodeBlockStyle: "fenced",
	})
	conv.Use(plugin.GitHubFlavored())

	return &Converter{
		mode:     mode,
		siteHost: host,
		md:       conv,
	}, nil
}

// Convert returns the body text for an HTML fragment.
func (c *Converter) Convert(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	if c.mode == domain.BodyHTML {
		return strings.TrimSpace(src), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	c.relativise(doc.Selection)

	return strings.TrimSpace(c.md.Convert(doc.Selection)), nil
}

// relativise rewrites absolute links to the site as root-relative URLs.
func (c *Converter) relativise(sel *goquery.Selection) {
	if c.siteHost == "" {
		return
	}

	for _, la := range linkAttributes {
		sel.Find(la.selector).Each(func(_ int, s *goquery.Selection) {
			raw, _ := s.Attr(la.attr)
			if rel, ok := c.relative(raw); ok {
				s.SetAttr(la.attr, rel)
			}
		})
	}
}

// relative returns the root-relative form of raw if it points at the site.
func (c *Converter) relative(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if canonicalHost(u.Host) != c.siteHost {
		return "", false
	}

	rel := u.EscapedPath()
	if rel == "" {
		rel = "/"
	}
	if u.RawQuery != "" {
		rel += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		rel += "#" + u.EscapedFragment()
	}
	return rel, true
}

// canonicalHost lowercases a host and drops a leading "www.".
func canonicalHost(host string) string {
	host = strings.ToLower(host)
	return strings.TrimPrefix(host, "www.")
}
