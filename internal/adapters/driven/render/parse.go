package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
)

// ParsedDocument is an emitted file read back from disk.
type ParsedDocument struct {
	// FrontMatter is nil when the file has no front-matter block.
	FrontMatter map[string]any
	Body        string
}

// ParseDocument reads a Markdown file with YAML or TOML front-matter.
func ParseDocument(r io.Reader) (*ParsedDocument, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front-matter: %w", err)
	}
	return &ParsedDocument{
		FrontMatter: meta,
		Body:        strings.TrimSpace(string(body)),
	}, nil
}

// ParseBytes is ParseDocument for in-memory content.
func ParseBytes(data []byte) (*ParsedDocument, error) {
	return ParseDocument(bytes.NewReader(data))
}

// String returns a front-matter value as a string, or "" if it is absent or
// not a string.
func (d *ParsedDocument) String(key string) string {
	s, _ := d.FrontMatter[key].(string)
	return s
}
