// Package markdown renders emitted Markdown bodies to HTML for previewing.
package markdown

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Previewer renders GitHub-flavoured Markdown to HTML.
type Previewer struct {
	md goldmark.Markdown
}

// New creates a previewer. Raw HTML in the source is kept, since bodies
// exported in html mode are HTML.
func New() *Previewer {
	return &Previewer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render writes the HTML for src to w.
func (p *Previewer) Render(w io.Writer, src []byte) error {
	if err := p.md.Convert(src, w); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	return nil
}
