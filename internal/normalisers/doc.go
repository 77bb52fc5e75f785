// Package normalisers holds body format converters: HTML to Markdown for
// export, and Markdown to HTML for previews.
package normalisers
