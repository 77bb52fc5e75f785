// Package paths maps WordPress URLs to output file paths.
//
// The default permalink layout mirrors the site structure: every URL path
// becomes <segments>/index.md, and the site root becomes index.md, so that
// a static-site generator serves each page at its original address. The
// jekyll layout stores posts as _posts/YYYY-MM-DD-<title>.md instead.
package paths
