// Package render builds and serialises output documents.
//
// Renderer turns a record into an ordered front-matter mapping plus a body,
// resolving category, tag and author IDs through term indexes. Encoder
// serialises documents with YAML (---) or TOML (+++) front-matter, and
// ParseDocument reads them back.
//
// YAML front-matter keeps the insertion order of the mapping. TOML tables
// are written in key order by go-toml.
package render
