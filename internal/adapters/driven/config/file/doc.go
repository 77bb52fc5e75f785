// Package file provides the TOML-backed configuration store.
//
// Tables in the file are flattened into dot-notation keys on load, so
//
//	[http]
//	per_page = 50
//
// is read back as "http.per_page". Saving nests the keys again.
package file
