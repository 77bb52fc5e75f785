// Package domain defines the core business entities for wpmigrate.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContentRecord: a post or page fetched from WordPress
//   - Term and Author: index entries used to resolve record references
//   - OutputDocument: the rendered form of a record (front-matter + body)
//   - Settings and RunStatus: run configuration and progress
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
