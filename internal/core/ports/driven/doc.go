// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentSource: Reads posts, pages, terms and users from WordPress
//   - PathMapper: Maps records to output paths and permalinks
//   - Renderer: Builds front-matter documents from records
//   - DocumentEncoder: Serialises documents (YAML or TOML front-matter)
//   - DocumentWriter: Writes documents under the output root
//   - TermIndex: Resolves category, tag and author IDs
//   - PathRegistry: Detects output path collisions within a run
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - BodyConverter: HTML to Markdown conversion. The renderer passes HTML
//     through when none is configured.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
