// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Migrator runs the export pipeline; LoadSettings resolves configuration.
package services
