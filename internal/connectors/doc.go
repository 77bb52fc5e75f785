// Package connectors holds the content sources wpmigrate reads from.
// Each connector implements driven.ContentSource for one remote API.
package connectors
