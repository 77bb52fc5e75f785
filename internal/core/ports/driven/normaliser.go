package driven

// BodyConverter turns rendered HTML into the body text written to disk.
// Implementations must be deterministic.
type BodyConverter interface {
	// Convert returns the body for the given HTML fragment.
	Convert(html string) (string, error)
}
