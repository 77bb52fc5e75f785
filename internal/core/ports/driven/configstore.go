package driven

import "time"

// ConfigStore provides access to application configuration.
// Keys use dot notation for nested tables ("http.per_page").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt returns 0 if the key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetFloat returns 0 if the key doesn't exist or isn't a number.
	GetFloat(key string) float64

	// GetDuration accepts duration strings ("30s") and whole seconds.
	// Returns 0 if the key doesn't exist or can't be parsed.
	GetDuration(key string) time.Duration

	// GetBool returns false if the key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice returns nil if the key doesn't exist. A single
	// string is returned as a one-element slice.
	GetStringSlice(key string) []string

	// Set stores a configuration value. It is not persisted until Save.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
