package wordpress

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPerPage is the page size used when none is configured.
	DefaultPerPage = 100

	// MaxPerPage is the largest page size WordPress accepts.
	MaxPerPage = 100

	// DefaultAPIPath is the REST namespace for core content.
	DefaultAPIPath = "/wp-json/wp/v2"

	// DefaultUserAgent identifies the client to the site.
	DefaultUserAgent = "wpmigrate"
)

// Config holds the connection settings for a WordPress site.
type Config struct {
	// Endpoint is the absolute URL of the REST namespace, without a
	// trailing slash (e.g. https://example.org/wp-json/wp/v2).
	Endpoint string

	// PerPage is the requested page size.
	PerPage int

	Timeout   time.Duration
	UserAgent string

	// Rate caps requests per second. Zero disables throttling.
	Rate float64

	// User enables HTTP Basic auth with Token as the application password.
	User string

	// Token is sent as a bearer token when set and User is empty.
	Token string
}

// ParseConfig builds a Config from run settings, applying defaults for
// unset fields.
func ParseConfig(s domain.Settings) (*Config, error) {
	apiPath := s.APIPath
	if apiPath == "" {
		apiPath = DefaultAPIPath
	}

	endpoint, err := parseEndpoint(s.BaseURL, apiPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Endpoint:  endpoint,
		PerPage:   s.PerPage,
		Timeout:   s.Timeout,
		UserAgent: s.UserAgent,
		Rate:      s.Rate,
		User:      s.User,
		Token:     s.Token,
	}

	if cfg.PerPage == 0 {
		cfg.PerPage = DefaultPerPage
	}
	if cfg.PerPage < 1 || cfg.PerPage > MaxPerPage {
		return nil, ErrConfigInvalidPerPage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.User != "" && cfg.Token == "" {
		return nil, ErrConfigMissingPassword
	}

	return cfg, nil
}

// parseEndpoint joins base and path into an absolute URL without a trailing slash.
func parseEndpoint(base, path string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", fmt.Errorf("%w: site base URL is empty", ErrConfigInvalidEndpoint)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrConfigInvalidEndpoint, base)
	}

	return strings.TrimRight(base, "/") + "/" + strings.Trim(path, "/"), nil
}
