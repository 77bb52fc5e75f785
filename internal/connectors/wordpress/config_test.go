package wordpress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(domain.Settings{BaseURL: "https://example.org/"})

	require.NoError(t, err)
	assert.Equal(t, "https://example.org/wp-json/wp/v2", cfg.Endpoint)
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Zero(t, cfg.Rate)
}

func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := ParseConfig(domain.Settings{
		BaseURL:   "http://localhost:8080",
		APIPath:   "/api/wp/v2/",
		PerPage:   10,
		Timeout:   5 * time.Second,
		UserAgent: "bot",
		Rate:      2,
		Token:     "t",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/wp/v2", cfg.Endpoint)
	assert.Equal(t, 10, cfg.PerPage)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "bot", cfg.UserAgent)
	assert.Equal(t, 2.0, cfg.Rate)
	assert.Equal(t, "t", cfg.Token)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.Settings
		wantErr  error
	}{
		{name: "empty base", settings: domain.Settings{}, wantErr: ErrConfigInvalidEndpoint},
		{name: "relative base", settings: domain.Settings{BaseURL: "example.org"}, wantErr: ErrConfigInvalidEndpoint},
		{name: "ftp scheme", settings: domain.Settings{BaseURL: "ftp://example.org"}, wantErr: ErrConfigInvalidEndpoint},
		{name: "per page too large", settings: domain.Settings{BaseURL: "https://example.org", PerPage: 101}, wantErr: ErrConfigInvalidPerPage},
		{name: "negative per page", settings: domain.Settings{BaseURL: "https://example.org", PerPage: -1}, wantErr: ErrConfigInvalidPerPage},
		{name: "user without password", settings: domain.Settings{BaseURL: "https://example.org", User: "editor"}, wantErr: ErrConfigMissingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.settings)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0)

	assert.Nil(t, rl)
	assert.NoError(t, rl.Wait(t.Context()))
	assert.NotNil(t, NewRateLimiter(3))
}
