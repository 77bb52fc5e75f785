package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
)

// Config keys for settings storage.
//
//nolint:gosec // G101: config key names, not credentials.
const (
	keyBaseURL      = "site.base_url"
	keyAPIPath      = "site.api_path"
	keyOutputDir    = "output.dir"
	keyLayout       = "output.layout"
	keyFormat       = "output.format"
	keyContentTypes = "content.types"
	keyContentKeys  = "content.keys"
	keyAuthorKeys   = "content.author_keys"
	keyFilterTags   = "content.filter_tags"
	keyAuthors      = "content.authors"
	keyBody         = "content.body"
	keyPerPage      = "http.per_page"
	keyTimeout      = "http.timeout"
	keyUserAgent    = "http.user_agent"
	keyRate         = "http.rate"
	keyUser         = "http.user"
	keyToken        = "http.token"
)

const maxPerPage = 100

// SettingsOverride adjusts loaded settings before validation, e.g. from
// command-line flags.
type SettingsOverride func(s *domain.Settings)

// LoadSettings reads settings from the config store, applies defaults for
// missing keys, then the overrides, and validates the result.
func LoadSettings(store driven.ConfigStore, overrides ...SettingsOverride) (domain.Settings, error) {
	s := domain.DefaultSettings()

	s.BaseURL = stringOr(store, keyBaseURL, s.BaseURL)
	s.APIPath = stringOr(store, keyAPIPath, s.APIPath)
	s.OutputDir = stringOr(store, keyOutputDir, s.OutputDir)
	s.Layout = domain.OutputLayout(stringOr(store, keyLayout, s.Layout.String()))
	s.Format = domain.FrontMatterFormat(stringOr(store, keyFormat, s.Format.String()))
	s.Body = domain.BodyMode(stringOr(store, keyBody, s.Body.String()))
	s.UserAgent = stringOr(store, keyUserAgent, s.UserAgent)
	s.User = store.GetString(keyUser)
	s.Token = store.GetString(keyToken)

	if types := store.GetStringSlice(keyContentTypes); len(types) > 0 {
		s.ContentTypes = make([]domain.ContentType, 0, len(types))
		for _, t := range types {
			s.ContentTypes = append(s.ContentTypes, domain.ContentType(t))
		}
	}
	if keys := store.GetStringSlice(keyContentKeys); len(keys) > 0 {
		s.ContentKeys = keys
	}
	if keys := store.GetStringSlice(keyAuthorKeys); len(keys) > 0 {
		s.AuthorKeys = keys
	}
	s.FilterTags = store.GetStringSlice(keyFilterTags)

	if _, ok := store.Get(keyAuthors); ok {
		s.WriteAuthors = store.GetBool(keyAuthors)
	}
	if _, ok := store.Get(keyPerPage); ok {
		s.PerPage = store.GetInt(keyPerPage)
	}
	if _, ok := store.Get(keyTimeout); ok {
		s.Timeout = store.GetDuration(keyTimeout)
	}
	if _, ok := store.Get(keyRate); ok {
		s.Rate = store.GetFloat(keyRate)
	}

	for _, override := range overrides {
		override(&s)
	}

	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	if err := ValidateSettings(s); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

// ValidateSettings checks that settings describe a runnable migration.
func ValidateSettings(s domain.Settings) error {
	invalid := func(key string, format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, key, fmt.Sprintf(format, args...))
	}

	if s.BaseURL == "" {
		return invalid(keyBaseURL, "required")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(keyBaseURL, "%q is not an absolute http(s) URL", s.BaseURL)
	}
	if strings.TrimSpace(s.OutputDir) == "" {
		return invalid(keyOutputDir, "required")
	}
	if !s.Layout.IsValid() {
		return invalid(keyLayout, "unknown layout %q", s.Layout)
	}
	if !s.Format.IsValid() {
		return invalid(keyFormat, "unknown format %q", s.Format)
	}
	if !s.Body.IsValid() {
		return invalid(keyBody, "unknown body mode %q", s.Body)
	}
	if len(s.ContentTypes) == 0 {
		return invalid(keyContentTypes, "at least one type is required")
	}
	for _, t := range s.ContentTypes {
		if !t.IsValid() {
			return invalid(keyContentTypes, "unknown content type %q", t)
		}
	}
	if s.PerPage < 1 || s.PerPage > maxPerPage {
		return invalid(keyPerPage, "must be between 1 and %d, got %d", maxPerPage, s.PerPage)
	}
	if s.Timeout <= 0 {
		return invalid(keyTimeout, "must be positive")
	}
	if s.Rate < 0 {
		return invalid(keyRate, "must not be negative")
	}
	if s.User != "" && s.Token == "" {
		return invalid(keyToken, "required when %s is set", keyUser)
	}
	return nil
}

// SaveSettings writes s to the config store and persists it. Credentials
// and empty lists are only written when set.
func SaveSettings(store driven.ConfigStore, s domain.Settings) error {
	types := make([]string, 0, len(s.ContentTypes))
	for _, t := range s.ContentTypes {
		types = append(types, t.String())
	}

	type entry struct {
		key   string
		value any
	}
	values := []entry{
		{keyBaseURL, s.BaseURL},
		{keyAPIPath, s.APIPath},
		{keyOutputDir, s.OutputDir},
		{keyLayout, s.Layout.String()},
		{keyFormat, s.Format.String()},
		{keyBody, s.Body.String()},
		{keyContentTypes, types},
		{keyContentKeys, s.ContentKeys},
		{keyAuthorKeys, s.AuthorKeys},
		{keyAuthors, s.WriteAuthors},
		{keyPerPage, s.PerPage},
		{keyTimeout, s.Timeout.String()},
		{keyUserAgent, s.UserAgent},
		{keyRate, s.Rate},
	}
	if len(s.FilterTags) > 0 {
		values = append(values, entry{keyFilterTags, s.FilterTags})
	}
	if s.User != "" {
		values = append(values, entry{keyUser, s.User})
	}
	if s.Token != "" {
		values = append(values, entry{keyToken, s.Token})
	}

	for _, v := range values {
		if err := store.Set(v.key, v.value); err != nil {
			return fmt.Errorf("set %s: %w", v.key, err)
		}
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("save %s: %w", store.Path(), err)
	}
	return nil
}

func stringOr(store driven.ConfigStore, key, fallback string) string {
	if v := strings.TrimSpace(store.GetString(key)); v != "" {
		return v
	}
	return fallback
}
