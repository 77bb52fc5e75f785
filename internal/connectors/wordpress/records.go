package wordpress

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

// renderedKeys are the attributes WordPress wraps as {"rendered": "..."}.
var renderedKeys = map[string]bool{
	"title":   true,
	"content": true,
	"excerpt": true,
	"guid":    true,
}

// normalise converts json.Number values to int64 (or float64 when not
// integral) throughout a decoded JSON value.
func normalise(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		return normaliseMap(val)
	case []any:
		for i := range val {
			val[i] = normalise(val[i])
		}
		return val
	default:
		return v
	}
}

func normaliseMap(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalise(v)
	}
	return m
}

// Rendered returns the rendered form of an attribute that is either a plain
// string or a {"rendered": "..."} object. Returns "" for anything else.
func Rendered(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["rendered"].(string); ok {
			return s
		}
	}
	return ""
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i
	default:
		return 0
	}
}

func toIDs(v any) []int64 {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	ids := make([]int64, 0, len(list))
	for _, item := range list {
		if id := toInt64(item); id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// decodeRecord maps a post or page object to a ContentRecord.
func decodeRecord(raw map[string]any, fallback domain.ContentType) domain.ContentRecord {
	rec := domain.ContentRecord{
		ID:          toInt64(raw["id"]),
		Type:        domain.ContentType(toString(raw["type"])),
		Slug:        toString(raw["slug"]),
		Link:        toString(raw["link"]),
		Title:       Rendered(raw["title"]),
		Body:        Rendered(raw["content"]),
		Date:        toString(raw["date"]),
		AuthorID:    toInt64(raw["author"]),
		CategoryIDs: toIDs(raw["categories"]),
		TagIDs:      toIDs(raw["tags"]),
		Fields:      raw,
	}
	if rec.Type == "" {
		rec.Type = fallback
	}
	return rec
}

// decodeTerm maps a category or tag object to a Term.
func decodeTerm(raw map[string]any, taxonomy domain.Taxonomy) domain.Term {
	term := domain.Term{
		ID:       toInt64(raw["id"]),
		Name:     toString(raw["name"]),
		Slug:     toString(raw["slug"]),
		Parent:   toInt64(raw["parent"]),
		Taxonomy: domain.Taxonomy(toString(raw["taxonomy"])),
	}
	if term.Taxonomy == "" {
		term.Taxonomy = taxonomy
	}
	return term
}

// decodeAuthor maps a user object to an Author.
func decodeAuthor(raw map[string]any) domain.Author {
	return domain.Author{
		ID:     toInt64(raw["id"]),
		Name:   toString(raw["name"]),
		Slug:   toString(raw["slug"]),
		Fields: raw,
	}
}
