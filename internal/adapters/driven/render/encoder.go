package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
)

// Ensure Encoder implements the interface.
var _ driven.DocumentEncoder = (*Encoder)(nil)

// Encoder serialises documents with a front-matter header.
type Encoder struct {
	format domain.FrontMatterFormat
}

// NewEncoder creates an encoder. An empty format means YAML.
func NewEncoder(format domain.FrontMatterFormat) *Encoder {
	if format == "" {
		format = domain.FormatYAML
	}
	return &Encoder{format: format}
}

// Encode returns the file content for doc. Pages are written as
//
//	<delim>
//	<front-matter>
//	<delim>
//
//	<body>
//
// Data files are plain YAML.
func (e *Encoder) Encode(doc *domain.OutputDocument) ([]byte, error) {
	if doc.Kind == domain.KindData {
		return encodeYAML(&doc.FrontMatter)
	}

	var header []byte
	var err error
	switch e.format {
	case domain.FormatYAML:
		header, err = encodeYAML(&doc.FrontMatter)
	case domain.FormatTOML:
		header, err = encodeTOML(&doc.FrontMatter)
	default:
		err = fmt.Errorf("%w: front-matter format %q", domain.ErrInvalidInput, e.format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode front-matter: %w", err)
	}

	delim := e.format.Delimiter()
	var buf bytes.Buffer
	buf.WriteString(delim + "\n")
	buf.Write(header)
	buf.WriteString(delim + "\n")
	if doc.Body != "" {
		buf.WriteString("\n")
		buf.WriteString(doc.Body)
		if !strings.HasSuffix(doc.Body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// encodeYAML writes the mapping in insertion order.
func encodeYAML(fm *domain.FrontMatter) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range fm.Fields() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key}
		value := &yaml.Node{}
		if err := value.Encode(field.Value); err != nil {
			return nil, fmt.Errorf("key %q: %w", field.Key, err)
		}
		root.Content = append(root.Content, key, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeTOML writes the mapping as a TOML document in insertion order.
// Tables must follow every bare key in TOML, so table-valued fields are
// emitted last, still in insertion order. TOML has no null, so nil values
// are dropped.
func encodeTOML(fm *domain.FrontMatter) ([]byte, error) {
	var keys, tables bytes.Buffer
	for _, field := range fm.Fields() {
		if field.Value == nil {
			continue
		}
		data, err := toml.Marshal(map[string]any{field.Key: dropNil(field.Value)})
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", field.Key, err)
		}
		if isTable(field.Value) {
			tables.Write(data)
		} else {
			keys.Write(data)
		}
	}
	keys.Write(tables.Bytes())
	return keys.Bytes(), nil
}

// isTable reports whether v encodes as a table or an array of tables.
func isTable(v any) bool {
	switch val := v.(type) {
	case map[string]any:
		return true
	case []any:
		for _, item := range val {
			if _, ok := item.(map[string]any); ok {
				return true
			}
		}
	}
	return false
}

func dropNil(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			out[k] = dropNil(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, dropNil(item))
		}
		return out
	default:
		return v
	}
}
