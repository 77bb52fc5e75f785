package domain

// DocumentKind distinguishes rendered pages from plain data files.
type DocumentKind string

const (
	// KindPage is a Markdown document with a front-matter header.
	KindPage DocumentKind = "page"

	// KindData is a bare YAML data file (no body, no delimiters).
	KindData DocumentKind = "data"
)

// Field is a single front-matter entry.
type Field struct {
	Key   string
	Value any
}

// FrontMatter is an ordered mapping of keys to values.
// The zero value is ready to use.
type FrontMatter struct {
	fields []Field
}

// Set stores value under key. An existing key keeps its position.
func (f *FrontMatter) Set(key string, value any) {
	for i := range f.fields {
		if f.fields[i].Key == key {
			f.fields[i].Value = value
			return
		}
	}
	f.fields = append(f.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (f *FrontMatter) Get(key string) (any, bool) {
	for _, field := range f.fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (f *FrontMatter) Keys() []string {
	keys := make([]string, len(f.fields))
	for i, field := range f.fields {
		keys[i] = field.Key
	}
	return keys
}

// Fields returns a copy of the entries in insertion order.
func (f *FrontMatter) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Len returns the number of entries.
func (f *FrontMatter) Len() int {
	return len(f.fields)
}

// Map returns the entries as an unordered map.
func (f *FrontMatter) Map() map[string]any {
	m := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		m[field.Key] = field.Value
	}
	return m
}

// OutputDocument is the rendered form of one record, ready to be written.
type OutputDocument struct {
	// Path is slash-separated and relative to the output root.
	Path string

	FrontMatter FrontMatter

	// Body is empty for data files.
	Body string

	Kind DocumentKind
}
