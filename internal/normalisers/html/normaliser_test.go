package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

func TestNew_InvalidMode(t *testing.T) {
	_, err := New(domain.BodyMode("rst"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConverter_Markdown(t *testing.T) {
	conv, err := New(domain.BodyMarkdown, "https://example.org")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "Hello", want: "Hello"},
		{name: "paragraph", input: "<p>Hello</p>\n", want: "Hello"},
		{name: "heading", input: "<h2>Section</h2><p>Text</p>", want: "## Section\n\nText"},
		{name: "emphasis", input: "<p><strong>bold</strong> and <em>it</em></p>", want: "**bold** and _it_"},
		{name: "list", input: "<ul><li>one</li><li>two</li></ul>", want: "- one\n- two"},
		{name: "script removed", input: "<p>Hi</p><script>alert(1)</script>", want: "Hi"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_RewritesSiteLinks(t *testing.T) {
	conv, err := New(domain.BodyMarkdown, "https://example.org")
	require.NoError(t, err)

	got, err := conv.Convert(`<p><a href="https://www.example.org/about/?ref=1#team">About</a> ` +
		`<a href="https://other.example/x">Other</a></p>` +
		`<p><img src="http://example.org/wp-content/uploads/a.png" alt="A"></p>`)
	require.NoError(t, err)

	assert.Contains(t, got, "[About](/about/?ref=1#team)")
	assert.Contains(t, got, "[Other](https://other.example/x)")
	assert.Contains(t, got, "![A](/wp-content/uploads/a.png)")
}

func TestConverter_NoSiteLeavesLinks(t *testing.T) {
	conv, err := New(domain.BodyMarkdown, "")
	require.NoError(t, err)

	got, err := conv.Convert(`<a href="https://example.org/about/">About</a>`)
	require.NoError(t, err)

	assert.Equal(t, "[About](https://example.org/about/)", got)
}

func TestConverter_HTMLPassthrough(t *testing.T) {
	conv, err := New(domain.BodyHTML, "https://example.org")
	require.NoError(t, err)

	got, err := conv.Convert("\n<p>Hello <a href=\"https://example.org/x\">x</a></p>\n")
	require.NoError(t, err)

	assert.Equal(t, "<p>Hello <a href=\"https://example.org/x\">x</a></p>", got)
}

func TestConverter_Deterministic(t *testing.T) {
	conv, err := New(domain.BodyMarkdown, "https://example.org")
	require.NoError(t, err)

	input := `<h3>T</h3><ol><li>a</li><li>b</li></ol><p><a href="https://example.org/p/">p</a></p>`
	first, err := conv.Convert(input)
	require.NoError(t, err)
	second, err := conv.Convert(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCanonicalHost(t *testing.T) {
	assert.Equal(t, "example.org", canonicalHost("WWW.Example.org"))
	assert.Equal(t, "example.org:8080", canonicalHost("example.org:8080"))
}
