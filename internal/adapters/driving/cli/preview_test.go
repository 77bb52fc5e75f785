package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCmd_RendersBody(t *testing.T) {
	setupRootTest(t, siteConfig, &mockMigrator{})
	root := writeTree(t, map[string]string{
		"post.md": "---\ntitle: Post\n---\n\n# Heading\n\nSome **bold** text.\n",
	})

	out, err := execute("preview", filepath.Join(root, "post.md"))
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="heading">Heading</h1>`)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "title: Post")
}

func TestPreviewCmd_RequiresFile(t *testing.T) {
	setupRootTest(t, siteConfig, &mockMigrator{})

	_, err := execute("preview")
	assert.Error(t, err)

	_, err = execute("preview", filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}
