//go:build !integration

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endoflife-date/eolint/pkg/schema"
)

func TestParseProduct(t *testing.T) {
	content := `---
title: Python
category: lang
releases:
  - releaseCycle: "3.12"
    releaseDate: 2023-10-02
---

Python follows an [annual release cadence](https://peps.python.org/pep-0602/).
`
	product, err := ParseProduct("python", content)
	require.NoError(t, err)

	assert.Equal(t, "python", product.Name)
	assert.Equal(t, "Python", product.Field("title").Str())
	assert.Equal(t, schema.KindList, product.Field("releases").Kind())
	assert.Contains(t, product.Body, "annual release cadence")
	assert.NotContains(t, product.Body, "title:", "frontmatter must not leak into the body")
}

func TestParseProduct_EmptyBody(t *testing.T) {
	content := "---\ntitle: X\n---\n"
	product, err := ParseProduct("x", content)
	require.NoError(t, err)
	assert.Equal(t, "X", product.Field("title").Str())
	assert.Empty(t, product.Body)
}

func TestParseProduct_CRLF(t *testing.T) {
	content := "---\r\ntitle: X\r\n---\r\nbody\r\n"
	product, err := ParseProduct("x", content)
	require.NoError(t, err)
	assert.Equal(t, "X", product.Field("title").Str())
	assert.Equal(t, "body\n", product.Body)
}

func TestParseProduct_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing opening delimiter",
			content: "title: X\n---\n",
			wantErr: "missing frontmatter delimiter",
		},
		{
			name:    "unterminated frontmatter",
			content: "---\ntitle: X\n",
			wantErr: "unterminated frontmatter",
		},
		{
			name:    "invalid yaml",
			content: "---\ntitle: [unclosed\n---\n",
			wantErr: "invalid frontmatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProduct("x", tt.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "product x", "error should name the product")
		})
	}
}

func TestLoadProductFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "python.md")
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: Python\n---\n"), 0o644))

	product, err := LoadProductFile(path)
	require.NoError(t, err)
	assert.Equal(t, "python", product.Name, "name should come from the file name without extension")
}

func TestLoadProductFile_Missing(t *testing.T) {
	_, err := LoadProductFile(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read product file")
}

func TestFindProductFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.md"), []byte("x"), 0o644))

	files, err := FindProductFiles(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
	}, files, "only top-level markdown files are products")
}

func TestFindProductFiles_MissingDir(t *testing.T) {
	_, err := FindProductFiles(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
