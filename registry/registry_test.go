package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/uritemplate"
)

func TestRegistryFirstMatchWins(t *testing.T) {
	reg := New()

	// Both templates match /users/42; insertion order decides.
	require.NoError(t, reg.Add("/users/{id}"))
	require.NoError(t, reg.Add("/users/{name}"))

	template, result := reg.MatchTemplate("/users/42")
	require.NotNil(t, result)
	assert.Equal(t, "/users/{id}", template)
	assert.Equal(t, map[string]any{"id": "42"}, result.Params)
}

func TestRegistryTriesTemplatesInOrder(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Add("/users/{id}/posts"))
	require.NoError(t, reg.Add("/users/{id}"))
	require.NoError(t, reg.Add("/search{?q}"))

	result := reg.Match("/users/7")
	require.NotNil(t, result)
	assert.Equal(t, map[string]any{"id": "7"}, result.Params)

	result = reg.Match("/search?q=go")
	require.NotNil(t, result)
	assert.Equal(t, map[string]any{"q": "go"}, result.Params)

	assert.Nil(t, reg.Match("/nothing/here"))
}

func TestRegistryAddPropagatesParserErrors(t *testing.T) {
	reg := New()

	err := reg.Add("/users/{unclosed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, uritemplate.ErrUnclosedExpression))
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryClearAndAll(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Add("/a/{x}"))
	require.NoError(t, reg.Add("/b/{y}"))
	assert.Equal(t, []string{"/a/{x}", "/b/{y}"}, reg.All())

	reg.Clear()
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.All())
	assert.Nil(t, reg.Match("/a/1"))
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")

	content := `templates:
  - "/users/{id}"
  - "/search{?q}"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	templates, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/users/{id}", "/search{?q}"}, templates)

	reg := New()
	require.NoError(t, reg.LoadFile(path))
	assert.Equal(t, 2, reg.Len())

	result := reg.Match("/users/9")
	require.NotNil(t, result)
	assert.Equal(t, map[string]any{"id": "9"}, result.Params)
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("templates: []\n"), 0644))

	_, err := LoadCatalog(empty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, uritemplate.ErrEmptyCatalog))

	malformed := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("templates:\n  - \"{broken\"\n"), 0644))

	reg := New()
	err = reg.LoadFile(malformed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, uritemplate.ErrUnclosedExpression))

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
