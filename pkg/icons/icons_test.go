package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default("")

	icon, ok := table.Lookup("github")
	require.True(t, ok)
	assert.Contains(t, icon, `src="/icons/github.png"`)

	_, ok = table.Lookup("no-such-server")
	assert.False(t, ok)
}

func TestAliasesFollowCanonicalIcon(t *testing.T) {
	table := Default("https://cdn.example.com/")

	search, ok := table.Lookup("googlesearch")
	require.True(t, ok)
	canonical, _ := table.Lookup("web_search")
	assert.Equal(t, canonical, search)
	assert.Contains(t, search, "https://cdn.example.com/google_search.png")

	pw, ok := table.Lookup("playwright")
	require.True(t, ok)
	canonical, _ = table.Lookup("playwright_with_chunk")
	assert.Equal(t, canonical, pw)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icons.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"web_search": "<svg>s</svg>", "custom": "C"}`), 0644))

	table, err := Load(path, "")
	require.NoError(t, err)

	custom, ok := table.Lookup("custom")
	require.True(t, ok)
	assert.Equal(t, "C", custom)

	alias, _ := table.Lookup("googlesearch")
	assert.Equal(t, "<svg>s</svg>", alias)
	assert.Contains(t, table.Names(), "custom")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2]`), 0644))
	_, err = Load(path, "")
	assert.Error(t, err)
}

func TestDefaultImagesIsACopy(t *testing.T) {
	images := DefaultImages()
	images["github"] = "changed.png"
	assert.Equal(t, "github.png", DefaultImages()["github"])
}
