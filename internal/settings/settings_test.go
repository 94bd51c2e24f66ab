package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	got := Default()

	assert.Empty(t, got.APIKey)
	assert.Equal(t, OpenLinksHybrid, got.OpenLinksInSteam)
	assert.Equal(t, 1, got.SteamCurrency)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStoreAt(t.TempDir())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStoreAt(t.TempDir())

	want := Settings{
		APIKey:           "ABCDEF0123456789",
		OpenLinksInSteam: OpenLinksSteam,
		SteamCurrency:    5,
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	store := NewStoreAt(dir)

	require.NoError(t, store.Save(Default()))

	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestStore_SaveFileFormat(t *testing.T) {
	store := NewStoreAt(t.TempDir())

	require.NoError(t, store.Save(Settings{
		APIKey:           "key",
		OpenLinksInSteam: OpenLinksPlain,
		SteamCurrency:    3,
	}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "key", raw["api_key"])
	assert.Equal(t, float64(0), raw["open_links_in_steam"])
	assert.Equal(t, float64(3), raw["steam_currency"])

	// Indented output, the file is meant to be hand-editable.
	assert.Contains(t, string(data), "\n    \"api_key\"")
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(dir)

	require.NoError(t, store.Save(Default()))
	require.NoError(t, store.Save(Settings{APIKey: "second"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.HasPrefix(entries[0].Name(), ".tmp-"))
}

func TestStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(dir)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	got, err := store.Load()
	require.Error(t, err)
	assert.Equal(t, Default(), got)
}

func TestStore_Path(t *testing.T) {
	store := NewStoreAt("/tmp/example")

	assert.Equal(t, filepath.Join("/tmp/example", "settings.json"), store.Path())
}
