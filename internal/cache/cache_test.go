package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/lacph/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2020-04-04-lacph", DateKey(model.NewDate(2020, 4, 4)))
}

// exerciseCache runs the behavior every store shares
func exerciseCache(t *testing.T, c Cache) {
	t.Helper()

	_, ok := c.Get("missing")
	assert.False(t, ok, "empty cache reported a hit")

	require.NoError(t, c.Set("a", []byte("one")))
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("one"), got)

	require.NoError(t, c.Set("a", []byte("two")))
	got, ok = c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("two"), got, "Set must overwrite")

	require.NoError(t, c.Set("b", []byte("three")))
	require.NoError(t, c.Delete("a"))
	_, ok = c.Get("a")
	assert.False(t, ok)
	require.NoError(t, c.Delete("a"), "deleting an absent key is not an error")

	require.NoError(t, c.Clear())
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	exerciseCache(t, c)

	require.NoError(t, c.Set("x", []byte("y")))
	assert.Equal(t, 1, c.Len())
}

func TestDiskCache(t *testing.T) {
	exerciseCache(t, NewDiskCache(filepath.Join(t.TempDir(), "nested"), "html"))
}

func TestDiskCache_FileLayout(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, "yaml")

	require.NoError(t, c.Set("2020-04-04-lacph", []byte("date: 2020-04-04\n")))

	data, err := os.ReadFile(filepath.Join(dir, "2020-04-04-lacph.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "date: 2020-04-04\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestDiskCache_ClearKeepsOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	html := NewDiskCache(dir, "html")
	yml := NewDiskCache(dir, "yaml")

	require.NoError(t, html.Set("k", []byte("<html></html>")))
	require.NoError(t, yml.Set("k", []byte("a: 1")))
	require.NoError(t, html.Clear())

	_, ok := html.Get("k")
	assert.False(t, ok)
	_, ok = yml.Get("k")
	assert.True(t, ok)
}

func TestLayeredCache(t *testing.T) {
	exerciseCache(t, NewLayeredCache(NewMemoryCache()))
}

func TestLayeredCache_PromotesStoreHits(t *testing.T) {
	store := NewDiskCache(t.TempDir(), "html")
	require.NoError(t, store.Set("k", []byte("v")))

	c := NewLayeredCache(store)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, store.Delete("k"))
	got, ok = c.Get("k")
	require.True(t, ok, "promoted entry should be served from memory")
	assert.Equal(t, []byte("v"), got)
}

func TestSQLiteCache(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "lacph.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseCache(t, store.Namespace("documents"))
}

func TestSQLiteCache_NamespacesAreIsolated(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "lacph.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	docs := store.Namespace("documents")
	recs := store.Namespace("records")

	require.NoError(t, docs.Set("k", []byte("html")))
	require.NoError(t, recs.Set("k", []byte("yaml")))

	got, ok := docs.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("html"), got)

	require.NoError(t, recs.Clear())
	_, ok = docs.Get("k")
	assert.True(t, ok, "clearing one namespace must not touch another")
}

func TestSQLiteCache_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lacph.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Namespace("records").Set("k", []byte("v")))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	got, ok := store.Namespace("records").Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}
