package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/durangezer/portfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "content.json"))
}

func TestStore_LoadMissingFileReturnsEmptyDocument(t *testing.T) {
	s := tempStore(t)

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	doc := Document{
		"hero": map[string]any{"title": "Merhaba", "subtitle": "AI Engineer"},
	}
	require.NoError(t, s.Save(doc))

	loaded, err := s.Load()
	require.NoError(t, err)
	hero, ok := loaded["hero"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Merhaba", hero["title"])
}

func TestStore_SaveIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	s := NewStore(path)

	require.NoError(t, s.Save(Document{"hero": map[string]any{"title": "X"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

func TestStore_LoadCorruptFileIsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.True(t, errors.Is(err, models.ErrStorageUnavailable), "got %v", err)
}

func TestSetField_CreatesSection(t *testing.T) {
	doc := Document{}
	doc = SetField(doc, "hero", "title", "X")

	hero := doc["hero"].(map[string]any)
	assert.Equal(t, "X", hero["title"])
}

func TestSetSection_Replaces(t *testing.T) {
	doc := Document{"hero": map[string]any{"title": "old", "extra": 1}}
	doc = SetSection(doc, "hero", map[string]any{"title": "new"})

	hero := doc["hero"].(map[string]any)
	assert.Equal(t, "new", hero["title"])
	assert.NotContains(t, hero, "extra")
}

func TestSetByDotPath_EmptyDocument(t *testing.T) {
	doc := Document{}
	doc = SetByDotPath(doc, "hero.title", "X")

	hero, ok := doc["hero"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "X", hero["title"])
}

func TestSetByDotPath_DeepPathPreservesSiblings(t *testing.T) {
	doc := Document{"a": map[string]any{"keep": true}}
	doc = SetByDotPath(doc, "a.b.c", 42)

	a := doc["a"].(map[string]any)
	assert.Equal(t, true, a["keep"])
	b := a["b"].(map[string]any)
	assert.Equal(t, 42, b["c"])
}

func TestUpsertArrayItem_AppendsNewItem(t *testing.T) {
	doc := Document{}
	doc, err := UpsertArrayItem(doc, "projects", "items", map[string]any{"id": "p1", "name": "one"})
	require.NoError(t, err)

	items := doc["projects"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)

	doc, err = UpsertArrayItem(doc, "projects", "items", map[string]any{"id": "p2", "name": "two"})
	require.NoError(t, err)

	items = doc["projects"].(map[string]any)["items"].([]any)
	assert.Len(t, items, 2)
}

func TestUpsertArrayItem_ReplacesInPlace(t *testing.T) {
	doc := Document{
		"projects": map[string]any{
			"items": []any{
				map[string]any{"id": "p1", "name": "one"},
				map[string]any{"id": "p2", "name": "two"},
				map[string]any{"id": "p3", "name": "three"},
			},
		},
	}

	doc, err := UpsertArrayItem(doc, "projects", "items", map[string]any{"id": "p2", "name": "replaced"})
	require.NoError(t, err)

	items := doc["projects"].(map[string]any)["items"].([]any)
	require.Len(t, items, 3, "replace must not grow the array")
	assert.Equal(t, "replaced", items[1].(map[string]any)["name"], "index must be unchanged")
}

func TestUpsertArrayItem_MissingID(t *testing.T) {
	_, err := UpsertArrayItem(Document{}, "projects", "items", map[string]any{"name": "no id"})
	assert.True(t, errors.Is(err, models.ErrBadRequest), "got %v", err)
}

func TestDeleteArrayItem_RemovesMatching(t *testing.T) {
	doc := Document{
		"projects": map[string]any{
			"items": []any{
				map[string]any{"id": "p1"},
				map[string]any{"id": "p2"},
				map[string]any{"id": "p1"},
			},
		},
	}

	doc = DeleteArrayItem(doc, "projects", "items", "p1")

	items := doc["projects"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1, "every matching id must be removed")
	assert.Equal(t, "p2", items[0].(map[string]any)["id"])
}

func TestDeleteArrayItem_AbsentIsNoOp(t *testing.T) {
	doc := Document{"projects": map[string]any{"items": []any{map[string]any{"id": "p1"}}}}

	doc = DeleteArrayItem(doc, "projects", "items", "nope")
	assert.Len(t, doc["projects"].(map[string]any)["items"].([]any), 1)

	// Missing section and array are also no-ops
	doc = DeleteArrayItem(doc, "missing", "items", "p1")
	doc = DeleteArrayItem(doc, "projects", "missing", "p1")
	_ = doc
}
