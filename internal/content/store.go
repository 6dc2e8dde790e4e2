// Package content persists the editable site content as a nested JSON
// document. Mutations operate on an in-memory tree; callers load, mutate,
// and save. Two concurrent load/mutate/save sequences race and the later
// save wins wholesale.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/durangezer/portfolio-api/internal/models"
)

// Document is the nested content tree
type Document = map[string]any

// Store reads and writes one JSON document file. Every read hits the file;
// there is no cache.
type Store struct {
	path string
}

// NewStore creates a store over the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted document. A file that does not exist yet reads
// as an empty document; any other failure is a storage error.
func (s *Store) Load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

// Save atomically replaces the persisted document. The document is written
// to a temporary file in the same directory and renamed over the target so
// a concurrent reader never observes a partial write.
func (s *Store) Save(doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	return nil
}

// SetField sets doc[section][key], creating the section if absent
func SetField(doc Document, section, key string, value any) Document {
	sec := sectionMap(doc, section)
	sec[key] = value
	return doc
}

// SetSection replaces doc[section] wholesale
func SetSection(doc Document, section string, value map[string]any) Document {
	doc[section] = value
	return doc
}

// SetByDotPath walks a period-separated path, creating intermediate
// mappings as needed, and sets the leaf. "hero.title" on an empty document
// yields {"hero": {"title": value}}.
func SetByDotPath(doc Document, path string, value any) Document {
	keys := strings.Split(path, ".")
	current := doc
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
	return doc
}

// UpsertArrayItem inserts item into doc[section][arrayKey], keyed by the
// item's "id" field. A matching id replaces the existing item in place;
// otherwise the item is appended. Duplicate ids already in the array are
// tolerated: the first match wins.
func UpsertArrayItem(doc Document, section, arrayKey string, item map[string]any) (Document, error) {
	id, ok := item["id"].(string)
	if !ok || id == "" {
		return doc, fmt.Errorf("%w: array item requires a string id", models.ErrBadRequest)
	}

	sec := sectionMap(doc, section)
	items, _ := sec[arrayKey].([]any)

	for i, existing := range items {
		m, ok := existing.(map[string]any)
		if !ok {
			continue
		}
		if m["id"] == id {
			items[i] = item
			sec[arrayKey] = items
			return doc, nil
		}
	}

	sec[arrayKey] = append(items, item)
	return doc, nil
}

// DeleteArrayItem removes every item in doc[section][arrayKey] whose id
// equals the given id. A missing section, array, or id is a no-op.
func DeleteArrayItem(doc Document, section, arrayKey, id string) Document {
	sec, ok := doc[section].(map[string]any)
	if !ok {
		return doc
	}
	items, ok := sec[arrayKey].([]any)
	if !ok {
		return doc
	}

	kept := make([]any, 0, len(items))
	for _, existing := range items {
		if m, ok := existing.(map[string]any); ok && m["id"] == id {
			continue
		}
		kept = append(kept, existing)
	}
	sec[arrayKey] = kept

	return doc
}

// sectionMap returns doc[section] as a mapping, creating or replacing it
// when absent or wrongly typed
func sectionMap(doc Document, section string) map[string]any {
	sec, ok := doc[section].(map[string]any)
	if !ok {
		sec = map[string]any{}
		doc[section] = sec
	}
	return sec
}
