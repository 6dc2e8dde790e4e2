package services

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/durangezer/portfolio-api/internal/content"
	"github.com/durangezer/portfolio-api/internal/models"
)

// SupportedLanguages are the translation files the admin panel can edit
var SupportedLanguages = map[string]bool{"tr": true, "en": true}

// ContentService runs load-mutate-save sequences against the content
// document and the per-language translation files. Sequences are not
// transactional: the later save wins wholesale.
type ContentService struct {
	store       *content.Store
	messagesDir string
	logger      *slog.Logger
}

// NewContentService creates a new ContentService
func NewContentService(store *content.Store, messagesDir string, logger *slog.Logger) *ContentService {
	return &ContentService{
		store:       store,
		messagesDir: messagesDir,
		logger:      logger,
	}
}

// ContentStore returns the store for the main content document
func (s *ContentService) ContentStore() *content.Store {
	return s.store
}

// TranslationStore returns the store for one language's translation file
func (s *ContentService) TranslationStore(lang string) (*content.Store, error) {
	if !SupportedLanguages[lang] {
		return nil, fmt.Errorf("%w: unsupported language %q", models.ErrBadRequest, lang)
	}
	return content.NewStore(filepath.Join(s.messagesDir, lang+".json")), nil
}

// Get loads the full document from the given store
func (s *ContentService) Get(store *content.Store) (content.Document, error) {
	return store.Load()
}

// UpdateField sets one key within a section
func (s *ContentService) UpdateField(store *content.Store, section, key string, value any) error {
	doc, err := store.Load()
	if err != nil {
		return err
	}
	return store.Save(content.SetField(doc, section, key, value))
}

// UpdateSection replaces a whole section
func (s *ContentService) UpdateSection(store *content.Store, section string, data map[string]any) error {
	doc, err := store.Load()
	if err != nil {
		return err
	}
	return store.Save(content.SetSection(doc, section, data))
}

// ReplaceDocument replaces the entire document
func (s *ContentService) ReplaceDocument(store *content.Store, data map[string]any) error {
	return store.Save(data)
}

// UpdateFieldByPath sets a nested field addressed by a dot-path
func (s *ContentService) UpdateFieldByPath(store *content.Store, path string, value any) error {
	doc, err := store.Load()
	if err != nil {
		return err
	}
	return store.Save(content.SetByDotPath(doc, path, value))
}

// UpsertArrayItem inserts or replaces an id-keyed item in an array section
func (s *ContentService) UpsertArrayItem(store *content.Store, section, arrayKey string, item map[string]any) error {
	doc, err := store.Load()
	if err != nil {
		return err
	}
	doc, err = content.UpsertArrayItem(doc, section, arrayKey, item)
	if err != nil {
		return err
	}
	return store.Save(doc)
}

// DeleteArrayItem removes every array item with the given id
func (s *ContentService) DeleteArrayItem(store *content.Store, section, arrayKey, itemID string) error {
	doc, err := store.Load()
	if err != nil {
		return err
	}
	return store.Save(content.DeleteArrayItem(doc, section, arrayKey, itemID))
}
