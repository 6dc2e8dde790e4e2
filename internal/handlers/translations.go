package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/durangezer/portfolio-api/internal/content"
	"github.com/durangezer/portfolio-api/internal/models"
	pkghttp "github.com/durangezer/portfolio-api/pkg/http"
)

// TranslationsHandler edits the per-language translation files through the
// same document store as the content panel
type TranslationsHandler struct {
	content ContentServiceInterface
}

// NewTranslationsHandler creates a new TranslationsHandler
func NewTranslationsHandler(contentService ContentServiceInterface) *TranslationsHandler {
	return &TranslationsHandler{content: contentService}
}

// TranslationFieldRequest sets a nested field by dot-path
type TranslationFieldRequest struct {
	Path  string `json:"path" validate:"required"`
	Value any    `json:"value" validate:"required"`
}

func (h *TranslationsHandler) store(w http.ResponseWriter, r *http.Request) (*content.Store, bool) {
	lang := pathParam(r, "lang")

	store, err := h.content.TranslationStore(lang)
	if err != nil {
		if errors.Is(err, models.ErrBadRequest) {
			pkghttp.WriteBadRequest(w, "Invalid language. Use 'tr' or 'en'.")
		} else {
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return nil, false
	}

	return store, true
}

// GetTranslations returns the full translation document for a language
func (h *TranslationsHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	doc, err := h.content.Get(store)
	if err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentResponse{Content: doc})
}

// UpdateTranslations replaces a language's entire translation document
func (h *TranslationsHandler) UpdateTranslations(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.content.ReplaceDocument(store, data); err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentUpdateResponse{
		Success: true,
		Message: "'" + pathParam(r, "lang") + ".json' güncellendi",
	})
}

// UpdateTranslationSection replaces one section of a translation document
func (h *TranslationsHandler) UpdateTranslationSection(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	section := pathParam(r, "section")
	if section == "" {
		pkghttp.WriteBadRequest(w, "Section is required")
		return
	}

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.content.UpdateSection(store, section, data); err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentUpdateResponse{
		Success: true,
		Message: "'" + pathParam(r, "lang") + ".json' - '" + section + "' bölümü güncellendi",
	})
}

// UpdateTranslationField sets a nested translation value by dot-path
func (h *TranslationsHandler) UpdateTranslationField(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req TranslationFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.content.UpdateFieldByPath(store, req.Path, req.Value); err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentUpdateResponse{
		Success: true,
		Message: "'" + pathParam(r, "lang") + ".json' - '" + req.Path + "' güncellendi",
	})
}
