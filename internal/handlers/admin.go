package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/durangezer/portfolio-api/internal/content"
	"github.com/durangezer/portfolio-api/internal/models"
	pkghttp "github.com/durangezer/portfolio-api/pkg/http"
)

// AdminServiceInterface defines the interface for admin login logic
type AdminServiceInterface interface {
	Login(ctx context.Context, identity, password, totpCode string) (string, error)
}

// ContentServiceInterface defines the interface for document mutations
type ContentServiceInterface interface {
	ContentStore() *content.Store
	TranslationStore(lang string) (*content.Store, error)
	Get(store *content.Store) (content.Document, error)
	UpdateField(store *content.Store, section, key string, value any) error
	UpdateSection(store *content.Store, section string, data map[string]any) error
	ReplaceDocument(store *content.Store, data map[string]any) error
	UpdateFieldByPath(store *content.Store, path string, value any) error
	UpsertArrayItem(store *content.Store, section, arrayKey string, item map[string]any) error
	DeleteArrayItem(store *content.Store, section, arrayKey, itemID string) error
}

// AdminHandler handles admin authentication and content mutations
type AdminHandler struct {
	admin   AdminServiceInterface
	content ContentServiceInterface
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(admin AdminServiceInterface, contentService ContentServiceInterface) *AdminHandler {
	return &AdminHandler{
		admin:   admin,
		content: contentService,
	}
}

// Request DTOs

// AdminLoginRequest represents the request body for admin login
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
	TOTPCode string `json:"totp_code,omitempty"`
}

// AdminLoginResponse represents the response for admin login and logout
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// ContentUpdateRequest sets one key within a section
type ContentUpdateRequest struct {
	Section string `json:"section" validate:"required"`
	Key     string `json:"key" validate:"required"`
	Value   any    `json:"value" validate:"required"`
}

// ArrayItemRequest inserts or replaces an id-keyed array item
type ArrayItemRequest struct {
	Section  string         `json:"section" validate:"required"`
	ArrayKey string         `json:"array_key"`
	Item     map[string]any `json:"item" validate:"required"`
}

// ArrayItemDeleteRequest removes an array item by id
type ArrayItemDeleteRequest struct {
	Section  string `json:"section" validate:"required"`
	ArrayKey string `json:"array_key"`
	ItemID   string `json:"item_id" validate:"required"`
}

// ContentResponse wraps a full document
type ContentResponse struct {
	Content content.Document `json:"content"`
}

// ContentUpdateResponse reports the outcome of a mutation
type ContentUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login handles admin login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	identity := pkghttp.ExtractClientIP(r)

	token, err := h.admin.Login(r.Context(), identity, req.Password, req.TOTPCode)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRateLimited):
			pkghttp.WriteTooManyRequests(w, "Çok fazla başarısız deneme. 15 dakika sonra tekrar deneyin.")
		case errors.Is(err, models.ErrInvalidCredentials):
			pkghttp.WriteJSON(w, http.StatusOK, AdminLoginResponse{
				Success: false,
				Message: "Geçersiz şifre",
			})
		default:
			pkghttp.WriteInternalError(w, "Internal server error")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, AdminLoginResponse{
		Success: true,
		Message: "Giriş başarılı",
		Token:   token,
	})
}

// Logout acknowledges a logout; tokens are stateless, the client discards
// its copy
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	pkghttp.WriteJSON(w, http.StatusOK, AdminLoginResponse{
		Success: true,
		Message: "Çıkış yapıldı",
	})
}

// GetContent returns the full editable content document
func (h *AdminHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.content.Get(h.content.ContentStore())
	if err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentResponse{Content: doc})
}

// UpdateContent sets a single field within a section
func (h *AdminHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req ContentUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if err := h.content.UpdateField(h.content.ContentStore(), req.Section, req.Key, req.Value); err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentUpdateResponse{
		Success: true,
		Message: "'" + req.Section + "." + req.Key + "' güncellendi",
	})
}

// UpdateSection replaces an entire section
func (h *AdminHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
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

	if err := h.content.UpdateSection(h.content.ContentStore(), section, data); err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentUpdateResponse{
		Success: true,
		Message: "'" + section + "' bölümü güncellendi",
	})
}

// UpsertArrayItem adds or updates an id-keyed item in an array section
func (h *AdminHandler) UpsertArrayItem(w http.ResponseWriter, r *http.Request) {
	var req ArrayItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if req.ArrayKey == "" {
		req.ArrayKey = "items"
	}

	if err := h.content.UpsertArrayItem(h.content.ContentStore(), req.Section, req.ArrayKey, req.Item); err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentUpdateResponse{
		Success: true,
		Message: "'" + req.Section + "." + req.ArrayKey + "' öğesi eklendi/güncellendi",
	})
}

// DeleteArrayItem removes an array item by id
func (h *AdminHandler) DeleteArrayItem(w http.ResponseWriter, r *http.Request) {
	var req ArrayItemDeleteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	if req.ArrayKey == "" {
		req.ArrayKey = "items"
	}

	if err := h.content.DeleteArrayItem(h.content.ContentStore(), req.Section, req.ArrayKey, req.ItemID); err != nil {
		writeContentError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContentUpdateResponse{
		Success: true,
		Message: "'" + req.Section + "." + req.ArrayKey + "' öğesi silindi",
	})
}

// writeContentError maps document store failures to HTTP status codes
func writeContentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrBadRequest):
		pkghttp.WriteBadRequest(w, err.Error())
	case errors.Is(err, models.ErrStorageUnavailable):
		pkghttp.WriteServiceUnavailable(w, "Content storage unavailable")
	default:
		pkghttp.WriteInternalError(w, "Internal server error")
	}
}
