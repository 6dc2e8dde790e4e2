package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/durangezer/portfolio-api/internal/models"
	pkghttp "github.com/durangezer/portfolio-api/pkg/http"
)

// ContactServiceInterface defines the interface for contact submissions
type ContactServiceInterface interface {
	Submit(ctx context.Context, contact *models.Contact) error
	ListUnread(ctx context.Context, limit int) ([]models.Contact, error)
}

const maxListedMessages = 100

// ContactHandler handles contact form submissions
type ContactHandler struct {
	service ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// ContactRequest represents the request body for a contact submission
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,min=10,max=5000"`
}

// ContactSubmitResponse reports the outcome of a submission
type ContactSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles a contact form submission
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	contact := &models.Contact{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: pkghttp.ExtractClientIP(r),
	}

	if err := h.service.Submit(r.Context(), contact); err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContactSubmitResponse{
		Success: true,
		Message: "Mesajınız başarıyla gönderildi. En kısa sürede size döneceğim.",
	})
}

// ContactListResponse wraps unread submissions for the admin panel
type ContactListResponse struct {
	Messages []models.Contact `json:"messages"`
}

// ListMessages returns unread contact submissions (admin only)
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.ListUnread(r.Context(), maxListedMessages)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContactListResponse{Messages: contacts})
}
