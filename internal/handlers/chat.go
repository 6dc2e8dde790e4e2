package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/durangezer/portfolio-api/internal/models"
	"github.com/durangezer/portfolio-api/internal/services"
	pkghttp "github.com/durangezer/portfolio-api/pkg/http"
)

// ChatServiceInterface defines the interface for the AI assistant proxy
type ChatServiceInterface interface {
	Respond(ctx context.Context, message, sessionID string) (*services.ChatResult, error)
}

// ChatHandler handles visitor chat with the AI assistant
type ChatHandler struct {
	service ChatServiceInterface
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service ChatServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// ChatRequest represents the request body for a chat message
type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,max=100"`
}

// ChatSuggestionsResponse wraps the suggested questions
type ChatSuggestionsResponse struct {
	Suggestions []models.ChatSuggestion `json:"suggestions"`
}

// Chat handles one chat exchange
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Respond(r.Context(), req.Message, req.SessionID)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, result)
}

// GetSuggestions returns the canned questions for the chat UI
func (h *ChatHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	pkghttp.WriteJSON(w, http.StatusOK, ChatSuggestionsResponse{
		Suggestions: services.ChatSuggestions,
	})
}
