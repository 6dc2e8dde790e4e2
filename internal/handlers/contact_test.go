package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/durangezer/portfolio-api/internal/handlers"
	"github.com/durangezer/portfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockContactService implements ContactServiceInterface for testing
type MockContactService struct {
	submitted *models.Contact
	unread    []models.Contact
	err       error
}

func (m *MockContactService) Submit(ctx context.Context, contact *models.Contact) error {
	m.submitted = contact
	return m.err
}

func (m *MockContactService) ListUnread(ctx context.Context, limit int) ([]models.Contact, error) {
	return m.unread, m.err
}

func TestContactHandler_Submit(t *testing.T) {
	svc := &MockContactService{}
	h := handlers.NewContactHandler(svc)

	w := postJSON(t, h.Submit, "/contact", map[string]any{
		"name":    "Ayşe Yılmaz",
		"email":   "AYSE@Example.com",
		"message": "Merhaba, projeniz hakkında bir sorum var.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "ayse@example.com", svc.submitted.Email, "email is normalized to lower case")
	assert.NotEmpty(t, svc.submitted.IPAddress)
}

func TestContactHandler_SubmitRejectsShortMessage(t *testing.T) {
	svc := &MockContactService{}
	h := handlers.NewContactHandler(svc)

	w := postJSON(t, h.Submit, "/contact", map[string]any{
		"name":    "Ayşe",
		"email":   "ayse@example.com",
		"message": "kısa",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.submitted)
}

func TestContactHandler_SubmitRejectsBadEmail(t *testing.T) {
	svc := &MockContactService{}
	h := handlers.NewContactHandler(svc)

	w := postJSON(t, h.Submit, "/contact", map[string]any{
		"name":    "Ayşe",
		"email":   "not-an-email",
		"message": "Yeterince uzun bir mesaj metni.",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_ListMessagesEmpty(t *testing.T) {
	svc := &MockContactService{}
	h := handlers.NewContactHandler(svc)

	r := httptest.NewRequest("GET", "/contact/messages", nil)
	w := httptest.NewRecorder()
	h.ListMessages(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp handlers.ContactListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Messages)
	assert.Empty(t, resp.Messages)
}
