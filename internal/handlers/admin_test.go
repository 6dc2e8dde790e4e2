package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/durangezer/portfolio-api/internal/content"
	"github.com/durangezer/portfolio-api/internal/handlers"
	"github.com/durangezer/portfolio-api/internal/models"
	"github.com/durangezer/portfolio-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockAdminService implements AdminServiceInterface for testing
type MockAdminService struct {
	token string
	err   error

	gotIdentity string
	gotPassword string
}

func (m *MockAdminService) Login(ctx context.Context, identity, password, totpCode string) (string, error) {
	m.gotIdentity = identity
	m.gotPassword = password
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func newAdminHandler(t *testing.T, admin *MockAdminService) *handlers.AdminHandler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	dir := t.TempDir()
	contentService := services.NewContentService(
		content.NewStore(filepath.Join(dir, "content.json")),
		filepath.Join(dir, "messages"),
		logger,
	)
	return handlers.NewAdminHandler(admin, contentService)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func TestAdminHandler_LoginSuccess(t *testing.T) {
	admin := &MockAdminService{token: "signed-token"}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.Login, "/admin/login", map[string]string{"password": "hunter2!"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp handlers.AdminLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "hunter2!", admin.gotPassword)
	assert.NotEmpty(t, admin.gotIdentity)
}

func TestAdminHandler_LoginWrongPassword(t *testing.T) {
	admin := &MockAdminService{err: models.ErrInvalidCredentials}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.Login, "/admin/login", map[string]string{"password": "wrong"})

	require.Equal(t, http.StatusOK, w.Code, "wrong password is a success=false response, not an HTTP error")
	var resp handlers.AdminLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Token)
}

func TestAdminHandler_LoginRateLimited(t *testing.T) {
	admin := &MockAdminService{err: models.ErrRateLimited}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.Login, "/admin/login", map[string]string{"password": "anything"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAdminHandler_LoginMissingPassword(t *testing.T) {
	admin := &MockAdminService{token: "never"}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.Login, "/admin/login", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_UpdateContentRoundTrip(t *testing.T) {
	admin := &MockAdminService{token: "t"}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.UpdateContent, "/admin/content", map[string]any{
		"section": "hero",
		"key":     "title",
		"value":   "Merhaba",
	})
	require.Equal(t, http.StatusOK, w.Code)

	r := httptest.NewRequest("GET", "/admin/content", nil)
	rec := httptest.NewRecorder()
	h.GetContent(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	hero, ok := resp.Content["hero"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Merhaba", hero["title"])
}

func TestAdminHandler_UpsertArrayItemDefaultsArrayKey(t *testing.T) {
	admin := &MockAdminService{token: "t"}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.UpsertArrayItem, "/admin/content/array-item", map[string]any{
		"section": "projects",
		"item":    map[string]any{"id": "p1", "name": "one"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	r := httptest.NewRequest("GET", "/admin/content", nil)
	rec := httptest.NewRecorder()
	h.GetContent(rec, r)

	var resp handlers.ContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	projects := resp.Content["projects"].(map[string]any)
	items := projects["items"].([]any)
	assert.Len(t, items, 1)
}

func TestAdminHandler_UpsertArrayItemWithoutID(t *testing.T) {
	admin := &MockAdminService{token: "t"}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.UpsertArrayItem, "/admin/content/array-item", map[string]any{
		"section": "projects",
		"item":    map[string]any{"name": "no id"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_DeleteArrayItemAbsentIsOK(t *testing.T) {
	admin := &MockAdminService{token: "t"}
	h := newAdminHandler(t, admin)

	w := postJSON(t, h.DeleteArrayItem, "/admin/content/array-item", map[string]any{
		"section":   "projects",
		"item_id":   "missing",
		"array_key": "items",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
