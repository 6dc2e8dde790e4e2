package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetAdminFromContext(r)
		require.NotNil(t, claims)
		assert.True(t, claims.Admin)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminOnly_ValidToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 1*time.Hour)
	token, err := tm.Issue("203.0.113.7")
	require.NoError(t, err)

	handler := AdminOnly(tm, testLogger())(protectedHandler(t))

	r := httptest.NewRequest("GET", "/admin/content", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_MissingHeader(t *testing.T) {
	tm := NewTokenManager(testSecret, 1*time.Hour)
	handler := AdminOnly(tm, testLogger())(protectedHandler(t))

	r := httptest.NewRequest("GET", "/admin/content", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_MalformedHeader(t *testing.T) {
	tm := NewTokenManager(testSecret, 1*time.Hour)
	handler := AdminOnly(tm, testLogger())(protectedHandler(t))

	r := httptest.NewRequest("GET", "/admin/content", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_ExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, -1*time.Minute)
	token, err := tm.Issue("203.0.113.7")
	require.NoError(t, err)

	validator := NewTokenManager(testSecret, 1*time.Hour)
	handler := AdminOnly(validator, testLogger())(protectedHandler(t))

	r := httptest.NewRequest("GET", "/admin/content", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
