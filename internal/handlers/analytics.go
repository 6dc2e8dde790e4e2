package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/durangezer/portfolio-api/internal/models"
	pkghttp "github.com/durangezer/portfolio-api/pkg/http"
)

const (
	defaultStatsDays = 30
	maxStatsDays     = 365
)

// AnalyticsServiceInterface defines the interface for analytics operations
type AnalyticsServiceInterface interface {
	RecordPageView(ctx context.Context, view *models.PageView) error
	Stats(ctx context.Context, days int) (*models.AnalyticsStats, error)
}

// AnalyticsHandler handles page view recording and stats reporting
type AnalyticsHandler struct {
	service AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// PageViewRequest represents the request body for recording a page view
type PageViewRequest struct {
	PagePath    string  `json:"page_path" validate:"required,max=255"`
	ProjectSlug *string `json:"project_slug,omitempty" validate:"omitempty,max=100"`
	VisitorID   *string `json:"visitor_id,omitempty" validate:"omitempty,max=100"`
	Referrer    *string `json:"referrer,omitempty" validate:"omitempty,max=500"`
}

// PageViewResponse reports the outcome of recording a page view
type PageViewResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RecordPageView handles recording a single page view
func (h *AnalyticsHandler) RecordPageView(w http.ResponseWriter, r *http.Request) {
	var req PageViewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, err.Error())
		return
	}

	view := &models.PageView{
		PagePath:    req.PagePath,
		ProjectSlug: req.ProjectSlug,
		VisitorID:   req.VisitorID,
		UserAgent:   r.Header.Get("User-Agent"),
		Referrer:    req.Referrer,
	}

	if err := h.service.RecordPageView(r.Context(), view); err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, PageViewResponse{
		Success: true,
		Message: "Page view recorded",
	})
}

// GetStats returns aggregated viewing statistics (admin only)
func (h *AnalyticsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	days := defaultStatsDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxStatsDays {
			pkghttp.WriteBadRequest(w, "days must be between 1 and 365")
			return
		}
		days = parsed
	}

	stats, err := h.service.Stats(r.Context(), days)
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, stats)
}
