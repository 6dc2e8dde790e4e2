package models

import "time"

// PageView represents a single recorded page view
type PageView struct {
	ID          int64     `json:"id"`
	PagePath    string    `json:"page_path"`
	ProjectSlug *string   `json:"project_slug,omitempty"`
	VisitorID   *string   `json:"visitor_id,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	Referrer    *string   `json:"referrer,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PageStats holds aggregated views for a single page path
type PageStats struct {
	PagePath  string `json:"page_path"`
	ViewCount int64  `json:"view_count"`
}

// ProjectStats holds aggregated views for a single project
type ProjectStats struct {
	ProjectSlug string `json:"project_slug"`
	ViewCount   int64  `json:"view_count"`
}

// AnalyticsStats is the aggregated analytics report
type AnalyticsStats struct {
	TotalViews     int64          `json:"total_views"`
	UniqueVisitors int64          `json:"unique_visitors"`
	TopPages       []PageStats    `json:"top_pages"`
	TopProjects    []ProjectStats `json:"top_projects"`
	PeriodDays     int            `json:"period_days"`
}
