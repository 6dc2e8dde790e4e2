package repositories

import (
	"context"
	"time"

	"github.com/durangezer/portfolio-api/internal/database"
	"github.com/durangezer/portfolio-api/internal/models"
)

// PageViewRepository handles database operations for page view analytics
type PageViewRepository struct {
	db *database.DB
}

// NewPageViewRepository creates a new PageViewRepository
func NewPageViewRepository(db *database.DB) *PageViewRepository {
	return &PageViewRepository{db: db}
}

// Record stores a single page view
func (r *PageViewRepository) Record(ctx context.Context, view *models.PageView) error {
	query := `
		INSERT INTO page_views (page_path, project_slug, visitor_id, user_agent, referrer)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.db.Pool.QueryRow(ctx, query,
		view.PagePath,
		view.ProjectSlug,
		view.VisitorID,
		view.UserAgent,
		view.Referrer,
	).Scan(&view.ID, &view.CreatedAt)
}

// TotalViews counts all views since the given time
func (r *PageViewRepository) TotalViews(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM page_views WHERE created_at >= $1`

	var count int64
	err := r.db.Pool.QueryRow(ctx, query, since).Scan(&count)
	return count, err
}

// UniqueVisitors counts distinct non-null visitor ids since the given time
func (r *PageViewRepository) UniqueVisitors(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT visitor_id) FROM page_views
		WHERE created_at >= $1 AND visitor_id IS NOT NULL
	`

	var count int64
	err := r.db.Pool.QueryRow(ctx, query, since).Scan(&count)
	return count, err
}

// TopPages returns the most-viewed page paths since the given time
func (r *PageViewRepository) TopPages(ctx context.Context, since time.Time, limit int) ([]models.PageStats, error) {
	query := `
		SELECT page_path, COUNT(*) AS view_count
		FROM page_views
		WHERE created_at >= $1
		GROUP BY page_path
		ORDER BY view_count DESC
		LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.PageStats
	for rows.Next() {
		var s models.PageStats
		if err := rows.Scan(&s.PagePath, &s.ViewCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// TopProjects returns the most-viewed project slugs since the given time
func (r *PageViewRepository) TopProjects(ctx context.Context, since time.Time, limit int) ([]models.ProjectStats, error) {
	query := `
		SELECT project_slug, COUNT(*) AS view_count
		FROM page_views
		WHERE created_at >= $1 AND project_slug IS NOT NULL
		GROUP BY project_slug
		ORDER BY view_count DESC
		LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.ProjectStats
	for rows.Next() {
		var s models.ProjectStats
		if err := rows.Scan(&s.ProjectSlug, &s.ViewCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
