package repositories

import (
	"context"

	"github.com/durangezer/portfolio-api/internal/database"
	"github.com/durangezer/portfolio-api/internal/models"
)

// ContactRepository handles database operations for contact submissions
type ContactRepository struct {
	db *database.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create stores a contact submission and fills in its generated fields
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (name, email, subject, message, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at
	`

	return r.db.Pool.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
		contact.IPAddress,
	).Scan(&contact.ID, &contact.IsRead, &contact.CreatedAt)
}

// ListUnread returns unread submissions, newest first
func (r *ContactRepository) ListUnread(ctx context.Context, limit int) ([]models.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, ip_address, is_read, created_at
		FROM contacts
		WHERE is_read = false
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.IPAddress, &c.IsRead, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}
