package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/durangezer/portfolio-api/internal/database"
	"github.com/durangezer/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// ChatSessionRepository persists per-session conversation history
type ChatSessionRepository struct {
	db *database.DB
}

// NewChatSessionRepository creates a new ChatSessionRepository
func NewChatSessionRepository(db *database.DB) *ChatSessionRepository {
	return &ChatSessionRepository{db: db}
}

// GetHistory returns the stored messages for a session, or an empty slice
// for an unknown session
func (r *ChatSessionRepository) GetHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	query := `SELECT messages FROM chat_sessions WHERE session_id = $1`

	var raw []byte
	err := r.db.Pool.QueryRow(ctx, query, sessionID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// SaveHistory upserts the full message list for a session
func (r *ChatSessionRepository) SaveHistory(ctx context.Context, sessionID string, messages []models.ChatMessage) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO chat_sessions (session_id, messages, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id)
		DO UPDATE SET messages = EXCLUDED.messages, updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.Pool.Exec(ctx, query, sessionID, raw, time.Now())
	return err
}
