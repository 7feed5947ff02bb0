package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipfetch/clipfetch/internal/domain"
)

// PrefsRepository stores per-chat quality preferences.
type PrefsRepository struct {
	db *pgxpool.Pool
}

func NewPrefsRepository(db *pgxpool.Pool) *PrefsRepository {
	return &PrefsRepository{db: db}
}

// Quality returns the stored preference for a chat, or "" when none is set.
func (r *PrefsRepository) Quality(ctx context.Context, chatID int64) (domain.Quality, error) {
	var q string
	err := r.db.QueryRow(ctx,
		`SELECT quality FROM chat_prefs WHERE chat_id = $1`, chatID,
	).Scan(&q)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get chat quality: %w", err)
	}
	return domain.Quality(q), nil
}

func (r *PrefsRepository) SetQuality(ctx context.Context, chatID int64, q domain.Quality) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_prefs (chat_id, quality)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET quality = EXCLUDED.quality, updated_at = now()`,
		chatID, string(q),
	)
	if err != nil {
		return fmt.Errorf("set chat quality: %w", err)
	}
	return nil
}
