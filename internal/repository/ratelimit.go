package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RateLimitRepository counts messages per chat in one-minute windows.
type RateLimitRepository struct {
	db *pgxpool.Pool
}

func NewRateLimitRepository(db *pgxpool.Pool) *RateLimitRepository {
	return &RateLimitRepository{db: db}
}

// CheckAndIncrement bumps the counter for the chat's current minute window
// and returns the new count.
func (r *RateLimitRepository) CheckAndIncrement(ctx context.Context, chatID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		INSERT INTO rate_limits (chat_id, window_start, count)
		VALUES ($1, date_trunc('minute', now()), 1)
		ON CONFLICT (chat_id, window_start)
		DO UPDATE SET count = rate_limits.count + 1
		RETURNING count`,
		chatID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment rate limit: %w", err)
	}
	return count, nil
}

// CleanupOld drops windows older than the retention period.
func (r *RateLimitRepository) CleanupOld(ctx context.Context, retention time.Duration) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM rate_limits
		WHERE window_start < now() - $1::interval`,
		fmt.Sprintf("%d seconds", int(retention.Seconds())),
	)
	if err != nil {
		return fmt.Errorf("cleanup rate limits: %w", err)
	}
	return nil
}
