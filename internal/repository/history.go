package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipfetch/clipfetch/internal/domain"
)

// HistoryRepository is the download ledger.
type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, rec *domain.DownloadRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO downloads (id, chat_id, url, platform, quality, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.ChatID, rec.URL, rec.Platform, string(rec.Quality), domain.StatusDownloading,
	)
	if err != nil {
		return fmt.Errorf("create download record: %w", err)
	}
	return nil
}

// Finish marks a record done or failed with its final metadata.
func (r *HistoryRepository) Finish(ctx context.Context, id, status, title string, sizeBytes int64, errText string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE downloads
		SET status = $2, title = $3, size_bytes = $4, error = $5, updated_at = now()
		WHERE id = $1`,
		id, status, title, sizeBytes, errText,
	)
	if err != nil {
		return fmt.Errorf("finish download record: %w", err)
	}
	return nil
}

func (r *HistoryRepository) Recent(ctx context.Context, chatID int64, limit int) ([]domain.DownloadRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, chat_id, url, platform, title, quality, size_bytes, status, error, created_at, updated_at
		FROM downloads
		WHERE chat_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		chatID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent downloads: %w", err)
	}
	defer rows.Close()

	var out []domain.DownloadRecord
	for rows.Next() {
		var rec domain.DownloadRecord
		var quality string
		if err := rows.Scan(
			&rec.ID, &rec.ChatID, &rec.URL, &rec.Platform, &rec.Title,
			&quality, &rec.SizeBytes, &rec.Status, &rec.Error,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan download record: %w", err)
		}
		rec.Quality = domain.Quality(quality)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats
	err := r.db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'done'),
		       count(*) FILTER (WHERE status = 'failed'),
		       COALESCE(sum(size_bytes) FILTER (WHERE status = 'done'), 0)::bigint,
		       count(DISTINCT chat_id)
		FROM downloads`,
	).Scan(&s.Total, &s.Done, &s.Failed, &s.TotalBytes, &s.Chats)
	if err != nil {
		return nil, fmt.Errorf("query download stats: %w", err)
	}
	return &s, nil
}

// CleanupStale marks downloads stuck in the downloading state as failed.
// A row goes stale when the process died mid-download.
func (r *HistoryRepository) CleanupStale(ctx context.Context, age time.Duration) error {
	_, err := r.db.Exec(ctx, `
		UPDATE downloads
		SET status = 'failed', error = 'stale', updated_at = now()
		WHERE status = 'downloading' AND created_at < now() - $1::interval`,
		fmt.Sprintf("%d seconds", int(age.Seconds())),
	)
	if err != nil {
		return fmt.Errorf("cleanup stale downloads: %w", err)
	}
	return nil
}
