package service

import (
	"context"
	"log/slog"

	"github.com/clipfetch/clipfetch/internal/domain"
)

// PrefsStore is the persistence needed by PrefsService.
type PrefsStore interface {
	Quality(ctx context.Context, chatID int64) (domain.Quality, error)
	SetQuality(ctx context.Context, chatID int64, q domain.Quality) error
}

// PrefsService resolves and stores per-chat quality preferences.
type PrefsService struct {
	store    PrefsStore
	ffmpegOK bool
}

func NewPrefsService(store PrefsStore, ffmpegOK bool) *PrefsService {
	return &PrefsService{store: store, ffmpegOK: ffmpegOK}
}

// Quality returns the chat's stored preference, or the mode default when
// nothing valid is stored. Lookup failures fall back to the default so a
// database hiccup never blocks a download.
func (s *PrefsService) Quality(ctx context.Context, chatID int64) domain.Quality {
	q, err := s.store.Quality(ctx, chatID)
	if err != nil {
		slog.Error("load chat quality", "chat_id", chatID, "error", err)
		return domain.DefaultQuality(s.ffmpegOK)
	}
	if !q.Valid() {
		return domain.DefaultQuality(s.ffmpegOK)
	}
	if q == domain.Quality720 && !s.ffmpegOK {
		return domain.Quality480
	}
	return q
}

// SetQuality validates and stores a preference. 720p needs ffmpeg for
// stream merging.
func (s *PrefsService) SetQuality(ctx context.Context, chatID int64, q domain.Quality) error {
	if !q.Valid() {
		return domain.ErrInvalidQuality
	}
	if q == domain.Quality720 && !s.ffmpegOK {
		return domain.ErrQualityNeedsFFmpeg
	}
	return s.store.SetQuality(ctx, chatID, q)
}
