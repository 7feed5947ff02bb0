package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/google/uuid"

	"github.com/clipfetch/clipfetch/internal/config"
	"github.com/clipfetch/clipfetch/internal/domain"
	"github.com/clipfetch/clipfetch/internal/downloader"
	"github.com/clipfetch/clipfetch/internal/ffmpeg"
	"github.com/clipfetch/clipfetch/internal/linkdetect"
	"github.com/clipfetch/clipfetch/internal/repository"
	tg "github.com/clipfetch/clipfetch/internal/telegram"
)

// DownloadService orchestrates one URL from status message to uploaded
// media file.
type DownloadService struct {
	cfg       *config.Config
	dl        *downloader.Service
	prefs     *PrefsService
	probe     *ProbeService
	history   *repository.HistoryRepository
	ffprobeOK bool
}

func NewDownloadService(
	cfg *config.Config,
	dl *downloader.Service,
	prefs *PrefsService,
	probe *ProbeService,
	history *repository.HistoryRepository,
	ffprobeOK bool,
) *DownloadService {
	return &DownloadService{
		cfg:       cfg,
		dl:        dl,
		prefs:     prefs,
		probe:     probe,
		history:   history,
		ffprobeOK: ffprobeOK,
	}
}

// Handle downloads the URL and replies with the media file. Errors are
// reported to the chat; the returned error is for logging only.
func (s *DownloadService) Handle(ctx context.Context, b *bot.Bot, chatID int64, replyToID int, url string) error {
	quality := s.prefs.Quality(ctx, chatID)

	job := downloader.Job{
		ID:      newJobID(),
		ChatID:  chatID,
		URL:     url,
		Quality: quality,
	}

	if err := s.history.Create(ctx, &domain.DownloadRecord{
		ID:       job.ID,
		ChatID:   chatID,
		URL:      url,
		Platform: linkdetect.Platform(url),
		Quality:  quality,
	}); err != nil {
		slog.Error("create download record", "job_id", job.ID, "error", err)
	}

	probedTitle := s.probeTitle(ctx, url)

	statusText := fmt.Sprintf("⬇️ Downloading:\n%s\nPreference: %sp", url, quality)
	if probedTitle != "" {
		statusText = fmt.Sprintf("⬇️ Downloading: %s\nPreference: %sp", probedTitle, quality)
	}
	statusID, err := tg.SendStatus(ctx, b, chatID, replyToID, statusText)
	if err != nil {
		slog.Error("send status message", "chat_id", chatID, "error", err)
	}

	dlCtx, cancel := context.WithTimeout(ctx, config.DownloadTimeout)
	defer cancel()

	result, err := s.dl.Download(dlCtx, job, s.progressReporter(ctx, b, chatID, statusID))
	if err != nil {
		s.reportFailure(ctx, b, chatID, statusID, job, err)
		return err
	}
	defer result.Cleanup()

	title := result.Title
	if title == "" {
		title = probedTitle
	}
	if title == "" {
		title = "video"
	}

	if statusID != 0 {
		tg.EditStatus(ctx, b, chatID, statusID, "📤 Uploading to Telegram…")
	}
	stopUploading := tg.StartUploading(ctx, b, chatID)
	uploadErr := tg.SendVideoFile(ctx, b, chatID, result.FilePath, title, s.duration(ctx, result.FilePath))
	stopUploading()

	if uploadErr != nil {
		s.reportFailure(ctx, b, chatID, statusID, job, uploadErr)
		return uploadErr
	}

	if err := s.history.Finish(ctx, job.ID, domain.StatusDone, title, result.SizeBytes, ""); err != nil {
		slog.Error("finish download record", "job_id", job.ID, "error", err)
	}
	if statusID != 0 {
		tg.EditStatus(ctx, b, chatID, statusID, "✅ Done")
	}

	slog.Info("download delivered",
		"job_id", job.ID,
		"chat_id", chatID,
		"platform", linkdetect.Platform(url),
		"quality", quality,
		"size", result.SizeBytes,
		"format", result.Format,
	)
	return nil
}

// probeTitle is best effort and bounded so a slow page never delays the
// actual download.
func (s *DownloadService) probeTitle(ctx context.Context, url string) string {
	probeCtx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	title, err := s.probe.Title(probeCtx, url)
	if err != nil {
		slog.Debug("page probe failed", "url", url, "error", err)
		return ""
	}
	return title
}

// progressReporter returns a throttled progress callback that edits the
// status message.
func (s *DownloadService) progressReporter(ctx context.Context, b *bot.Bot, chatID int64, statusID int) func(downloader.Progress) {
	if statusID == 0 {
		return nil
	}

	var mu sync.Mutex
	var lastEdit time.Time
	var lastPercent int

	return func(p downloader.Progress) {
		mu.Lock()
		defer mu.Unlock()

		if p.TotalBytes == 0 || p.Percent == lastPercent {
			return
		}
		if time.Since(lastEdit) < config.StatusEditThrottle {
			return
		}
		lastEdit = time.Now()
		lastPercent = p.Percent

		tg.EditStatus(ctx, b, chatID, statusID, fmt.Sprintf(
			"⬇️ Downloading… %d%% (%s / %s)",
			p.Percent, tg.HumanBytes(p.DownloadedBytes), tg.HumanBytes(p.TotalBytes),
		))
	}
}

func (s *DownloadService) reportFailure(ctx context.Context, b *bot.Bot, chatID int64, statusID int, job downloader.Job, err error) {
	var text string
	switch {
	case errors.Is(err, domain.ErrTooLarge):
		text = fmt.Sprintf(
			"⚠️ The file exceeds the configured max (%s) at every quality. "+
				"Try a shorter video or a lower resolution with /quality.",
			tg.HumanBytes(s.cfg.MaxTGBytes),
		)
	case dlTimedOut(err):
		text = "❌ Download timed out. Try again later or pick a lower quality with /quality."
	default:
		text = "❌ Download failed. The link may be private, removed, or unsupported."
	}

	if statusID != 0 {
		tg.EditStatus(ctx, b, chatID, statusID, text)
	} else {
		if _, sendErr := tg.SendStatus(ctx, b, chatID, 0, text); sendErr != nil {
			slog.Error("send failure message", "chat_id", chatID, "error", sendErr)
		}
	}

	if hErr := s.history.Finish(ctx, job.ID, domain.StatusFailed, "", 0, err.Error()); hErr != nil {
		slog.Error("finish download record", "job_id", job.ID, "error", hErr)
	}

	slog.Warn("download failed", "job_id", job.ID, "chat_id", chatID, "url", job.URL, "error", err)
}

func (s *DownloadService) duration(ctx context.Context, filePath string) int {
	if !s.ffprobeOK {
		return 0
	}
	d, err := ffmpeg.ProbeDuration(ctx, s.cfg.FFprobePath, filePath)
	if err != nil {
		slog.Debug("probe duration failed", "file", filePath, "error", err)
		return 0
	}
	return int(d)
}

// dlTimedOut matches the per-download deadline only. Cancellation (bot
// shutdown) is not a timeout and gets the generic failure text.
func dlTimedOut(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func newJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
