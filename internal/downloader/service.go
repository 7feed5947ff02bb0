// Package downloader drives yt-dlp to fetch videos from supported
// platforms, with quality fallback and a hard size cap.
package downloader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/clipfetch/clipfetch/internal/config"
	"github.com/clipfetch/clipfetch/internal/domain"
	"github.com/clipfetch/clipfetch/internal/linkdetect"
)

const (
	progressInterval = 500 * time.Millisecond

	downloadRetries     = "3"
	concurrentFragments = 4
)

// harden applies the request options every download gets: a browser user
// agent (several platforms reject yt-dlp's default), retries, and parallel
// fragment downloads.
func harden(dl *ytdlp.Command) *ytdlp.Command {
	return dl.
		UserAgent(config.UserAgent).
		Retries(downloadRetries).
		ConcurrentFragments(concurrentFragments)
}

// Job describes one download request.
type Job struct {
	ID      string
	ChatID  int64
	URL     string
	Quality domain.Quality
}

// Progress is a snapshot of download progress reported to the caller.
type Progress struct {
	DownloadedBytes int64
	TotalBytes      int64
	Percent         int
}

// Result is a finished download. The caller owns the file and must call
// Cleanup once it is done with it.
type Result struct {
	FilePath  string
	Title     string
	SizeBytes int64
	Format    string

	tmpDir string
}

// Cleanup removes the temporary directory holding the downloaded file.
func (r *Result) Cleanup() {
	if r.tmpDir != "" {
		_ = os.RemoveAll(r.tmpDir)
	}
}

// Service downloads videos with bounded concurrency.
type Service struct {
	baseDir     string
	maxBytes    int64
	ffmpegOK    bool
	igSessionID string
	sem         chan struct{}
}

// NewService creates a download service. baseDir may be empty to use the
// system temp directory. maxParallel bounds concurrent downloads across
// all chats.
func NewService(baseDir string, maxBytes int64, ffmpegOK bool, igSessionID string, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		baseDir:     baseDir,
		maxBytes:    maxBytes,
		ffmpegOK:    ffmpegOK,
		igSessionID: igSessionID,
		sem:         make(chan struct{}, maxParallel),
	}
}

// FFmpegOK reports whether the service runs in merging mode.
func (s *Service) FFmpegOK() bool {
	return s.ffmpegOK
}

// Download fetches the video behind job.URL at the requested quality,
// downshifting through the fallback chain when a format is unavailable or
// the result exceeds the size cap. onProgress may be nil.
func (s *Service) Download(ctx context.Context, job Job, onProgress func(Progress)) (*Result, error) {
	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tmpDir, err := os.MkdirTemp(s.baseDir, "dl_")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	cookiesPath := ""
	if s.igSessionID != "" && linkdetect.IsInstagram(job.URL) {
		cookiesPath, err = WriteInstagramCookies(tmpDir, s.igSessionID)
		if err != nil {
			_ = os.RemoveAll(tmpDir)
			return nil, err
		}
	}

	var lastErr error
	tooBig := false

	for _, format := range FallbackChain(job.Quality, s.ffmpegOK) {
		res, err := s.runAttempt(ctx, tmpDir, job, format, cookiesPath, onProgress)
		if err == nil {
			res.tmpDir = tmpDir
			return res, nil
		}
		if ctx.Err() != nil {
			_ = os.RemoveAll(tmpDir)
			return nil, ctx.Err()
		}
		if err == domain.ErrTooLarge {
			tooBig = true
			slog.Info("downshifting after size cap hit",
				"job_id", job.ID, "url", job.URL, "format", format)
			continue
		}
		lastErr = err
		slog.Warn("download attempt failed",
			"job_id", job.ID, "url", job.URL, "format", format, "error", err)
	}

	_ = os.RemoveAll(tmpDir)
	if tooBig {
		return nil, domain.ErrTooLarge
	}
	if lastErr == nil {
		lastErr = domain.ErrNoMediaFile
	}
	return nil, fmt.Errorf("all formats failed: %w", lastErr)
}

func (s *Service) runAttempt(ctx context.Context, tmpDir string, job Job, format, cookiesPath string, onProgress func(Progress)) (*Result, error) {
	attemptDir, err := os.MkdirTemp(tmpDir, "try_")
	if err != nil {
		return nil, fmt.Errorf("create attempt dir: %w", err)
	}

	dl := harden(ytdlp.New()).
		Format(format).
		NoPlaylist().
		RestrictFilenames().
		ForceOverwrites().
		Output(filepath.Join(attemptDir, "%(title).80s-%(id)s.%(ext)s"))
	if s.ffmpegOK {
		dl = dl.MergeOutputFormat("mp4")
	}
	if cookiesPath != "" {
		dl = dl.Cookies(cookiesPath)
	}

	title := ""
	if onProgress != nil {
		dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			p := Progress{
				DownloadedBytes: int64(update.DownloadedBytes),
				TotalBytes:      int64(update.TotalBytes),
			}
			if update.TotalBytes > 0 {
				p.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
			}
			if update.Info != nil && update.Info.Title != nil && title == "" {
				title = *update.Info.Title
			}
			onProgress(p)
		})
	}

	result, err := dl.Run(ctx, job.URL)
	if err != nil {
		_ = os.RemoveAll(attemptDir)
		return nil, fmt.Errorf("run yt-dlp: %w", err)
	}

	if info, err := result.GetExtractedInfo(); err == nil && len(info) > 0 {
		if info[0].Title != nil && *info[0].Title != "" {
			title = *info[0].Title
		}
	}

	filePath, ok := pickFinalFile(attemptDir)
	if !ok {
		_ = os.RemoveAll(attemptDir)
		return nil, domain.ErrNoMediaFile
	}

	fi, err := os.Stat(filePath)
	if err != nil {
		_ = os.RemoveAll(attemptDir)
		return nil, fmt.Errorf("stat downloaded file: %w", err)
	}
	if fi.Size() > s.maxBytes {
		_ = os.RemoveAll(attemptDir)
		return nil, domain.ErrTooLarge
	}

	return &Result{
		FilePath:  filePath,
		Title:     title,
		SizeBytes: fi.Size(),
		Format:    format,
	}, nil
}
