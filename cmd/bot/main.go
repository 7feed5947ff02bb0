package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/lrstanley/go-ytdlp"

	clipfetch "github.com/clipfetch/clipfetch"
	"github.com/clipfetch/clipfetch/internal/config"
	"github.com/clipfetch/clipfetch/internal/downloader"
	"github.com/clipfetch/clipfetch/internal/ffmpeg"
	"github.com/clipfetch/clipfetch/internal/handler"
	"github.com/clipfetch/clipfetch/internal/middleware"
	"github.com/clipfetch/clipfetch/internal/repository"
	"github.com/clipfetch/clipfetch/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(clipfetch.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Make sure a yt-dlp binary is available, downloading one if needed
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		slog.Error("failed to install yt-dlp", "error", err)
		os.Exit(1)
	}

	// Detect ffmpeg: with it we can merge separate video/audio streams
	ffmpegOK := false
	ffprobeOK := false
	if cfg.NoFFmpeg {
		slog.Info("ffmpeg disabled by NO_FFMPEG, single-file formats only")
	} else {
		var ffmpegPath string
		ffmpegPath, ffmpegOK = ffmpeg.Detect(cfg.FFmpegPath)
		if ffmpegOK {
			slog.Info("ffmpeg found", "path", ffmpegPath)
			_, ffprobeOK = ffmpeg.Detect(cfg.FFprobePath)
		} else {
			slog.Warn("ffmpeg not found, single-file formats only", "path", cfg.FFmpegPath)
		}
	}

	// Initialize repositories
	prefsRepo := repository.NewPrefsRepository(pool)
	historyRepo := repository.NewHistoryRepository(pool)
	rateLimitRepo := repository.NewRateLimitRepository(pool)

	// Initialize services
	prefsService := service.NewPrefsService(prefsRepo, ffmpegOK)
	probeService := service.NewProbeService()
	downloadDispatcher := downloader.NewService(
		cfg.DownloadDir, cfg.MaxTGBytes, ffmpegOK, cfg.IGSessionID, cfg.MaxConcurrentDownloads,
	)

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(rateLimitRepo),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil || update.Message == nil {
				return
			}
			// Commands are registered separately
			if strings.HasPrefix(update.Message.Text, "/") {
				return
			}
			h.HandleText(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DropPendingUpdates {
		b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true})
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	downloadService := service.NewDownloadService(
		cfg, downloadDispatcher, prefsService, probeService, historyRepo, ffprobeOK,
	)

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:       b,
		Cfg:       cfg,
		Prefs:     prefsService,
		Downloads: downloadService,
		History:   historyRepo,
		FFmpegOK:  ffmpegOK,
	})

	// Register all handlers
	h.Register()

	// Periodic cleanup: stale download records and old rate-limit windows
	go func() {
		ticker := time.NewTicker(config.StaleCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := historyRepo.CleanupStale(context.Background(), config.StaleDownloadAge); err != nil {
					slog.Error("cleanup stale downloads", "error", err)
				}
				if err := rateLimitRepo.CleanupOld(context.Background(), config.RateLimitRetention); err != nil {
					slog.Error("cleanup rate limits", "error", err)
				}
			}
		}
	}()

	// Start bot
	slog.Info("starting bot",
		"username", me.Username,
		"id", me.ID,
		"ffmpeg", ffmpegOK,
		"max_bytes", cfg.MaxTGBytes,
	)
	b.Start(ctx)

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}
