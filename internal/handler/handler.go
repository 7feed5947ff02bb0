package handler

import (
	"github.com/go-telegram/bot"

	"github.com/clipfetch/clipfetch/internal/config"
	"github.com/clipfetch/clipfetch/internal/repository"
	"github.com/clipfetch/clipfetch/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot       *bot.Bot
	cfg       *config.Config
	prefs     *service.PrefsService
	downloads *service.DownloadService
	history   *repository.HistoryRepository
	ffmpegOK  bool
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot       *bot.Bot
	Cfg       *config.Config
	Prefs     *service.PrefsService
	Downloads *service.DownloadService
	History   *repository.HistoryRepository
	FFmpegOK  bool
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:       deps.Bot,
		cfg:       deps.Cfg,
		prefs:     deps.Prefs,
		downloads: deps.Downloads,
		history:   deps.History,
		ffmpegOK:  deps.FFmpegOK,
	}
}
