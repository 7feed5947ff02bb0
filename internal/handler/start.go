package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	quality := h.prefs.Quality(ctx, chatID)

	mode := "FFmpeg (merging, up to 720p)"
	if !h.ffmpegOK {
		mode = "no FFmpeg (single-file, up to 480p)"
	}

	text := fmt.Sprintf(
		"👋 *Hi!* Send me a link and I'll fetch the video for you.\n\n"+
			"Supported: YouTube, Instagram, TikTok, Facebook, Twitter/X, Vimeo\n\n"+
			"Mode: %s\n"+
			"Current quality preference for this chat: *%sp*\n\n"+
			"📋 *Commands:*\n"+
			"/quality — Change the quality preference\n"+
			"/history — Recent downloads in this chat\n"+
			"/help — Show this message",
		mode, quality,
	)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		// Fallback: plain text
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   text,
		})
	}
}
