package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/clipfetch/clipfetch/internal/linkdetect"
)

// HandleText is the default text handler: it extracts supported video
// links from the message and downloads each in order.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	urls := linkdetect.SupportedURLs(update.Message.Text)
	if len(urls) == 0 {
		// Only nag when the message actually contained a link
		if len(linkdetect.FindURLs(update.Message.Text)) > 0 {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "Please send a supported video link (YouTube, Instagram, TikTok, Facebook, Twitter/X, Vimeo).",
			})
		}
		return
	}

	for _, url := range urls {
		// Errors are already reported to the chat and logged
		_ = h.downloads.Handle(ctx, b, chatID, update.Message.ID, url)
	}
}
