package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/clipfetch/clipfetch/internal/telegram"
)

func (h *Handler) handleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		return
	}

	chatID := update.Message.Chat.ID

	stats, err := h.history.Stats(ctx)
	if err != nil {
		slog.Error("load stats", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Could not load stats.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf(
			"📊 Totals\nDownloads: %d\nDelivered: %d\nFailed: %d\nChats: %d\nTraffic: %s",
			stats.Total, stats.Done, stats.Failed, stats.Chats, tg.HumanBytes(stats.TotalBytes),
		),
	})
}
