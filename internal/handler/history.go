package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/clipfetch/clipfetch/internal/config"
	"github.com/clipfetch/clipfetch/internal/domain"
	tg "github.com/clipfetch/clipfetch/internal/telegram"
)

func (h *Handler) handleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	records, err := h.history.Recent(ctx, chatID, config.HistoryPageSize)
	if err != nil {
		slog.Error("load download history", "chat_id", chatID, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Could not load the history. Try again later.",
		})
		return
	}

	if len(records) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "No downloads in this chat yet. Send me a video link!",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 Recent downloads:\n\n")
	for _, rec := range records {
		icon := "✅"
		switch rec.Status {
		case domain.StatusFailed:
			icon = "❌"
		case domain.StatusDownloading:
			icon = "⏳"
		}

		title := rec.Title
		if title == "" {
			title = rec.URL
		}

		sb.WriteString(fmt.Sprintf("%s %s [%s, %sp", icon, title, rec.Platform, rec.Quality))
		if rec.SizeBytes > 0 {
			sb.WriteString(", " + tg.HumanBytes(rec.SizeBytes))
		}
		sb.WriteString(fmt.Sprintf("] — %s\n", rec.CreatedAt.Format("02.01.2006 15:04")))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   tg.TruncateMessage(sb.String(), config.MaxTelegramMessageLen),
	})
}
