package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/clipfetch/clipfetch/internal/domain"
	tg "github.com/clipfetch/clipfetch/internal/telegram"
)

func (h *Handler) handleQuality(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	// "/quality 480" sets directly, "/quality" shows the keyboard
	parts := strings.Fields(update.Message.Text)
	if len(parts) > 1 {
		choice := strings.TrimSuffix(strings.ToLower(parts[1]), "p")
		h.setQuality(ctx, b, chatID, domain.Quality(choice))
		return
	}

	current := h.prefs.Quality(ctx, chatID)

	var buttons []models.InlineKeyboardButton
	for _, q := range domain.Qualities {
		label := q.String() + "p"
		if q == current {
			label = "✅ " + label
		}
		buttons = append(buttons, tg.InlineButton(label, "q_"+q.String()))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("Pick a quality preference for this chat.\nCurrent: %sp", current),
		ReplyMarkup: tg.InlineKeyboard(tg.ButtonRow(buttons...)),
	})
}

func (h *Handler) handleQualityCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	cb := update.CallbackQuery
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: cb.ID,
	})

	if cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID
	choice := domain.Quality(strings.TrimPrefix(cb.Data, "q_"))

	h.setQuality(ctx, b, chatID, choice)
}

func (h *Handler) setQuality(ctx context.Context, b *bot.Bot, chatID int64, q domain.Quality) {
	err := h.prefs.SetQuality(ctx, chatID, q)
	switch err {
	case nil:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("Quality preference saved: %sp", q),
		})
	case domain.ErrInvalidQuality:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Please choose 360, 480, or 720.",
		})
	case domain.ErrQualityNeedsFFmpeg:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "720p requires ffmpeg mode. I'm currently running without ffmpeg.",
		})
	default:
		slog.Error("set chat quality", "chat_id", chatID, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Could not save the preference. Try again later.",
		})
	}
}
