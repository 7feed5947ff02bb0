package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// SendStatus sends a plain status message and returns its ID for later edits.
func SendStatus(ctx context.Context, b *bot.Bot, chatID int64, replyToID int, text string) (int, error) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if replyToID != 0 {
		params.ReplyParameters = &models.ReplyParameters{MessageID: replyToID}
	}
	msg, err := b.SendMessage(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("send status message: %w", err)
	}
	return msg.ID, nil
}

// EditStatus replaces the text of a previously sent status message.
// Edit failures are logged, not returned: a stale status message should
// never abort a download.
func EditStatus(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string) {
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	})
	if err != nil {
		slog.Debug("edit status message failed", "chat_id", chatID, "error", err)
	}
}

// SendVideoFile uploads a local video file to the chat, falling back to a
// document upload when Telegram rejects it as a video.
func SendVideoFile(ctx context.Context, b *bot.Bot, chatID int64, filePath, caption string, duration int) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	name := filepath.Base(filePath)
	_, err = b.SendVideo(ctx, &bot.SendVideoParams{
		ChatID:            chatID,
		Video:             &models.InputFileUpload{Filename: name, Data: f},
		Caption:           caption,
		Duration:          duration,
		SupportsStreaming: true,
	})
	if err == nil {
		return nil
	}
	slog.Warn("video upload rejected, retrying as document", "chat_id", chatID, "error", err)

	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("rewind media file: %w", err)
	}
	_, err = b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   chatID,
		Document: &models.InputFileUpload{Filename: name, Data: f},
		Caption:  caption,
	})
	if err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

// StartUploading sends the "uploading video" chat action every 4 seconds
// until the returned cancel function is called.
func StartUploading(ctx context.Context, b *bot.Bot, chatID int64) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(4 * time.Second)
		defer ticker.Stop()
		b.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionUploadVideo,
		})
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.SendChatAction(ctx, &bot.SendChatActionParams{
					ChatID: chatID,
					Action: models.ChatActionUploadVideo,
				})
			}
		}
	}()
	return cancel
}
