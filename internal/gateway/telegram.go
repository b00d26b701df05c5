package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// telegramAPI is the slice of the Bot API the adapter needs. *tgbotapi.BotAPI
// satisfies it; tests substitute a fake.
type telegramAPI interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

// TelegramAdapter polls the Bot API getUpdates endpoint and normalizes
// updates to UnifiedMessage. The update offset is the adapter's pagination
// cursor: it tracks the highest update id seen + 1 so the Bot API never
// re-delivers a consumed update.
type TelegramAdapter struct {
	token    string
	endpoint string
	client   *http.Client
	api      telegramAPI
	offset   int
	logger   *pkgLogger.Logger
}

// NewTelegramAdapter creates a Telegram adapter. An empty token is not an
// error: the adapter stays registered-but-idle and returns empty batches.
func NewTelegramAdapter(token string, logger *pkgLogger.Logger) *TelegramAdapter {
	return &TelegramAdapter{
		token:    token,
		endpoint: tgbotapi.APIEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger.WithPlatform("telegram"),
	}
}

func (a *TelegramAdapter) Platform() Platform { return PlatformTelegram }

// connect lazily builds the Bot API client. Construction performs a getMe
// call, so an unreachable API surfaces here and is treated as transient.
func (a *TelegramAdapter) connect() error {
	if a.api != nil {
		return nil
	}
	bot, err := tgbotapi.NewBotAPIWithClient(a.token, a.endpoint, a.client)
	if err != nil {
		return errors.Wrap(err, "create telegram bot")
	}
	a.api = bot
	return nil
}

// FetchMessages polls getUpdates once. Missing token and upstream failures
// yield an empty batch; the offset cursor advances over every consumed
// update so nothing is re-delivered.
func (a *TelegramAdapter) FetchMessages(ctx context.Context, sinceTimestampUTCMs int64, maxMessages int) ([]UnifiedMessage, error) {
	if a.token == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := a.connect(); err != nil {
		a.logger.Warn("Telegram unreachable, returning empty batch", "error", err)
		return nil, nil
	}

	limit := maxMessages
	if limit > 100 {
		limit = 100 // Bot API getUpdates cap
	}
	updates, err := a.api.GetUpdates(tgbotapi.UpdateConfig{
		Offset:  a.offset,
		Limit:   limit,
		Timeout: 10,
	})
	if err != nil {
		a.logger.Warn("getUpdates failed, returning empty batch", "error", err)
		return nil, nil
	}

	var out []UnifiedMessage
	for _, u := range updates {
		a.offset = u.UpdateID + 1

		msg := u.Message
		if msg == nil {
			msg = u.ChannelPost
		}
		if msg == nil {
			continue
		}

		ts := int64(msg.Date) * 1000
		if sinceTimestampUTCMs > 0 && ts <= sinceTimestampUTCMs {
			continue
		}

		um := normalizeTelegramMessage(msg, ts)
		out = append(out, um)
		a.logger.Info("Message received",
			"channel_id", um.ChannelID,
			"sender_handle", um.SenderHandle,
			"msg_id", um.ID,
			"text_preview", previewText(um.Text))

		if len(out) >= maxMessages {
			break
		}
	}
	return out, nil
}

func normalizeTelegramMessage(msg *tgbotapi.Message, ts int64) UnifiedMessage {
	var senderID, senderHandle string
	if msg.From != nil {
		senderID = strconv.FormatInt(msg.From.ID, 10)
		senderHandle = msg.From.UserName
		if senderHandle == "" {
			senderHandle = msg.From.FirstName
		}
	}

	// Attachments are recorded as Bot API file ids, not resolved URLs.
	var attachments []string
	if len(msg.Photo) > 0 {
		attachments = append(attachments, msg.Photo[len(msg.Photo)-1].FileID)
	}
	if msg.Document != nil {
		attachments = append(attachments, msg.Document.FileID)
	}
	if msg.Audio != nil {
		attachments = append(attachments, msg.Audio.FileID)
	}
	if msg.Voice != nil {
		attachments = append(attachments, msg.Voice.FileID)
	}
	if msg.Video != nil {
		attachments = append(attachments, msg.Video.FileID)
	}

	return UnifiedMessage{
		ID:             strconv.Itoa(msg.MessageID),
		Platform:       PlatformTelegram,
		ChannelID:      strconv.FormatInt(msg.Chat.ID, 10),
		SenderID:       senderID,
		SenderHandle:   senderHandle,
		Text:           msg.Text,
		AttachmentURLs: attachments,
		TimestampUTCMs: ts,
	}
}

// previewText truncates message text for log lines.
func previewText(text string) string {
	if len(text) > 80 {
		return text[:80] + "..."
	}
	return text
}
