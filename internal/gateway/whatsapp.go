package gateway

import (
	"context"

	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// WhatsAppAdapter is a pass-through adapter: the Cloud API delivers inbound
// messages by webhook rather than polling, so a collaborator normalizes
// webhook payloads into a MessageQueue and the adapter only drains it.
// Credentials are still required so an unconfigured deployment stays silent
// instead of surfacing half-wired state.
type WhatsAppAdapter struct {
	accessToken   string
	phoneNumberID string
	queue         MessageQueue
	logger        *pkgLogger.Logger
}

func NewWhatsAppAdapter(accessToken, phoneNumberID string, queue MessageQueue, logger *pkgLogger.Logger) *WhatsAppAdapter {
	return &WhatsAppAdapter{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		queue:         queue,
		logger:        logger.WithPlatform("whatsapp"),
	}
}

func (a *WhatsAppAdapter) Platform() Platform { return PlatformWhatsApp }

// FetchMessages drains the webhook queue. Missing credentials or queue means
// an empty batch.
func (a *WhatsAppAdapter) FetchMessages(ctx context.Context, sinceTimestampUTCMs int64, maxMessages int) ([]UnifiedMessage, error) {
	if a.accessToken == "" || a.phoneNumberID == "" || a.queue == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := a.queue.Drain(sinceTimestampUTCMs, maxMessages)
	for _, um := range batch {
		a.logger.Info("Message received",
			"channel_id", um.ChannelID,
			"sender_handle", um.SenderHandle,
			"msg_id", um.ID,
			"text_preview", previewText(um.Text))
	}
	return batch, nil
}
