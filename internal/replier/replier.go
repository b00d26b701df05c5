// Package replier sends outbound text back to the platform a message came
// from. It is the inverse of the inbound adapters: one entry point keyed by
// platform and channel, platform quirks kept inside.
package replier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/fpt/claw-gateway/internal/gateway"
	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// Per-platform outbound text limits. Longer replies are truncated, not
// rejected, so a verbose responder still gets something delivered.
const (
	telegramMaxText = 4096
	discordMaxText  = 2000
	whatsappMaxText = 4096
)

const whatsappGraphBase = "https://graph.facebook.com/v18.0"

// telegramSender is the slice of the Bot API the replier needs.
type telegramSender interface {
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

// discordSender is the slice of discordgo the replier needs.
type discordSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Replier delivers replies to Telegram, Discord, and WhatsApp using the same
// credentials the inbound adapters poll with.
type Replier struct {
	creds      *gateway.Credentials
	httpClient *http.Client
	graphBase  string
	telegram   telegramSender
	discord    discordSender
	logger     *pkgLogger.Logger
}

func New(creds *gateway.Credentials, logger *pkgLogger.Logger) *Replier {
	return &Replier{
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		graphBase:  whatsappGraphBase,
		logger:     logger.WithComponent("replier"),
	}
}

// Send delivers text to the given platform channel. threadID is optional:
// Telegram treats it as a forum topic id, Discord as a message to reply to,
// WhatsApp ignores it.
func (r *Replier) Send(ctx context.Context, platform gateway.Platform, channelID, threadID, text string) error {
	if channelID == "" {
		return errors.New("channel id is empty")
	}
	switch platform {
	case gateway.PlatformTelegram:
		return r.sendTelegram(ctx, channelID, threadID, text)
	case gateway.PlatformDiscord:
		return r.sendDiscord(ctx, channelID, threadID, text)
	case gateway.PlatformWhatsApp:
		return r.sendWhatsApp(ctx, channelID, text)
	}
	return errors.Errorf("no reply route for platform %s", platform)
}

func truncate(text string, max int) string {
	if len(text) > max {
		return text[:max]
	}
	return text
}

func (r *Replier) sendTelegram(ctx context.Context, channelID, threadID, text string) error {
	if r.creds.TelegramBotToken == "" {
		return errors.New("telegram bot token not configured")
	}
	if r.telegram == nil {
		bot, err := tgbotapi.NewBotAPIWithClient(r.creds.TelegramBotToken, tgbotapi.APIEndpoint, r.httpClient)
		if err != nil {
			return errors.Wrap(err, "create telegram bot")
		}
		r.telegram = bot
	}

	params := tgbotapi.Params{}
	params.AddNonEmpty("chat_id", channelID)
	params.AddNonEmpty("text", truncate(text, telegramMaxText))
	params.AddNonEmpty("message_thread_id", threadID)

	if _, err := r.telegram.MakeRequest("sendMessage", params); err != nil {
		return errors.Wrap(err, "telegram sendMessage")
	}
	r.logger.Info("Reply sent", "platform", "telegram", "channel_id", channelID)
	return nil
}

func (r *Replier) sendDiscord(ctx context.Context, channelID, threadID, text string) error {
	if r.creds.DiscordBotToken == "" {
		return errors.New("discord bot token not configured")
	}
	if r.discord == nil {
		session, err := discordgo.New("Bot " + r.creds.DiscordBotToken)
		if err != nil {
			return errors.Wrap(err, "create discord session")
		}
		r.discord = session
	}

	send := &discordgo.MessageSend{Content: truncate(text, discordMaxText)}
	if threadID != "" {
		send.Reference = &discordgo.MessageReference{
			MessageID: threadID,
			ChannelID: channelID,
		}
	}

	if _, err := r.discord.ChannelMessageSendComplex(channelID, send); err != nil {
		return errors.Wrap(err, "discord send message")
	}
	r.logger.Info("Reply sent", "platform", "discord", "channel_id", channelID)
	return nil
}

type whatsappTextBody struct {
	Body string `json:"body"`
}

type whatsappSendRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             whatsappTextBody `json:"text"`
}

func (r *Replier) sendWhatsApp(ctx context.Context, channelID, text string) error {
	if !r.creds.WhatsAppConfigured() {
		return errors.New("whatsapp credentials not configured")
	}

	payload := whatsappSendRequest{
		MessagingProduct: "whatsapp",
		To:               channelID,
		Type:             "text",
		Text:             whatsappTextBody{Body: truncate(text, whatsappMaxText)},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode whatsapp payload")
	}

	url := fmt.Sprintf("%s/%s/messages", r.graphBase, r.creds.WhatsAppPhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build whatsapp request")
	}
	req.Header.Set("Authorization", "Bearer "+r.creds.WhatsAppAccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "whatsapp send")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("whatsapp send failed: status %d: %s", resp.StatusCode, detail)
	}
	r.logger.Info("Reply sent", "platform", "whatsapp", "channel_id", channelID)
	return nil
}

// SetGraphBaseURL points WhatsApp sends at an alternate Graph API host.
// Used by tests.
func (r *Replier) SetGraphBaseURL(base string) *Replier {
	r.graphBase = base
	return r
}
