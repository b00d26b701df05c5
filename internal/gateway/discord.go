package gateway

import (
	"context"
	"sort"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// discordEpochMs is the Discord snowflake epoch (2015-01-01T00:00:00Z).
const discordEpochMs = 1420070400000

// maxDiscordChannels bounds how many configured channels one fetch visits.
const maxDiscordChannels = 20

// discordREST is the slice of discordgo the adapter needs. *discordgo.Session
// satisfies it; tests substitute a fake.
type discordREST interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) (st []*discordgo.Message, err error)
}

// DiscordAdapter fetches recent messages from a fixed set of channels over
// the Discord REST API. The since watermark translates to an `after`
// snowflake, so pagination rides on Discord's own cursor format.
type DiscordAdapter struct {
	token      string
	channelIDs []string
	rest       discordREST
	logger     *pkgLogger.Logger
}

// NewDiscordAdapter creates a Discord adapter polling the given channel ids.
// Missing token or channels leaves the adapter idle rather than failing.
func NewDiscordAdapter(token string, channelIDs []string, logger *pkgLogger.Logger) *DiscordAdapter {
	return &DiscordAdapter{
		token:      token,
		channelIDs: channelIDs,
		logger:     logger.WithPlatform("discord"),
	}
}

func (a *DiscordAdapter) Platform() Platform { return PlatformDiscord }

func (a *DiscordAdapter) connect() error {
	if a.rest != nil {
		return nil
	}
	session, err := discordgo.New("Bot " + a.token)
	if err != nil {
		return errors.Wrap(err, "create discord session")
	}
	a.rest = session
	return nil
}

// snowflakeToMs extracts the millisecond timestamp embedded in a snowflake id.
func snowflakeToMs(id string) (int64, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse snowflake %q", id)
	}
	return int64(n>>22) + discordEpochMs, nil
}

// msToSnowflake builds the smallest snowflake whose timestamp is ms. Used to
// turn the since watermark into an `after` cursor.
func msToSnowflake(ms int64) string {
	if ms <= discordEpochMs {
		return "0"
	}
	return strconv.FormatUint(uint64(ms-discordEpochMs)<<22, 10)
}

// FetchMessages visits each configured channel with an even share of the
// message budget, filters to plain user messages, and returns the combined
// batch sorted by timestamp. Per-channel REST failures are logged and
// skipped; the other channels still contribute.
func (a *DiscordAdapter) FetchMessages(ctx context.Context, sinceTimestampUTCMs int64, maxMessages int) ([]UnifiedMessage, error) {
	if a.token == "" || len(a.channelIDs) == 0 {
		return nil, nil
	}
	if err := a.connect(); err != nil {
		a.logger.Warn("Discord unreachable, returning empty batch", "error", err)
		return nil, nil
	}

	channels := a.channelIDs
	if len(channels) > maxDiscordChannels {
		channels = channels[:maxDiscordChannels]
	}
	perChannel := maxMessages / len(channels)
	if perChannel < 1 {
		perChannel = 1
	}

	afterID := ""
	if sinceTimestampUTCMs > 0 {
		afterID = msToSnowflake(sinceTimestampUTCMs)
	}

	var out []UnifiedMessage
	for _, channelID := range channels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		msgs, err := a.rest.ChannelMessages(channelID, perChannel, "", afterID, "")
		if err != nil {
			a.logger.Warn("Channel fetch failed, skipping",
				"channel_id", channelID, "error", err)
			continue
		}
		for _, msg := range msgs {
			um, ok := a.normalize(channelID, msg)
			if !ok {
				continue
			}
			// The after cursor is exclusive on the snowflake, not the
			// millisecond: a message minted in the watermark's own ms with
			// nonzero worker/sequence bits still comes back. Re-filter.
			if sinceTimestampUTCMs > 0 && um.TimestampUTCMs <= sinceTimestampUTCMs {
				continue
			}
			out = append(out, um)
			a.logger.Info("Message received",
				"channel_id", um.ChannelID,
				"sender_handle", um.SenderHandle,
				"msg_id", um.ID,
				"text_preview", previewText(um.Text))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimestampUTCMs < out[j].TimestampUTCMs
	})
	if len(out) > maxMessages {
		out = out[:maxMessages]
	}
	return out, nil
}

// normalize converts one REST message. Non-default message types (joins,
// pins, boosts) are dropped.
func (a *DiscordAdapter) normalize(channelID string, msg *discordgo.Message) (UnifiedMessage, bool) {
	if msg == nil || msg.Type != discordgo.MessageTypeDefault {
		return UnifiedMessage{}, false
	}

	ts, err := snowflakeToMs(msg.ID)
	if err != nil {
		a.logger.Warn("Skipping message with malformed id", "msg_id", msg.ID, "error", err)
		return UnifiedMessage{}, false
	}

	var senderID, senderHandle string
	if msg.Author != nil {
		senderID = msg.Author.ID
		senderHandle = msg.Author.Username
		if senderHandle == "" {
			senderHandle = msg.Author.GlobalName
		}
	}

	var attachments []string
	for _, att := range msg.Attachments {
		if att != nil && att.URL != "" {
			attachments = append(attachments, att.URL)
		}
	}

	return UnifiedMessage{
		ID:             msg.ID,
		Platform:       PlatformDiscord,
		ChannelID:      channelID,
		SenderID:       senderID,
		SenderHandle:   senderHandle,
		Text:           msg.Content,
		AttachmentURLs: attachments,
		TimestampUTCMs: ts,
	}, true
}
