package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	messagingv1 "github.com/fpt/claw-gateway/internal/gen/messagingv1"
)

// Platform identifies the chat platform a message originated from. Values
// match the wire enum in messaging/v1/messaging.proto.
type Platform int32

const (
	PlatformUnspecified Platform = 0
	PlatformTelegram    Platform = 1
	PlatformDiscord     Platform = 2
	PlatformWhatsApp    Platform = 3
	PlatformEmail       Platform = 4
)

func (p Platform) String() string {
	switch p {
	case PlatformTelegram:
		return "telegram"
	case PlatformDiscord:
		return "discord"
	case PlatformWhatsApp:
		return "whatsapp"
	case PlatformEmail:
		return "email"
	}
	return "unspecified"
}

// ParsePlatform resolves a platform name as used in config and CLI flags.
func ParsePlatform(name string) (Platform, error) {
	switch name {
	case "telegram":
		return PlatformTelegram, nil
	case "discord":
		return PlatformDiscord, nil
	case "whatsapp":
		return PlatformWhatsApp, nil
	case "email":
		return PlatformEmail, nil
	}
	return PlatformUnspecified, fmt.Errorf("unknown platform %q", name)
}

// ToProto converts to the wire enum.
func (p Platform) ToProto() messagingv1.Platform {
	return messagingv1.Platform(p)
}

// PlatformFromProto converts the wire enum; unknown values map to unspecified.
func PlatformFromProto(p messagingv1.Platform) Platform {
	switch p {
	case messagingv1.Platform_PLATFORM_TELEGRAM,
		messagingv1.Platform_PLATFORM_DISCORD,
		messagingv1.Platform_PLATFORM_WHATSAPP,
		messagingv1.Platform_PLATFORM_EMAIL:
		return Platform(p)
	}
	return PlatformUnspecified
}

// UnifiedMessage is one inbound message normalized from any platform.
// Constructed fresh per fetch from the platform's raw payload and treated as
// immutable afterwards; the gateway keeps no store of past messages.
type UnifiedMessage struct {
	// ID is the platform-native message identifier. Unique within
	// platform+channel only; ID+Platform+ChannelID is the consumer dedup key.
	ID             string   `json:"id"`
	Platform       Platform `json:"platform"`
	ChannelID      string   `json:"channel_id"`
	ThreadID       string   `json:"thread_id,omitempty"`
	SenderID       string   `json:"sender_id"`
	SenderHandle   string   `json:"sender_handle,omitempty"`
	Text           string   `json:"text,omitempty"`
	AttachmentURLs []string `json:"attachment_urls,omitempty"`
	TimestampUTCMs int64    `json:"timestamp_utc_ms"`
	RawMetadata    []byte   `json:"raw_metadata,omitempty"`
}

// Validate checks the invariants every adapter must uphold before handing a
// message to the dispatcher.
func (m UnifiedMessage) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message id is empty")
	}
	if m.Platform == PlatformUnspecified {
		return fmt.Errorf("message %s has unspecified platform", m.ID)
	}
	if m.ChannelID == "" {
		return fmt.Errorf("message %s has empty channel_id", m.ID)
	}
	if m.TimestampUTCMs < 0 {
		return fmt.Errorf("message %s has negative timestamp %d", m.ID, m.TimestampUTCMs)
	}
	return nil
}

// ToProto converts to the wire representation.
func (m UnifiedMessage) ToProto() *messagingv1.UnifiedMessage {
	return &messagingv1.UnifiedMessage{
		Id:             m.ID,
		Platform:       m.Platform.ToProto(),
		ChannelId:      m.ChannelID,
		ThreadId:       m.ThreadID,
		SenderId:       m.SenderID,
		SenderHandle:   m.SenderHandle,
		Text:           m.Text,
		AttachmentUrls: m.AttachmentURLs,
		TimestampUtcMs: m.TimestampUTCMs,
		RawMetadata:    m.RawMetadata,
	}
}

// UnifiedMessageFromProto builds the in-process representation from the wire one.
func UnifiedMessageFromProto(m *messagingv1.UnifiedMessage) UnifiedMessage {
	return UnifiedMessage{
		ID:             m.GetId(),
		Platform:       PlatformFromProto(m.GetPlatform()),
		ChannelID:      m.GetChannelId(),
		ThreadID:       m.GetThreadId(),
		SenderID:       m.GetSenderId(),
		SenderHandle:   m.GetSenderHandle(),
		Text:           m.GetText(),
		AttachmentURLs: m.GetAttachmentUrls(),
		TimestampUTCMs: m.GetTimestampUtcMs(),
		RawMetadata:    m.GetRawMetadata(),
	}
}

// UnifiedMessageFromJSON decodes a message from JSON at a trust boundary
// (e.g. a webhook collaborator feeding the WhatsApp queue). The model is
// closed: unknown fields fail decoding, and the result must validate.
func UnifiedMessageFromJSON(data []byte) (UnifiedMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m UnifiedMessage
	if err := dec.Decode(&m); err != nil {
		return UnifiedMessage{}, fmt.Errorf("decode unified message: %w", err)
	}
	if err := m.Validate(); err != nil {
		return UnifiedMessage{}, err
	}
	return m, nil
}
