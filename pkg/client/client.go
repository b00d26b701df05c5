// Package client is the consumer side of the messaging gateway: a thin
// Connect client plus a polling loop that owns the since-watermark and
// survives transient gateway outages.
package client

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/fpt/claw-gateway/internal/gateway"
	messagingv1 "github.com/fpt/claw-gateway/internal/gen/messagingv1"
	"github.com/fpt/claw-gateway/internal/gen/messagingv1/messagingv1connect"
	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// Client wraps the generated Connect client with the in-process message
// types.
type Client struct {
	rpc messagingv1connect.MessagingGatewayServiceClient
}

// New creates a gateway client for the given base URL (e.g.
// "http://localhost:50051"). A nil httpClient falls back to
// http.DefaultClient.
func New(baseURL string, httpClient connect.HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		rpc: messagingv1connect.NewMessagingGatewayServiceClient(httpClient, baseURL),
	}
}

func platformsToProto(in []gateway.Platform) []messagingv1.Platform {
	out := make([]messagingv1.Platform, 0, len(in))
	for _, p := range in {
		out = append(out, p.ToProto())
	}
	return out
}

// Poll fetches one batch of messages newer than the watermark.
func (c *Client) Poll(ctx context.Context, sinceTimestampUTCMs int64, maxMessages int, platforms []gateway.Platform) ([]gateway.UnifiedMessage, error) {
	resp, err := c.rpc.PollMessages(ctx, connect.NewRequest(&messagingv1.PollMessagesRequest{
		SinceTimestampUtcMs: sinceTimestampUTCMs,
		MaxMessages:         int32(maxMessages),
		Platforms:           platformsToProto(platforms),
	}))
	if err != nil {
		return nil, err
	}
	out := make([]gateway.UnifiedMessage, 0, len(resp.Msg.Messages))
	for _, m := range resp.Msg.Messages {
		out = append(out, gateway.UnifiedMessageFromProto(m))
	}
	return out, nil
}

// Stream opens a server stream and invokes handler per message until ctx is
// cancelled or the stream fails.
func (c *Client) Stream(ctx context.Context, platforms []gateway.Platform, handler func(gateway.UnifiedMessage) error) error {
	stream, err := c.rpc.StreamMessages(ctx, connect.NewRequest(&messagingv1.StreamMessagesRequest{
		Platforms: platformsToProto(platforms),
	}))
	if err != nil {
		return err
	}
	defer stream.Close()

	for stream.Receive() {
		if err := handler(gateway.UnifiedMessageFromProto(stream.Msg())); err != nil {
			return err
		}
	}
	return stream.Err()
}

// Health reports whether the gateway is serving and which version it runs.
func (c *Client) Health(ctx context.Context) (bool, string, error) {
	resp, err := c.rpc.Health(ctx, connect.NewRequest(&messagingv1.HealthRequest{}))
	if err != nil {
		return false, "", err
	}
	return resp.Msg.Ok, resp.Msg.Version, nil
}

const (
	defaultPollInterval = 5 * time.Second
	defaultPollBudget   = 100
)

// MessageHandler processes one inbound message. Returning an error stops the
// poller.
type MessageHandler func(ctx context.Context, msg gateway.UnifiedMessage) error

// Poller runs the consumer loop: poll, dispatch, advance the watermark,
// sleep, repeat. The watermark only advances after a successful poll, so a
// failed round is re-fetched rather than lost.
type Poller struct {
	client    *Client
	platforms []gateway.Platform
	interval  time.Duration
	budget    int
	watermark int64
	sleep     gateway.SleepFunc
	logger    *pkgLogger.Logger
}

// PollerOption tunes a Poller.
type PollerOption func(*Poller)

// WithPlatforms restricts polling to the given platforms.
func WithPlatforms(platforms ...gateway.Platform) PollerOption {
	return func(p *Poller) { p.platforms = platforms }
}

// WithInterval overrides the wait between polls.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) { p.interval = d }
}

// WithBudget overrides the per-poll message budget.
func WithBudget(n int) PollerOption {
	return func(p *Poller) { p.budget = n }
}

// WithSince starts the watermark at a past timestamp instead of "now only".
func WithSince(timestampUTCMs int64) PollerOption {
	return func(p *Poller) { p.watermark = timestampUTCMs }
}

// WithSleep injects the sleep function. Used by tests.
func WithSleep(sleep gateway.SleepFunc) PollerOption {
	return func(p *Poller) { p.sleep = sleep }
}

// NewPoller creates a consumer poll loop over the given client.
func NewPoller(client *Client, logger *pkgLogger.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		client:   client,
		interval: defaultPollInterval,
		budget:   defaultPollBudget,
		sleep:    gateway.Sleep,
		logger:   logger.WithComponent("poller"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run blocks until ctx is cancelled or handler returns an error. Gateway
// errors are retried with the watermark unchanged; CodeUnavailable is logged
// quietly since it usually just means the gateway is restarting.
func (p *Poller) Run(ctx context.Context, handler MessageHandler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch, err := p.client.Poll(ctx, p.watermark, p.budget, p.platforms)
		switch {
		case err == nil:
			for _, msg := range batch {
				if err := handler(ctx, msg); err != nil {
					return err
				}
				if msg.TimestampUTCMs > p.watermark {
					p.watermark = msg.TimestampUTCMs
				}
			}
		case connect.CodeOf(err) == connect.CodeUnavailable:
			p.logger.Warn("Gateway unavailable, retrying", "error", err)
		default:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Error("Poll failed, retrying", "error", err)
		}

		if err := p.sleep(ctx, p.interval); err != nil {
			return err
		}
	}
}
