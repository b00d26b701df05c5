package connectrpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/fpt/claw-gateway/internal/gateway"
	messagingv1 "github.com/fpt/claw-gateway/internal/gen/messagingv1"
	"github.com/fpt/claw-gateway/internal/gen/messagingv1/messagingv1connect"
	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

type stubAdapter struct {
	platform gateway.Platform
	mu       sync.Mutex
	batches  [][]gateway.UnifiedMessage
	err      error
}

func (s *stubAdapter) Platform() gateway.Platform { return s.platform }

func (s *stubAdapter) FetchMessages(ctx context.Context, since int64, max int) ([]gateway.UnifiedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if len(s.batches) == 0 {
		return nil, nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

func msg(platform gateway.Platform, id string, ts int64) gateway.UnifiedMessage {
	return gateway.UnifiedMessage{
		ID:             id,
		Platform:       platform,
		ChannelID:      "c1",
		Text:           "text-" + id,
		TimestampUTCMs: ts,
	}
}

// newTestGateway spins up the handler over httptest and returns a connected
// client.
func newTestGateway(t *testing.T, server *GatewayServer) messagingv1connect.MessagingGatewayServiceClient {
	t.Helper()
	path, handler := messagingv1connect.NewMessagingGatewayServiceHandler(server)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return messagingv1connect.NewMessagingGatewayServiceClient(srv.Client(), srv.URL)
}

func newServer(t *testing.T, adapters ...gateway.Adapter) *GatewayServer {
	t.Helper()
	logger := pkgLogger.NewDefaultLogger()
	d := gateway.NewDispatcher(logger)
	for _, a := range adapters {
		d.Register(a)
	}
	s := NewGatewayServer(d, gateway.Version, logger)
	s.streamInterval = time.Millisecond
	return s
}

func TestPollMessagesMergesAcrossPlatforms(t *testing.T) {
	client := newTestGateway(t, newServer(t,
		&stubAdapter{platform: gateway.PlatformTelegram, batches: [][]gateway.UnifiedMessage{{
			msg(gateway.PlatformTelegram, "t2", 2000),
		}}},
		&stubAdapter{platform: gateway.PlatformDiscord, batches: [][]gateway.UnifiedMessage{{
			msg(gateway.PlatformDiscord, "d1", 1000),
			msg(gateway.PlatformDiscord, "d3", 3000),
		}}},
	))

	resp, err := client.PollMessages(context.Background(), connect.NewRequest(&messagingv1.PollMessagesRequest{}))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	got := resp.Msg.Messages
	if len(got) != 3 {
		t.Fatalf("got %d messages, want 3", len(got))
	}
	wantOrder := []string{"d1", "t2", "d3"}
	for i, want := range wantOrder {
		if got[i].Id != want {
			t.Errorf("messages[%d].Id = %s, want %s", i, got[i].Id, want)
		}
	}
}

func TestPollMessagesSinceWatermark(t *testing.T) {
	client := newTestGateway(t, newServer(t,
		&stubAdapter{platform: gateway.PlatformTelegram, batches: [][]gateway.UnifiedMessage{{
			msg(gateway.PlatformTelegram, "t200", 200),
		}}},
		&stubAdapter{platform: gateway.PlatformDiscord},
	))

	resp, err := client.PollMessages(context.Background(), connect.NewRequest(&messagingv1.PollMessagesRequest{
		SinceTimestampUtcMs: 150,
	}))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(resp.Msg.Messages) != 1 || resp.Msg.Messages[0].Id != "t200" {
		t.Errorf("poll since 150 = %v, want only t200", resp.Msg.Messages)
	}
}

func TestPollMessagesBudgetKeepsOldest(t *testing.T) {
	client := newTestGateway(t, newServer(t,
		&stubAdapter{platform: gateway.PlatformTelegram, batches: [][]gateway.UnifiedMessage{{
			msg(gateway.PlatformTelegram, "t100", 100),
			msg(gateway.PlatformTelegram, "t200", 200),
		}}},
		&stubAdapter{platform: gateway.PlatformDiscord, batches: [][]gateway.UnifiedMessage{{
			msg(gateway.PlatformDiscord, "d150", 150),
		}}},
	))

	resp, err := client.PollMessages(context.Background(), connect.NewRequest(&messagingv1.PollMessagesRequest{
		MaxMessages: 2,
	}))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	got := resp.Msg.Messages
	if len(got) != 2 || got[0].Id != "t100" || got[1].Id != "d150" {
		t.Errorf("capped poll = %v, want the two oldest [t100 d150]", got)
	}
}

func TestPollMessagesPlatformFilter(t *testing.T) {
	client := newTestGateway(t, newServer(t,
		&stubAdapter{platform: gateway.PlatformTelegram, batches: [][]gateway.UnifiedMessage{{
			msg(gateway.PlatformTelegram, "t1", 1000),
		}}},
		&stubAdapter{platform: gateway.PlatformDiscord, batches: [][]gateway.UnifiedMessage{{
			msg(gateway.PlatformDiscord, "d1", 2000),
		}}},
	))

	resp, err := client.PollMessages(context.Background(), connect.NewRequest(&messagingv1.PollMessagesRequest{
		Platforms: []messagingv1.Platform{messagingv1.Platform_PLATFORM_DISCORD},
	}))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(resp.Msg.Messages) != 1 || resp.Msg.Messages[0].Platform != messagingv1.Platform_PLATFORM_DISCORD {
		t.Errorf("filtered poll = %v, want only discord", resp.Msg.Messages)
	}
}

func TestPollMessagesAdapterErrorIsInternal(t *testing.T) {
	client := newTestGateway(t, newServer(t,
		&stubAdapter{platform: gateway.PlatformTelegram, err: errors.New("boom")},
	))

	_, err := client.PollMessages(context.Background(), connect.NewRequest(&messagingv1.PollMessagesRequest{}))
	if err == nil {
		t.Fatal("expected poll to fail")
	}
	if connect.CodeOf(err) != connect.CodeInternal {
		t.Errorf("code = %v, want CodeInternal", connect.CodeOf(err))
	}
}

func TestPollMessagesEmptyGateway(t *testing.T) {
	client := newTestGateway(t, newServer(t))

	resp, err := client.PollMessages(context.Background(), connect.NewRequest(&messagingv1.PollMessagesRequest{}))
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(resp.Msg.Messages) != 0 {
		t.Errorf("empty gateway returned %d messages", len(resp.Msg.Messages))
	}
}

func TestHealth(t *testing.T) {
	client := newTestGateway(t, newServer(t))

	resp, err := client.Health(context.Background(), connect.NewRequest(&messagingv1.HealthRequest{}))
	if err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if !resp.Msg.Ok {
		t.Error("health ok = false")
	}
	if resp.Msg.Version != gateway.Version {
		t.Errorf("version = %q, want %q", resp.Msg.Version, gateway.Version)
	}
}

func TestStreamMessagesDeliversAndStopsOnCancel(t *testing.T) {
	client := newTestGateway(t, newServer(t,
		&stubAdapter{platform: gateway.PlatformTelegram, batches: [][]gateway.UnifiedMessage{
			{msg(gateway.PlatformTelegram, "t1", 1000)},
			{msg(gateway.PlatformTelegram, "t2", 2000)},
		}},
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.StreamMessages(ctx, connect.NewRequest(&messagingv1.StreamMessagesRequest{}))
	if err != nil {
		t.Fatalf("open stream failed: %v", err)
	}
	defer stream.Close()

	var got []string
	for stream.Receive() {
		got = append(got, stream.Msg().Id)
		if len(got) == 2 {
			cancel()
			break
		}
	}

	if len(got) != 2 || got[0] != "t1" || got[1] != "t2" {
		t.Errorf("streamed %v, want [t1 t2]", got)
	}
}

func TestStreamMessagesNoAdapterEndsSilently(t *testing.T) {
	client := newTestGateway(t, newServer(t))

	stream, err := client.StreamMessages(context.Background(), connect.NewRequest(&messagingv1.StreamMessagesRequest{}))
	if err != nil {
		t.Fatalf("open stream failed: %v", err)
	}
	defer stream.Close()

	// No matching adapter is not an error, just an empty stream.
	if stream.Receive() {
		t.Fatalf("unexpected message %v from empty stream", stream.Msg())
	}
	if err := stream.Err(); err != nil {
		t.Errorf("empty stream ended with %v, want clean close", err)
	}
}

func TestStreamMessagesUsesFirstMatchingAdapter(t *testing.T) {
	client := newTestGateway(t, newServer(t,
		&stubAdapter{platform: gateway.PlatformTelegram, batches: [][]gateway.UnifiedMessage{
			{msg(gateway.PlatformTelegram, "t1", 1000)},
		}},
		&stubAdapter{platform: gateway.PlatformDiscord, batches: [][]gateway.UnifiedMessage{
			{msg(gateway.PlatformDiscord, "d1", 1000)},
		}},
	))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.StreamMessages(ctx, connect.NewRequest(&messagingv1.StreamMessagesRequest{
		Platforms: []messagingv1.Platform{messagingv1.Platform_PLATFORM_DISCORD},
	}))
	if err != nil {
		t.Fatalf("open stream failed: %v", err)
	}
	defer stream.Close()

	if !stream.Receive() {
		t.Fatalf("no message received: %v", stream.Err())
	}
	if stream.Msg().Id != "d1" {
		t.Errorf("streamed %s, want the discord message", stream.Msg().Id)
	}
	cancel()
}
