package connectrpc

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"

	"github.com/fpt/claw-gateway/internal/gateway"
	messagingv1 "github.com/fpt/claw-gateway/internal/gen/messagingv1"
	"github.com/fpt/claw-gateway/internal/gen/messagingv1/messagingv1connect"
	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// GatewayServer implements messagingv1connect.MessagingGatewayServiceHandler
// on top of the adapter dispatcher. The server is stateless between calls:
// consumers own their poll watermarks.
type GatewayServer struct {
	messagingv1connect.UnimplementedMessagingGatewayServiceHandler

	dispatcher *gateway.Dispatcher
	version    string
	logger     *pkgLogger.Logger

	// Stream pacing, injectable for tests.
	streamInterval time.Duration
	sleep          gateway.SleepFunc
}

// NewGatewayServer creates a Connect MessagingGatewayService handler.
func NewGatewayServer(dispatcher *gateway.Dispatcher, version string, logger *pkgLogger.Logger) *GatewayServer {
	return &GatewayServer{
		dispatcher:     dispatcher,
		version:        version,
		logger:         logger.WithComponent("connect-server"),
		streamInterval: 2 * time.Second,
	}
}

func platformsFromProto(in []messagingv1.Platform) []gateway.Platform {
	out := make([]gateway.Platform, 0, len(in))
	for _, p := range in {
		out = append(out, gateway.PlatformFromProto(p))
	}
	return out
}

// PollMessages fans one fetch out across the requested adapters and returns
// the merged, timestamp-ordered batch. Any adapter failure maps to
// CodeInternal so the consumer retries with an unchanged watermark.
func (s *GatewayServer) PollMessages(ctx context.Context, req *connect.Request[messagingv1.PollMessagesRequest]) (*connect.Response[messagingv1.PollMessagesResponse], error) {
	msg := req.Msg

	batch, err := s.dispatcher.Poll(ctx,
		msg.SinceTimestampUtcMs,
		int(msg.MaxMessages),
		platformsFromProto(msg.Platforms))
	if err != nil {
		s.logger.Error("Poll failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &messagingv1.PollMessagesResponse{
		Messages: make([]*messagingv1.UnifiedMessage, 0, len(batch)),
	}
	for _, m := range batch {
		resp.Messages = append(resp.Messages, m.ToProto())
	}
	return connect.NewResponse(resp), nil
}

// StreamMessages pushes messages from the first adapter the platform filter
// resolves to, starting from the beginning of what that adapter can see. A
// stream over multiple platforms is not offered; consumers open one stream
// per platform or use PollMessages.
func (s *GatewayServer) StreamMessages(ctx context.Context, req *connect.Request[messagingv1.StreamMessagesRequest], stream *connect.ServerStream[messagingv1.UnifiedMessage]) error {
	adapters := s.dispatcher.Adapters(platformsFromProto(req.Msg.Platforms))
	if len(adapters) == 0 {
		// Unconfigured platforms are omitted, not an error: the stream just
		// has nothing to carry.
		s.logger.Info("Stream requested with no matching adapter")
		return nil
	}
	adapter := adapters[0]
	s.logger.Info("Stream opened", "platform", adapter.Platform().String())

	err := gateway.StreamMessages(ctx, adapter, 0, func(m gateway.UnifiedMessage) error {
		return stream.Send(m.ToProto())
	}, gateway.StreamOptions{
		PollInterval: s.streamInterval,
		Sleep:        s.sleep,
	})

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.logger.Info("Stream closed", "platform", adapter.Platform().String())
		return nil
	}
	if err != nil {
		s.logger.Error("Stream failed", "platform", adapter.Platform().String(), "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
	return nil
}

// Health reports liveness and the gateway version.
func (s *GatewayServer) Health(ctx context.Context, req *connect.Request[messagingv1.HealthRequest]) (*connect.Response[messagingv1.HealthResponse], error) {
	return connect.NewResponse(&messagingv1.HealthResponse{
		Ok:      true,
		Version: s.version,
	}), nil
}
