package connectrpc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/fpt/claw-gateway/internal/gateway"
	"github.com/fpt/claw-gateway/internal/gen/messagingv1/messagingv1connect"
	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// StartServer starts the Connect-gRPC server and blocks until ctx is
// cancelled. With TLS disabled it serves HTTP/2 over cleartext (h2c) so
// plain gRPC clients can connect without certificates.
func StartServer(ctx context.Context, cfg *gateway.GatewayConfig, dispatcher *gateway.Dispatcher, logger *pkgLogger.Logger) error {
	server := NewGatewayServer(dispatcher, gateway.Version, logger)

	path, handler := messagingv1connect.NewMessagingGatewayServiceHandler(server)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}
	if cfg.TLS.Enabled {
		// TLS negotiates HTTP/2 via ALPN; no h2c wrapper needed.
		srv.Handler = mux
	}

	// Graceful shutdown on context cancellation
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Connect-gRPC server listening", "addr", cfg.Addr(), "tls", cfg.TLS.Enabled)
	fmt.Printf("claw gateway listening on %s\n", cfg.Addr())

	var err error
	if cfg.TLS.Enabled {
		err = srv.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	} else {
		err = srv.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
