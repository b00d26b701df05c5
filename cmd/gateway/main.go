package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fpt/claw-gateway/internal/connectrpc"
	"github.com/fpt/claw-gateway/internal/gateway"
	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to gateway config YAML (optional)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Load config
	cfg := gateway.DefaultConfig()
	if *configPath != "" {
		loaded, err := gateway.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Initialize logger
	pkgLogger.SetGlobalLogLevel(pkgLogger.LogLevel(cfg.LogLevel))
	logger := pkgLogger.NewLogger(pkgLogger.LogLevel(cfg.LogLevel))

	// Handle shutdown signals
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Platform credentials come from the environment, never the config file
	creds, err := gateway.LoadCredentials(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credentials: %v\n", err)
		os.Exit(1)
	}

	dispatcher, _ := gateway.BuildDispatcher(creds, logger)

	fmt.Println("claw gateway starting...")
	fmt.Printf("  Listen: %s\n", cfg.Addr())
	if creds.TelegramConfigured() {
		fmt.Println("  Telegram: enabled")
	}
	if creds.DiscordConfigured() {
		fmt.Printf("  Discord: enabled (%d channels)\n", len(creds.DiscordChannelIDs))
	}
	if creds.WhatsAppConfigured() {
		fmt.Println("  WhatsApp: enabled")
	}
	fmt.Println()

	if err := connectrpc.StartServer(ctx, cfg, dispatcher, logger); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Gateway error: %v\n", err)
		os.Exit(1)
	}
}
