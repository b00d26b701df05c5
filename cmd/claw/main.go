// claw is a reference consumer for the messaging gateway: it polls for new
// messages, prints them, and can echo a reply back to the originating
// platform. Useful for smoke-testing a gateway deployment end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fpt/claw-gateway/internal/gateway"
	"github.com/fpt/claw-gateway/internal/replier"
	"github.com/fpt/claw-gateway/pkg/client"
	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

func main() {
	gatewayURL := flag.String("gateway", "http://localhost:50051", "Gateway base URL")
	platformsFlag := flag.String("platforms", "", "Comma-separated platform filter (telegram,discord,whatsapp)")
	interval := flag.Duration("interval", 5*time.Second, "Poll interval")
	echo := flag.Bool("echo", false, "Echo each message back to its platform")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := pkgLogger.NewLogger(pkgLogger.LogLevel(*logLevel))

	var platforms []gateway.Platform
	if *platformsFlag != "" {
		for _, name := range strings.Split(*platformsFlag, ",") {
			p, err := gateway.ParsePlatform(strings.TrimSpace(name))
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			platforms = append(platforms, p)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	gw := client.New(*gatewayURL, nil)

	ok, version, err := gw.Health(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gateway health check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("claw consumer connected (gateway v%s, ok=%v)\n", version, ok)

	var respond *replier.Replier
	if *echo {
		creds, err := gateway.LoadCredentials(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load credentials: %v\n", err)
			os.Exit(1)
		}
		respond = replier.New(creds, logger)
	}

	poller := client.NewPoller(gw, logger,
		client.WithPlatforms(platforms...),
		client.WithInterval(*interval))

	err = poller.Run(ctx, func(ctx context.Context, msg gateway.UnifiedMessage) error {
		fmt.Printf("[%s] %s (%s): %s\n",
			msg.Platform, msg.SenderHandle, msg.ChannelID, msg.Text)
		if respond != nil {
			if err := respond.Send(ctx, msg.Platform, msg.ChannelID, msg.ThreadID, "Echo: "+msg.Text); err != nil {
				logger.Warn("Echo reply failed", "error", err)
			}
		}
		return nil
	})
	if err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Consumer error: %v\n", err)
		os.Exit(1)
	}
}
