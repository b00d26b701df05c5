package gateway

import (
	"context"
	"time"
)

// Adapter is the capability every platform implements: fetch a bounded,
// time-filtered batch of new messages. Adding a platform means adding an
// Adapter implementation, not touching the dispatcher.
//
// FetchMessages must return at most maxMessages messages, exclude anything
// with a timestamp <= sinceTimestampUTCMs when the watermark is positive, and
// return an empty batch (not an error) when credentials are missing or the
// upstream API is unreachable. Only unexpected failures surface as errors.
//
// An adapter instance owns its pagination cursor; the dispatcher never calls
// the same adapter concurrently with itself, so cursors need no locking.
type Adapter interface {
	// Platform returns the platform this adapter serves. Platform.String()
	// is the adapter's name ("telegram", "discord", "whatsapp").
	Platform() Platform
	FetchMessages(ctx context.Context, sinceTimestampUTCMs int64, maxMessages int) ([]UnifiedMessage, error)
}

const (
	// streamBatchSize is how many messages one stream iteration fetches.
	streamBatchSize = 50
	// streamEmptyBackoff is how long the stream helper waits after a fetch
	// that returned nothing.
	streamEmptyBackoff = 5 * time.Second
)

// SleepFunc suspends for d or until ctx is cancelled. Injectable so tests can
// step polling loops without wall-clock sleeps.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// StreamOptions tune the adapter-level streaming helper. Zero values pick the
// defaults (batch 50, 5s empty-batch backoff, real sleep).
type StreamOptions struct {
	BatchSize int
	// PollInterval, when positive, paces the loop with a fixed wait after
	// every fetch. When zero, the loop runs back to back while the adapter
	// has a backlog and only backs off after an empty batch.
	PollInterval time.Duration
	// EmptyBackoff is the wait after an empty fetch when PollInterval is
	// unset.
	EmptyBackoff time.Duration
	Sleep        SleepFunc
}

// StreamMessages turns any Adapter into an unbounded message sequence: fetch
// a small batch since the watermark, yield each message, advance the
// watermark to the newest timestamp seen, repeat. A backlog drains without
// waiting; an empty fetch backs off before the next poll. The sequence is
// resumable: restarting with the last yielded timestamp continues where the
// previous stream stopped.
//
// Returns when ctx is cancelled (with ctx.Err()), when yield returns an
// error, or when a fetch fails unexpectedly.
func StreamMessages(ctx context.Context, a Adapter, sinceTimestampUTCMs int64, yield func(UnifiedMessage) error, opts StreamOptions) error {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = streamBatchSize
	}
	backoff := opts.EmptyBackoff
	if backoff <= 0 {
		backoff = streamEmptyBackoff
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	watermark := sinceTimestampUTCMs
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch, err := a.FetchMessages(ctx, watermark, batchSize)
		if err != nil {
			return err
		}
		for _, msg := range batch {
			if err := yield(msg); err != nil {
				return err
			}
			if msg.TimestampUTCMs > watermark {
				watermark = msg.TimestampUTCMs
			}
		}

		switch {
		case opts.PollInterval > 0:
			if err := sleep(ctx, opts.PollInterval); err != nil {
				return err
			}
		case len(batch) == 0:
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
		}
	}
}
