package gateway

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	pkgLogger "github.com/fpt/claw-gateway/pkg/logger"
)

// DefaultMaxMessages is the poll budget applied when the caller asks for
// zero or a negative number of messages.
const DefaultMaxMessages = 100

// Dispatcher holds the registered adapters and fans a poll out across them.
// Registration happens once at startup; after that the dispatcher is
// read-only and safe for concurrent polls.
type Dispatcher struct {
	adapters map[Platform]Adapter
	order    []Platform
	logger   *pkgLogger.Logger
}

func NewDispatcher(logger *pkgLogger.Logger) *Dispatcher {
	return &Dispatcher{
		adapters: make(map[Platform]Adapter),
		logger:   logger.WithComponent("dispatcher"),
	}
}

// Register adds an adapter. Registering a second adapter for the same
// platform replaces the first; registration order is what Adapters and Poll
// iterate in.
func (d *Dispatcher) Register(a Adapter) {
	p := a.Platform()
	if _, exists := d.adapters[p]; !exists {
		d.order = append(d.order, p)
	}
	d.adapters[p] = a
	d.logger.Info("Adapter registered", "platform", p.String())
}

// Adapters resolves a platform filter to concrete adapters, preserving
// registration order. An empty filter (or one containing only unspecified
// entries) selects every adapter; unknown or unregistered platforms are
// silently omitted; duplicates resolve once.
func (d *Dispatcher) Adapters(platforms []Platform) []Adapter {
	selectAll := true
	requested := make(map[Platform]bool)
	for _, p := range platforms {
		if p == PlatformUnspecified {
			continue
		}
		selectAll = false
		requested[p] = true
	}

	var out []Adapter
	for _, p := range d.order {
		if selectAll || requested[p] {
			out = append(out, d.adapters[p])
		}
	}
	return out
}

// Poll fans one fetch out across the selected adapters in parallel, each
// with an even share of the message budget, then merges the batches into a
// single timestamp-ordered result capped at maxMessages. Any adapter error
// fails the whole poll; the caller retries with the same watermark and no
// message is silently lost.
func (d *Dispatcher) Poll(ctx context.Context, sinceTimestampUTCMs int64, maxMessages int, platforms []Platform) ([]UnifiedMessage, error) {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	selected := d.Adapters(platforms)
	if len(selected) == 0 {
		return nil, nil
	}

	perAdapter := maxMessages / len(selected)
	if perAdapter < 1 {
		perAdapter = 1
	}

	batches := make([][]UnifiedMessage, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range selected {
		g.Go(func() error {
			batch, err := a.FetchMessages(gctx, sinceTimestampUTCMs, perAdapter)
			if err != nil {
				return errors.Wrapf(err, "fetch %s messages", a.Platform())
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []UnifiedMessage
	for _, batch := range batches {
		merged = append(merged, batch...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].TimestampUTCMs < merged[j].TimestampUTCMs
	})
	if len(merged) > maxMessages {
		merged = merged[:maxMessages]
	}
	return merged, nil
}
