package gateway

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
)

// stubAdapter is a scriptable Adapter shared by the dispatcher and stream
// tests.
type stubAdapter struct {
	platform Platform
	mu       sync.Mutex
	batches  [][]UnifiedMessage
	err      error
	calls    []stubCall
}

type stubCall struct {
	since int64
	max   int
}

func (s *stubAdapter) Platform() Platform { return s.platform }

func (s *stubAdapter) FetchMessages(ctx context.Context, since int64, max int) ([]UnifiedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, stubCall{since: since, max: max})
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

func stubMsg(platform Platform, id string, ts int64) UnifiedMessage {
	return UnifiedMessage{
		ID:             id,
		Platform:       platform,
		ChannelID:      "c-" + platform.String(),
		TimestampUTCMs: ts,
	}
}

func TestDispatcherAdaptersSelection(t *testing.T) {
	d := NewDispatcher(testLogger())
	tg := &stubAdapter{platform: PlatformTelegram}
	dc := &stubAdapter{platform: PlatformDiscord}
	d.Register(tg)
	d.Register(dc)

	// Empty filter selects everything in registration order.
	all := d.Adapters(nil)
	if len(all) != 2 || all[0].Platform() != PlatformTelegram || all[1].Platform() != PlatformDiscord {
		t.Errorf("empty filter resolved %d adapters in wrong order", len(all))
	}

	// Unspecified-only filter behaves like empty.
	if got := d.Adapters([]Platform{PlatformUnspecified}); len(got) != 2 {
		t.Errorf("unspecified-only filter resolved %d adapters, want 2", len(got))
	}

	// Duplicates resolve once; unregistered platforms are omitted.
	got := d.Adapters([]Platform{PlatformDiscord, PlatformDiscord, PlatformWhatsApp})
	if len(got) != 1 || got[0].Platform() != PlatformDiscord {
		t.Errorf("filter resolved %v, want just discord", got)
	}
}

func TestDispatcherPollMergesAndSorts(t *testing.T) {
	d := NewDispatcher(testLogger())
	d.Register(&stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{{
		stubMsg(PlatformTelegram, "t2", 2000),
		stubMsg(PlatformTelegram, "t4", 4000),
	}}})
	d.Register(&stubAdapter{platform: PlatformDiscord, batches: [][]UnifiedMessage{{
		stubMsg(PlatformDiscord, "d1", 1000),
		stubMsg(PlatformDiscord, "d3", 3000),
	}}})

	msgs, err := d.Poll(context.Background(), 0, 100, nil)
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	wantOrder := []string{"d1", "t2", "d3", "t4"}
	for i, want := range wantOrder {
		if msgs[i].ID != want {
			t.Errorf("msgs[%d] = %s, want %s", i, msgs[i].ID, want)
		}
	}
}

func TestDispatcherPollBudgetSplit(t *testing.T) {
	d := NewDispatcher(testLogger())
	tg := &stubAdapter{platform: PlatformTelegram}
	dc := &stubAdapter{platform: PlatformDiscord}
	wa := &stubAdapter{platform: PlatformWhatsApp}
	d.Register(tg)
	d.Register(dc)
	d.Register(wa)

	if _, err := d.Poll(context.Background(), 0, 90, nil); err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	for _, a := range []*stubAdapter{tg, dc, wa} {
		if len(a.calls) != 1 || a.calls[0].max != 30 {
			t.Errorf("%s budget = %+v, want one call with max 30", a.platform, a.calls)
		}
	}

	// Tiny budgets floor at one per adapter.
	if _, err := d.Poll(context.Background(), 0, 2, nil); err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	for _, a := range []*stubAdapter{tg, dc, wa} {
		if a.calls[1].max != 1 {
			t.Errorf("%s small budget = %d, want 1", a.platform, a.calls[1].max)
		}
	}
}

func TestDispatcherPollDefaultBudget(t *testing.T) {
	d := NewDispatcher(testLogger())
	tg := &stubAdapter{platform: PlatformTelegram}
	d.Register(tg)

	if _, err := d.Poll(context.Background(), 0, 0, nil); err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if tg.calls[0].max != DefaultMaxMessages {
		t.Errorf("default budget = %d, want %d", tg.calls[0].max, DefaultMaxMessages)
	}
}

func TestDispatcherPollResultCap(t *testing.T) {
	var big []UnifiedMessage
	for i := 0; i < 10; i++ {
		big = append(big, stubMsg(PlatformTelegram, "t"+strconv.Itoa(i), int64(1000+i)))
	}
	d := NewDispatcher(testLogger())
	d.Register(&stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{big}})

	msgs, err := d.Poll(context.Background(), 0, 5, nil)
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(msgs) != 5 {
		t.Errorf("got %d messages, want truncation to 5", len(msgs))
	}
}

func TestDispatcherPollPlatformFilter(t *testing.T) {
	d := NewDispatcher(testLogger())
	tg := &stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{{stubMsg(PlatformTelegram, "t1", 1000)}}}
	dc := &stubAdapter{platform: PlatformDiscord, batches: [][]UnifiedMessage{{stubMsg(PlatformDiscord, "d1", 2000)}}}
	d.Register(tg)
	d.Register(dc)

	msgs, err := d.Poll(context.Background(), 0, 100, []Platform{PlatformDiscord})
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Platform != PlatformDiscord {
		t.Errorf("filtered poll = %v, want only discord", msgs)
	}
	if len(tg.calls) != 0 {
		t.Errorf("telegram adapter was polled despite filter")
	}
}

func TestDispatcherPollAdapterErrorFailsWhole(t *testing.T) {
	d := NewDispatcher(testLogger())
	d.Register(&stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{{stubMsg(PlatformTelegram, "t1", 1000)}}})
	d.Register(&stubAdapter{platform: PlatformDiscord, err: errors.New("boom")})

	msgs, err := d.Poll(context.Background(), 0, 100, nil)
	if err == nil {
		t.Fatal("expected poll to fail when one adapter errors")
	}
	if msgs != nil {
		t.Errorf("failed poll returned messages: %v", msgs)
	}
}

func TestDispatcherPollNoAdapters(t *testing.T) {
	d := NewDispatcher(testLogger())
	msgs, err := d.Poll(context.Background(), 0, 100, nil)
	if err != nil || len(msgs) != 0 {
		t.Errorf("empty dispatcher: got %v, %v; want empty, nil", msgs, err)
	}
}

func TestDispatcherRegisterReplaces(t *testing.T) {
	d := NewDispatcher(testLogger())
	first := &stubAdapter{platform: PlatformTelegram}
	second := &stubAdapter{platform: PlatformTelegram}
	d.Register(first)
	d.Register(second)

	got := d.Adapters(nil)
	if len(got) != 1 {
		t.Fatalf("resolved %d adapters, want 1", len(got))
	}
	if got[0] != Adapter(second) {
		t.Error("re-registration did not replace the adapter")
	}
}
