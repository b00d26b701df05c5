package gateway

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStreamMessagesYieldsAndAdvancesWatermark(t *testing.T) {
	a := &stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{
		{stubMsg(PlatformTelegram, "t1", 1000), stubMsg(PlatformTelegram, "t2", 2000)},
		{stubMsg(PlatformTelegram, "t3", 3000)},
	}}

	var got []string
	// With no poll interval the loop drains back to back and sleeps only
	// once the adapter runs dry.
	sleep := func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}

	err := StreamMessages(context.Background(), a, 0, func(m UnifiedMessage) error {
		got = append(got, m.ID)
		return nil
	}, StreamOptions{Sleep: sleep})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("stream ended with %v, want context.Canceled", err)
	}
	want := []string{"t1", "t2", "t3"}
	if len(got) != len(want) {
		t.Fatalf("yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("yielded[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	// Second fetch resumed from the first batch's newest timestamp.
	if a.calls[1].since != 2000 {
		t.Errorf("second fetch since = %d, want 2000", a.calls[1].since)
	}
	// Three fetches happened before the first (cancelling) sleep, so the
	// backlog drained without waiting.
	if len(a.calls) != 3 {
		t.Errorf("fetched %d times, want 3 back-to-back", len(a.calls))
	}
}

func TestStreamMessagesBacksOffOnlyWhenEmpty(t *testing.T) {
	a := &stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{
		{stubMsg(PlatformTelegram, "t1", 1000)},
	}}

	var slept []time.Duration
	sleep := func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		if len(slept) == 2 {
			return context.Canceled
		}
		return nil
	}

	_ = StreamMessages(context.Background(), a, 0, func(UnifiedMessage) error {
		return nil
	}, StreamOptions{Sleep: sleep})

	// Sleeps happened after the two empty fetches, never after the full
	// one, and used the 5s default.
	if len(slept) != 2 {
		t.Fatalf("slept %d times, want 2", len(slept))
	}
	for _, d := range slept {
		if d != streamEmptyBackoff {
			t.Errorf("backoff = %v, want %v", d, streamEmptyBackoff)
		}
	}
	if len(a.calls) != 3 {
		t.Errorf("fetched %d times, want 3", len(a.calls))
	}
}

func TestStreamMessagesPollIntervalPacesEveryFetch(t *testing.T) {
	a := &stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{
		{stubMsg(PlatformTelegram, "t1", 1000)},
	}}

	var slept []time.Duration
	sleep := func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		if len(slept) == 2 {
			return context.Canceled
		}
		return nil
	}

	_ = StreamMessages(context.Background(), a, 0, func(UnifiedMessage) error {
		return nil
	}, StreamOptions{PollInterval: 2 * time.Second, Sleep: sleep})

	// One sleep per fetch, full batch or not.
	if len(slept) != 2 || len(a.calls) != 2 {
		t.Fatalf("slept %d times over %d fetches, want 2 and 2", len(slept), len(a.calls))
	}
	for _, d := range slept {
		if d != 2*time.Second {
			t.Errorf("interval = %v, want 2s", d)
		}
	}
}

func TestStreamMessagesDefaultBatchSize(t *testing.T) {
	a := &stubAdapter{platform: PlatformTelegram}
	sleep := func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}

	_ = StreamMessages(context.Background(), a, 0, func(UnifiedMessage) error {
		return nil
	}, StreamOptions{Sleep: sleep})

	if len(a.calls) != 1 || a.calls[0].max != 50 {
		t.Errorf("fetch calls = %+v, want one call with batch 50", a.calls)
	}
}

func TestStreamMessagesStopsOnYieldError(t *testing.T) {
	a := &stubAdapter{platform: PlatformTelegram, batches: [][]UnifiedMessage{
		{stubMsg(PlatformTelegram, "t1", 1000)},
	}}
	sentinel := errors.New("consumer gone")

	err := StreamMessages(context.Background(), a, 0, func(UnifiedMessage) error {
		return sentinel
	}, StreamOptions{Sleep: func(ctx context.Context, d time.Duration) error { return nil }})

	if !errors.Is(err, sentinel) {
		t.Errorf("stream ended with %v, want yield error", err)
	}
}

func TestStreamMessagesStopsOnFetchError(t *testing.T) {
	a := &stubAdapter{platform: PlatformTelegram, err: errors.New("boom")}

	err := StreamMessages(context.Background(), a, 0, func(UnifiedMessage) error {
		t.Fatal("yield should not be called")
		return nil
	}, StreamOptions{Sleep: func(ctx context.Context, d time.Duration) error { return nil }})

	if err == nil {
		t.Fatal("expected fetch error to end the stream")
	}
}

func TestStreamMessagesStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &stubAdapter{platform: PlatformTelegram}
	err := StreamMessages(ctx, a, 0, func(UnifiedMessage) error { return nil }, StreamOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("stream ended with %v, want context.Canceled", err)
	}
	if len(a.calls) != 0 {
		t.Errorf("adapter fetched %d times after cancellation, want 0", len(a.calls))
	}
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep returned %v, want context.Canceled", err)
	}
}
