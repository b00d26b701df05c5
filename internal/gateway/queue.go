package gateway

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MessageQueue hands already-normalized messages to a pass-through adapter.
// A webhook receiver (or a test) enqueues; the adapter drains.
type MessageQueue interface {
	// Drain removes and returns up to max messages newer than the since
	// watermark. Messages at or below the watermark are discarded.
	Drain(sinceTimestampUTCMs int64, max int) []UnifiedMessage
}

// MemoryQueue is an in-process MessageQueue. Safe for concurrent use.
type MemoryQueue struct {
	mu       sync.Mutex
	messages []UnifiedMessage
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

// Enqueue validates and stores one message. A missing id is filled with a
// fresh UUID so webhook payloads without one still get a dedup key.
func (q *MemoryQueue) Enqueue(m UnifiedMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "enqueue")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, m)
	return nil
}

// EnqueueJSON decodes a JSON payload and enqueues it.
func (q *MemoryQueue) EnqueueJSON(data []byte) error {
	m, err := UnifiedMessageFromJSON(data)
	if err != nil {
		return err
	}
	return q.Enqueue(m)
}

// Len reports the number of queued messages.
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// Drain implements MessageQueue. Stale messages at or below the watermark are
// dropped, fresh ones are returned oldest-first up to max; anything over the
// budget stays queued for the next drain.
func (q *MemoryQueue) Drain(sinceTimestampUTCMs int64, max int) []UnifiedMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	var fresh []UnifiedMessage
	for _, m := range q.messages {
		if sinceTimestampUTCMs > 0 && m.TimestampUTCMs <= sinceTimestampUTCMs {
			continue
		}
		fresh = append(fresh, m)
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].TimestampUTCMs < fresh[j].TimestampUTCMs
	})

	if max > 0 && len(fresh) > max {
		q.messages = append([]UnifiedMessage{}, fresh[max:]...)
		return fresh[:max]
	}
	q.messages = nil
	return fresh
}
