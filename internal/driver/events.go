package driver

import (
	"sync"
	"time"

	"github.com/zeusync/marblecatch/internal/core/events/bus"
)

var _ bus.EventBusObserver = (*eventTally)(nil)

// eventTally counts bus deliveries per event type while the driver runs.
type eventTally struct {
	mu       sync.Mutex
	counts   map[string]uint64
	failures uint64
	slowest  time.Duration
}

func newEventTally() *eventTally {
	return &eventTally{counts: make(map[string]uint64)}
}

func (t *eventTally) OnPublish(eventType string, _ bus.Event) {
	t.mu.Lock()
	t.counts[eventType]++
	t.mu.Unlock()
}

func (t *eventTally) OnDelivered(_ string, _ int, err error, d time.Duration) {
	t.mu.Lock()
	if err != nil {
		t.failures++
	}
	t.slowest = max(t.slowest, d)
	t.mu.Unlock()
}

func (t *eventTally) snapshot() (map[string]uint64, uint64, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]uint64, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out, t.failures, t.slowest
}
