package haptic

import (
	"errors"
	"fmt"
	"time"

	"github.com/zeusync/marblecatch/internal/core/events/bus"
	"github.com/zeusync/marblecatch/internal/core/game"
)

// Sink plays a short feedback pulse. Implementations must not block the caller
// for longer than it takes to queue the pulse.
type Sink interface {
	Pulse(d time.Duration)
}

// FuncSink adapts a plain function to Sink.
type FuncSink func(d time.Duration)

func (f FuncSink) Pulse(d time.Duration) { f(d) }

// Nop discards every pulse.
type Nop struct{}

func (Nop) Pulse(time.Duration) {}

// Pattern holds the pulse lengths for each kind of feedback.
type Pattern struct {
	Hit   time.Duration
	Catch time.Duration
}

// DefaultPattern is a short tick on hits and a longer buzz on catches.
var DefaultPattern = Pattern{
	Hit:   50 * time.Millisecond,
	Catch: 150 * time.Millisecond,
}

// Subscribe wires sink to the engine's hit and catch events. Pass the returned
// subscriptions to Unsubscribe to detach it.
func Subscribe(events bus.EventBus, sink Sink, p Pattern) ([]bus.Subscription, error) {
	bindings := []struct {
		eventType string
		d         time.Duration
	}{
		{game.EventHit, p.Hit},
		{game.EventCaught, p.Catch},
	}

	subs := make([]bus.Subscription, 0, len(bindings))
	for _, b := range bindings {
		if b.d <= 0 {
			continue
		}
		d := b.d
		sub, err := events.Subscribe(b.eventType, func(bus.Event) error {
			sink.Pulse(d)
			return nil
		})
		if err != nil {
			_ = Unsubscribe(events, subs)
			return nil, fmt.Errorf("subscribe %s: %w", b.eventType, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Unsubscribe removes every subscription from events.
func Unsubscribe(events bus.EventBus, subs []bus.Subscription) error {
	var errs []error
	for _, s := range subs {
		if err := events.Unsubscribe(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
