package sensor

import (
	"context"
	"sync/atomic"
)

// ChannelSource forwards samples received on a channel. It suits platforms that
// already deliver sensor callbacks on their own goroutine.
type ChannelSource struct {
	in      <-chan Reading
	running atomic.Bool
}

func NewChannelSource(in <-chan Reading) *ChannelSource {
	return &ChannelSource{in: in}
}

// Run forwards samples until ctx is done or the channel is closed.
func (s *ChannelSource) Run(ctx context.Context, emit func(Reading)) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSourceRunning
	}
	defer s.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok := <-s.in:
			if !ok {
				return nil
			}
			emit(r)
		}
	}
}
