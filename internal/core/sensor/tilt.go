package sensor

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
)

// TiltSource simulates a device tilted by hand, for frontends without an
// accelerometer. Each nudge moves the planar reading by a fixed step, clamped to
// a maximum magnitude per axis. Z carries the remainder of standard gravity.
type TiltSource struct {
	step float64
	max  float64

	mu      sync.Mutex
	current Reading
	notify  chan struct{}
	running atomic.Bool
}

func NewTiltSource(step, maxTilt float64) *TiltSource {
	return &TiltSource{
		step:    step,
		max:     maxTilt,
		current: Reading{Z: StandardGravity},
		notify:  make(chan struct{}, 1),
	}
}

// Nudge moves the reading by dx and dy steps.
func (s *TiltSource) Nudge(dx, dy int) {
	s.mu.Lock()
	x := clamp(s.current.X+float64(dx)*s.step, s.max)
	y := clamp(s.current.Y+float64(dy)*s.step, s.max)
	s.current = withZ(x, y)
	s.mu.Unlock()
	s.signal()
}

// Level puts the device flat again.
func (s *TiltSource) Level() {
	s.mu.Lock()
	s.current = Reading{Z: StandardGravity}
	s.mu.Unlock()
	s.signal()
}

// Current returns the reading the next emit will carry.
func (s *TiltSource) Current() Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Run emits the current reading once, then again after every change.
func (s *TiltSource) Run(ctx context.Context, emit func(Reading)) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSourceRunning
	}
	defer s.running.Store(false)

	emit(s.Current())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.notify:
			emit(s.Current())
		}
	}
}

func (s *TiltSource) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}

func withZ(x, y float64) Reading {
	rest := StandardGravity*StandardGravity - x*x - y*y
	return Reading{X: x, Y: y, Z: math.Sqrt(math.Max(0, rest))}
}
