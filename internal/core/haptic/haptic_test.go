package haptic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/marblecatch/internal/core/events/bus"
	"github.com/zeusync/marblecatch/internal/core/game"
)

func TestSubscribe(t *testing.T) {
	b := bus.New()
	var pulses []time.Duration
	sink := FuncSink(func(d time.Duration) { pulses = append(pulses, d) })

	subs, err := Subscribe(b, sink, DefaultPattern)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	require.NoError(t, b.Publish(bus.NewEvent(game.EventHit, "test", game.HitEvent{HitCount: 1})))
	require.NoError(t, b.Publish(bus.NewEvent(game.EventCaught, "test", game.CatchEvent{})))
	require.NoError(t, b.Publish(bus.NewEvent(game.EventReset, "test", game.ResetEvent{})))
	require.Equal(t, []time.Duration{50 * time.Millisecond, 150 * time.Millisecond}, pulses)

	require.NoError(t, Unsubscribe(b, subs))
	for _, s := range subs {
		require.False(t, s.IsActive())
	}
	require.NoError(t, b.Publish(bus.NewEvent(game.EventHit, "test", game.HitEvent{})))
	require.Len(t, pulses, 2)
}

func TestSubscribeSkipsDisabledPulses(t *testing.T) {
	subs, err := Subscribe(bus.New(), Nop{}, Pattern{Hit: 10 * time.Millisecond})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, game.EventHit, subs[0].EventType())
}

func TestTone(t *testing.T) {
	st, err := Tone(sampleRate, 880, 10*time.Millisecond, 0.5)
	require.NoError(t, err)

	buf := make([][2]float64, 1024)
	total := 0
	peak := 0.0
	for {
		n, ok := st.Stream(buf)
		for _, s := range buf[:n] {
			peak = max(peak, s[0])
		}
		total += n
		if !ok {
			break
		}
	}
	require.Equal(t, sampleRate.N(10*time.Millisecond), total)
	require.InDelta(t, 0.5, peak, 0.05)
}

func TestToneSinkDropsPulsesBeforeInit(t *testing.T) {
	s := NewToneSink(880, 1)
	s.Pulse(time.Second)
	s.Close()
	require.False(t, s.initialized)
}
