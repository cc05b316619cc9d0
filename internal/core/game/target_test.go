package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

func TestTargetAdvance(t *testing.T) {
	tun := defaultTargetTuning()
	noJitter := fixedRandom{f: 0.5}

	t.Run("no-op until bounds are known", func(t *testing.T) {
		tg := Target{Position: physics.V(10, 10), Velocity: physics.V(1, 1), Size: 75}
		require.Equal(t, tg, tg.Advance(0.016, physics.Bounds{}, emptyField(), false, noJitter, tun))
	})

	t.Run("uncaught identity cruises at 400 without jitter", func(t *testing.T) {
		tg := Target{Position: physics.V(540, 960), Velocity: physics.V(100, 50), Size: 75}
		next := tg.Advance(0.016, playfield, emptyField(), false, noJitter, tun)
		require.InDelta(t, 400, next.Velocity.Len(), 1e-9)
		require.InDelta(t, 0.5, next.Velocity.Y()/next.Velocity.X(), 1e-9)
		require.InDelta(t, 540+next.Velocity.X()*0.016, next.Position.X(), 1e-9)
		require.InDelta(t, 960+next.Velocity.Y()*0.016, next.Position.Y(), 1e-9)
	})

	t.Run("already caught identity cruises at 350", func(t *testing.T) {
		tg := Target{Position: physics.V(540, 960), Velocity: physics.V(0, -80), Size: 75}
		next := tg.Advance(0.016, playfield, emptyField(), true, noJitter, tun)
		require.InDelta(t, 350, next.Velocity.Len(), 1e-9)
	})

	t.Run("zero velocity falls back to the x axis", func(t *testing.T) {
		tg := Target{Position: physics.V(540, 960), Size: 75}
		next := tg.Advance(0.016, playfield, emptyField(), false, noJitter, tun)
		require.InDelta(t, 400, next.Velocity.X(), 1e-9)
		require.InDelta(t, 0, next.Velocity.Y(), 1e-9)
	})

	t.Run("edges turn the crossing component inward", func(t *testing.T) {
		tg := Target{Position: physics.V(40, 960), Velocity: physics.V(-400, 0), Size: 75}
		next := tg.Advance(0.016, playfield, emptyField(), false, noJitter, tun)
		require.InDelta(t, 400, next.Velocity.X(), 1e-9)
		require.Greater(t, next.Position.X(), 40.0)

		tg = Target{Position: physics.V(540, 1900), Velocity: physics.V(0, 300), Size: 75}
		next = tg.Advance(0.016, playfield, emptyField(), false, noJitter, tun)
		require.Less(t, next.Velocity.Y(), 0.0)
	})

	t.Run("obstacles reflect the heading", func(t *testing.T) {
		obstacle := physics.Circle{Center: physics.V(600, 960), Radius: 70}
		tg := Target{Position: physics.V(500, 960), Velocity: physics.V(400, 0), Size: 75}
		next := tg.Advance(0.016, playfield, NewField([]physics.Circle{obstacle}, nil), false, noJitter, tun)
		require.InDelta(t, -400, next.Velocity.X(), 1e-9)
		require.InDelta(t, 500-400*0.016, next.Position.X(), 1e-9)
	})
}

func TestTargetJitterIsBounded(t *testing.T) {
	tun := defaultTargetTuning()
	rng := seeded(3)

	for _, caught := range []bool{false, true} {
		limit := tun.JitterUncaught
		if caught {
			limit = tun.JitterCaught
		}
		tg := Target{Position: physics.V(540, 960), Velocity: physics.V(300, 0), Size: 75}
		for i := 0; i < 200; i++ {
			next := tg.Advance(0.001, playfield, emptyField(), caught, rng, tun)
			before := math.Atan2(tg.Velocity.Y(), tg.Velocity.X())
			after := math.Atan2(next.Velocity.Y(), next.Velocity.X())
			turn := math.Abs(math.Remainder(after-before, 2*math.Pi)) * 180 / math.Pi
			require.LessOrEqual(t, turn, limit+1e-9)
			tg = next
		}
	}
}

func TestTargetBehavior(t *testing.T) {
	tun := defaultTargetTuning()
	speed, jitter := tun.Behavior(false)
	require.Equal(t, 400.0, speed)
	require.Equal(t, 10.0, jitter)
	speed, jitter = tun.Behavior(true)
	require.Equal(t, 350.0, speed)
	require.Equal(t, 5.0, jitter)
}

func TestRespawn(t *testing.T) {
	cfg := config.Default().Target

	t.Run("stays in the central band", func(t *testing.T) {
		rng := seeded(5)
		tg := Target{Size: 75}
		for i := 0; i < 500; i++ {
			tg = respawn(tg, playfield, cfg, rng, physics.V(-1000, -1000), 0)
			require.GreaterOrEqual(t, tg.Position.X(), playfield.Width*0.2)
			require.LessOrEqual(t, tg.Position.X(), playfield.Width*0.8)
			require.GreaterOrEqual(t, tg.Position.Y(), playfield.Height*0.2)
			require.LessOrEqual(t, tg.Position.Y(), playfield.Height*0.8)
			for _, c := range []float64{tg.Velocity.X(), tg.Velocity.Y()} {
				require.GreaterOrEqual(t, math.Abs(c), 50.0)
				require.LessOrEqual(t, math.Abs(c), 150.0)
			}
			require.Equal(t, 75.0, tg.Size)
		}
	})

	t.Run("retries samples that land on the marble", func(t *testing.T) {
		rng := &sequenceRandom{
			floats: []float64{0.5, 0.5, 0, 0, 0.9, 0.9, 1, 1},
			ints:   []int{0, 1},
		}
		marble := physics.V(540, 960)
		tg := respawn(Target{Size: 75}, playfield, cfg, rng, marble, 75)
		require.GreaterOrEqual(t, physics.Distance2V(tg.Position, marble), 75.0)
		require.InDelta(t, 216+648*0.9, tg.Position.X(), 1e-9)
	})

	t.Run("no-op until bounds are known", func(t *testing.T) {
		tg := Target{Position: physics.V(1, 2), Size: 75}
		require.Equal(t, tg, respawn(tg, physics.Bounds{}, cfg, fixedRandom{f: 0.5}, physics.Zero, 0))
	})
}
