package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

func TestMarbleAdvance(t *testing.T) {
	tun := defaultMarbleTuning()

	t.Run("no-op until bounds are known", func(t *testing.T) {
		m := Marble{Position: physics.V(100, 100), Velocity: physics.V(5, 5), Angle: 12}
		require.Equal(t, m, m.Advance(0.1, physics.V(3, 3), physics.Bounds{}, emptyField(), tun))
	})

	t.Run("horizontal gravity is mirrored, vertical is not", func(t *testing.T) {
		m := Marble{Position: physics.V(500, 500)}
		right := m.Advance(0.016, physics.V(1, 0), playfield, emptyField(), tun)
		require.Less(t, right.Velocity.X(), 0.0)
		require.Zero(t, right.Velocity.Y())

		down := m.Advance(0.016, physics.V(0, 1), playfield, emptyField(), tun)
		require.Greater(t, down.Velocity.Y(), 0.0)
		require.Zero(t, down.Velocity.X())
	})

	t.Run("integrates damped velocity then position", func(t *testing.T) {
		m := Marble{Position: physics.V(500, 500)}
		next := m.Advance(0.1, physics.V(0, 1), playfield, emptyField(), tun)
		wantV := 666 * 0.1 * 0.99
		require.InDelta(t, wantV, next.Velocity.Y(), eps)
		require.InDelta(t, 500+wantV*0.1, next.Position.Y(), eps)
	})

	t.Run("edges clamp position and reflect one axis", func(t *testing.T) {
		m := Marble{Position: physics.V(30, 500), Velocity: physics.V(-1000, 10)}
		next := m.Advance(0.1, physics.Zero, playfield, emptyField(), tun)
		require.InDelta(t, 25, next.Position.X(), eps)
		require.InDelta(t, 990*0.75, next.Velocity.X(), eps)
		require.InDelta(t, 10*0.99, next.Velocity.Y(), eps)

		m = Marble{Position: physics.V(500, 1900), Velocity: physics.V(0, 1000)}
		next = m.Advance(0.1, physics.Zero, playfield, emptyField(), tun)
		require.InDelta(t, 1920-25, next.Position.Y(), eps)
		require.InDelta(t, -990*0.75, next.Velocity.Y(), eps)
	})

	t.Run("water damps once even across overlapping zones", func(t *testing.T) {
		m := Marble{Position: physics.V(175, 1575), Velocity: physics.V(100, 0)}
		field := NewField(nil, defaultField().Water())
		next := m.Advance(0.001, physics.Zero, playfield, field, tun)
		require.InDelta(t, 100*0.99*0.75, next.Velocity.X(), eps)
	})

	t.Run("resting against an obstacle does not move", func(t *testing.T) {
		obstacle := physics.Circle{Center: physics.V(740, 305), Radius: 75}
		m := Marble{Position: physics.V(740+75+25, 305)}
		next := m.Advance(0.016, physics.Zero, playfield, NewField([]physics.Circle{obstacle}, nil), tun)
		require.Equal(t, m.Position, next.Position)
		require.Equal(t, physics.Zero, next.Velocity)
		require.Zero(t, next.Angle)
	})

	t.Run("penetration is pushed out and velocity reflected", func(t *testing.T) {
		obstacle := physics.Circle{Center: physics.V(500, 500), Radius: 70}
		m := Marble{Position: physics.V(600, 500), Velocity: physics.V(-500, 0)}
		next := m.Advance(0.016, physics.Zero, playfield, NewField([]physics.Circle{obstacle}, nil), tun)
		require.GreaterOrEqual(t, next.Position.Sub(obstacle.Center).Len()+eps, 95.0)
		require.Greater(t, next.Velocity.X(), 0.0)
		require.InDelta(t, 500*0.99*0.75, next.Velocity.X(), eps)
	})
}

// The edge bound holds only on an empty field: obstacle push-out runs after the
// edge clamp and may carry the marble past it (see TestMarblePushOutAfterClamp).
func TestMarbleStaysInsideBounds(t *testing.T) {
	tun := defaultMarbleTuning()
	rng := seeded(7)
	m := Marble{Position: physics.V(540, 960)}
	for i := 0; i < 5000; i++ {
		g := physics.V(rng.Float64()*20-10, rng.Float64()*20-10)
		m = m.Advance(0.016, g, playfield, emptyField(), tun)
		require.GreaterOrEqual(t, m.Position.X(), tun.Radius)
		require.LessOrEqual(t, m.Position.X(), playfield.Width-tun.Radius)
		require.GreaterOrEqual(t, m.Position.Y(), tun.Radius)
		require.LessOrEqual(t, m.Position.Y(), playfield.Height-tun.Radius)
	}
}

func TestMarblePushOutAfterClamp(t *testing.T) {
	tun := defaultMarbleTuning()
	corner := physics.Circle{Center: physics.V(1050, 0), Radius: 200}

	m := Marble{Position: physics.V(1055, 220)}.Advance(0.016, physics.Vec2{}, playfield, defaultField(), tun)

	require.Greater(t, m.Position.X(), playfield.Width-tun.Radius)
	require.InDelta(t, 1055.112, m.Position.X(), 1e-3)
	require.InDelta(t, 224.94, m.Position.Y(), 1e-2)
	require.InDelta(t, corner.Radius+tun.Radius, m.Position.Sub(corner.Center).Len(), 1e-9)
}

func TestMarbleSingleObstacleNeverPenetrates(t *testing.T) {
	tun := defaultMarbleTuning()
	obstacle := physics.Circle{Center: physics.V(540, 960), Radius: 120}
	field := NewField([]physics.Circle{obstacle}, nil)
	rng := seeded(11)
	m := Marble{Position: physics.V(100, 100)}
	for i := 0; i < 5000; i++ {
		g := physics.V(rng.Float64()*20-10, rng.Float64()*20-10)
		m = m.Advance(0.016, g, playfield, field, tun)
		require.GreaterOrEqual(t, m.Position.Sub(obstacle.Center).Len()+1e-6, obstacle.Radius+tun.Radius)
	}
}

func TestMarbleRollingAngle(t *testing.T) {
	tun := defaultMarbleTuning()
	dt := 0.1

	right := Marble{Position: physics.V(500, 500), Velocity: physics.V(100, 20)}.
		Advance(dt, physics.Zero, playfield, emptyField(), tun)
	displacement := physics.V(100, 20).Mul(0.99 * dt).Len()
	want := displacement / 25 * (180 / math.Pi) * 0.3
	require.InDelta(t, want, right.Angle, 1e-9)

	left := Marble{Position: physics.V(500, 500), Velocity: physics.V(-100, 20), Angle: 10}.
		Advance(dt, physics.Zero, playfield, emptyField(), tun)
	require.InDelta(t, 10-want, left.Angle, 1e-9)

	up := Marble{Position: physics.V(500, 500), Velocity: physics.V(20, -100)}.
		Advance(dt, physics.Zero, playfield, emptyField(), tun)
	require.Less(t, up.Angle, 0.0)
}

func TestMarbleDisplayAngle(t *testing.T) {
	require.InDelta(t, 330, Marble{Angle: -30}.DisplayAngle(), eps)
	require.InDelta(t, 5, Marble{Angle: 725}.DisplayAngle(), eps)
	require.InDelta(t, 0, Marble{Angle: 360}.DisplayAngle(), eps)
}
