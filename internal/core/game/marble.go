package game

import (
	"math"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// Marble is the tilt-driven ball.
// Angle accumulates rolling rotation in degrees and is never wrapped.
type Marble struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Angle    float64
}

// DisplayAngle is Angle wrapped into [0, 360).
func (m Marble) DisplayAngle() float64 {
	a := math.Mod(m.Angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// MarbleTuning holds the constants used by Marble.Advance.
type MarbleTuning struct {
	Radius             float64
	GravityScale       float64
	Damping            float64
	Restitution        float64
	WaterDamping       float64
	RotationMultiplier float64
}

func marbleTuning(c *config.Config) MarbleTuning {
	return MarbleTuning{
		Radius:             c.Marble.Radius,
		GravityScale:       c.Physics.GravityScale,
		Damping:            c.Physics.Damping,
		Restitution:        c.Physics.Restitution,
		WaterDamping:       c.Physics.WaterDamping,
		RotationMultiplier: c.Physics.RotationMultiplier,
	}
}

// Acceleration converts a raw gravity reading into playfield acceleration.
// The horizontal axis is mirrored so tilting the device right rolls the marble right.
func (t MarbleTuning) Acceleration(gravity physics.Vec2) physics.Vec2 {
	return physics.V(-gravity.X()*t.GravityScale, gravity.Y()*t.GravityScale)
}

// Advance integrates one step of dt seconds. Unknown bounds leave the marble untouched.
func (m Marble) Advance(dt float64, gravity physics.Vec2, bounds physics.Bounds, field *Field, t MarbleTuning) Marble {
	if bounds.IsZero() {
		return m
	}

	vel := m.Velocity.Add(t.Acceleration(gravity).Mul(dt)).Mul(t.Damping)
	pos := m.Position.Add(vel.Mul(dt))

	pos, vel = clampToBounds(pos, vel, bounds, t.Radius, t.Restitution)

	if field.InWater(pos) {
		vel = vel.Mul(t.WaterDamping)
	}

	pos, vel = field.Collide(pos, vel, t.Radius, t.Restitution)

	return Marble{
		Position: pos,
		Velocity: vel,
		Angle:    m.Angle + rollDelta(m.Position, pos, vel, t),
	}
}

// clampToBounds keeps a circle inside the playfield, reflecting only the velocity
// component of the axis that crossed an edge.
func clampToBounds(pos, vel physics.Vec2, b physics.Bounds, radius, restitution float64) (physics.Vec2, physics.Vec2) {
	x, y := pos.X(), pos.Y()
	vx, vy := vel.X(), vel.Y()

	if x-radius < 0 {
		x, vx = radius, -vx*restitution
	} else if x+radius > b.Width {
		x, vx = b.Width-radius, -vx*restitution
	}
	if y-radius < 0 {
		y, vy = radius, -vy*restitution
	} else if y+radius > b.Height {
		y, vy = b.Height-radius, -vy*restitution
	}

	return physics.V(x, y), physics.V(vx, vy)
}

// rollDelta turns the distance travelled into a rolling angle in degrees. The sign
// follows whichever velocity axis dominates.
func rollDelta(from, to, vel physics.Vec2, t MarbleTuning) float64 {
	displacement := to.Sub(from).Len()
	base := displacement / t.Radius * (180 / math.Pi)

	sign := physics.Sign(vel.Y())
	if math.Abs(vel.X()) > math.Abs(vel.Y()) {
		sign = physics.Sign(vel.X())
	}
	return base * t.RotationMultiplier * sign
}
