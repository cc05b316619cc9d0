package game

import (
	"math"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// Target is the autonomous body the marble has to hit.
type Target struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Size     float64
}

// Radius is the rendered and physical radius.
func (t Target) Radius() float64 { return t.Size / 2 }

// TargetTuning holds the behavior constants used by Target.Advance.
type TargetTuning struct {
	Restitution    float64
	SpeedUncaught  float64
	SpeedCaught    float64
	JitterUncaught float64
	JitterCaught   float64
}

func targetTuning(c *config.Config) TargetTuning {
	return TargetTuning{
		Restitution:    c.Physics.Restitution,
		SpeedUncaught:  c.Target.SpeedUncaught,
		SpeedCaught:    c.Target.SpeedCaught,
		JitterUncaught: c.Target.JitterUncaught,
		JitterCaught:   c.Target.JitterCaught,
	}
}

// Behavior returns the cruise speed and jitter half range for a target whose
// identity was, or was not, already caught in this cycle.
// Identities that were never caught move faster and more erratically.
func (t TargetTuning) Behavior(caughtBefore bool) (speed, jitter float64) {
	if caughtBefore {
		return t.SpeedCaught, t.JitterCaught
	}
	return t.SpeedUncaught, t.JitterUncaught
}

// Advance moves the target by one step of dt seconds. Unknown bounds leave it untouched.
//
// Edges flip the sign of the crossing velocity component without changing its
// magnitude. Obstacles reflect the velocity, then the heading is jittered and the
// speed renormalized. The final position is integrated from the start of the step
// with the new velocity.
func (t Target) Advance(dt float64, bounds physics.Bounds, field *Field, caughtBefore bool, rng Random, tun TargetTuning) Target {
	if bounds.IsZero() {
		return t
	}

	r := t.Radius()
	vel := steerInside(t.Position.Add(t.Velocity.Mul(dt)), t.Velocity, bounds, r)
	pos := t.Position.Add(vel.Mul(dt))

	_, vel = field.Collide(pos, vel, r, tun.Restitution)

	speed, jitter := tun.Behavior(caughtBefore)
	deg := (rng.Float64() - 0.5) * 2 * jitter
	vel = physics.WithLength(physics.Rotate(vel, deg), speed)

	return Target{
		Position: t.Position.Add(vel.Mul(dt)),
		Velocity: vel,
		Size:     t.Size,
	}
}

// steerInside points each velocity component away from the edge the predicted
// position would cross.
func steerInside(predicted, vel physics.Vec2, b physics.Bounds, radius float64) physics.Vec2 {
	vx, vy := vel.X(), vel.Y()

	if predicted.X()-radius < 0 {
		vx = math.Abs(vx)
	} else if predicted.X()+radius > b.Width {
		vx = -math.Abs(vx)
	}
	if predicted.Y()-radius < 0 {
		vy = math.Abs(vy)
	} else if predicted.Y()+radius > b.Height {
		vy = -math.Abs(vy)
	}

	return physics.V(vx, vy)
}

// respawn places the target uniformly inside the central band of the playfield with
// a fresh velocity. Samples that land inside avoid's hit hull are retried up to
// attempts times; the last sample is kept if none clears it.
func respawn(t Target, b physics.Bounds, c config.TargetConfig, rng Random, avoid physics.Vec2, clearance float64) Target {
	if b.IsZero() {
		return t
	}

	marginX := b.Width * c.RespawnMargin
	marginY := b.Height * c.RespawnMargin
	speedRange := c.RespawnSpeedMax - c.RespawnSpeedMin

	next := t
	for i := 0; i < c.RespawnAttempts; i++ {
		x := marginX + (b.Width-2*marginX)*rng.Float64()
		y := marginY + (b.Height-2*marginY)*rng.Float64()
		vx := (c.RespawnSpeedMin + speedRange*rng.Float64()) * randomSign(rng)
		vy := (c.RespawnSpeedMin + speedRange*rng.Float64()) * randomSign(rng)

		next = Target{Position: physics.V(x, y), Velocity: physics.V(vx, vy), Size: t.Size}
		if physics.Distance2V(next.Position, avoid) >= clearance {
			break
		}
	}
	return next
}
