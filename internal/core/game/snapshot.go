package game

import (
	"fmt"

	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// MarbleView is the renderable marble pose.
type MarbleView struct {
	Position     physics.Vec2
	Velocity     physics.Vec2
	Angle        float64
	DisplayAngle float64
	Radius       float64
}

// Speed is the marble's velocity magnitude.
func (m MarbleView) Speed() float64 { return m.Velocity.Len() }

// TargetView is the renderable target pose.
type TargetView struct {
	Position physics.Vec2
	Velocity physics.Vec2
	Size     float64
	Radius   float64
	Identity Identity
}

// Snapshot is a point-in-time copy of everything a renderer needs.
// It shares no memory with the engine.
type Snapshot struct {
	Ready  bool
	Bounds physics.Bounds
	Round  string

	Marble MarbleView
	Target TargetView

	TargetCaught bool
	Invincible   bool
	HitCount     int
	HitsToCatch  int
	Caught       []Identity
	Selected     Identity
	AllCaught    bool

	Obstacles []physics.Circle
	Water     []physics.Circle
	Particles []Particle
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Snapshot{
		Ready:  !e.bounds.IsZero(),
		Bounds: e.bounds,
		Round:  e.round,
		Marble: MarbleView{
			Position:     e.marble.Position,
			Velocity:     e.marble.Velocity,
			Angle:        e.marble.Angle,
			DisplayAngle: e.marble.DisplayAngle(),
			Radius:       e.marbleTuning.Radius,
		},
		Target: TargetView{
			Position: e.target.Position,
			Velocity: e.target.Velocity,
			Size:     e.target.Size,
			Radius:   e.target.Radius(),
			Identity: e.state.Selected,
		},
		TargetCaught: e.state.Caught,
		Invincible:   e.state.Invincible(),
		HitCount:     e.state.HitCount,
		HitsToCatch:  e.cfg.Hits.ToCatch,
		Caught:       e.state.CaughtSet.List(),
		Selected:     e.state.Selected,
		AllCaught:    e.state.CaughtSet.Complete(),
		Obstacles:    e.field.Obstacles(),
		Water:        e.field.Water(),
		Particles:    e.particles.List(),
	}
}

// Banner returns the catch announcement and the label of the reset action.
// ok is false while the target is still loose.
func (s Snapshot) Banner() (message, action string, ok bool) {
	if !s.TargetCaught {
		return "", "", false
	}
	if s.AllCaught {
		return "You caught 'em all!", "Play again", true
	}
	return fmt.Sprintf("You caught %s!", s.Selected), "Catch em' all", true
}
