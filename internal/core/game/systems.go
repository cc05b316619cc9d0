package game

import (
	"github.com/zeusync/marblecatch/internal/core/systems"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// GravityFunc returns the most recent gravity reading.
type GravityFunc func() physics.Vec2

var (
	_ systems.Phased = (*MotionSystem)(nil)
	_ systems.Phased = (*TargetSystem)(nil)
)

// MotionSystem samples gravity and advances the marble.
type MotionSystem struct {
	engine  *Engine
	gravity GravityFunc
}

func NewMotionSystem(engine *Engine, gravity GravityFunc) *MotionSystem {
	return &MotionSystem{engine: engine, gravity: gravity}
}

func (s *MotionSystem) Name() string         { return "marble" }
func (s *MotionSystem) Phase() systems.Phase { return systems.PhaseMotion }
func (s *MotionSystem) Update(dt float64) error {
	s.engine.StepMotion(dt, s.gravity())
	return nil
}

// TargetSystem advances the target, the cooldown and the hit state machine.
type TargetSystem struct {
	engine *Engine
}

func NewTargetSystem(engine *Engine) *TargetSystem {
	return &TargetSystem{engine: engine}
}

func (s *TargetSystem) Name() string         { return "target" }
func (s *TargetSystem) Phase() systems.Phase { return systems.PhaseTarget }
func (s *TargetSystem) Update(dt float64) error {
	s.engine.StepTarget(dt)
	return nil
}
