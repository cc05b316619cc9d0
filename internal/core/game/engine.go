package game

import (
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/events/bus"
	"github.com/zeusync/marblecatch/internal/core/observability/log"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// Engine owns all mutable simulation state.
//
// StepMotion and StepTarget are the only writers besides SetBounds and ResetGame;
// renderers read through Snapshot. Events are published after the lock is released,
// so handlers may call back into the engine.
type Engine struct {
	mu sync.RWMutex

	cfg          *config.Config
	marbleTuning MarbleTuning
	targetTuning TargetTuning
	field        *Field
	rng          Random
	logger       log.Log
	events       bus.EventBus

	bounds    physics.Bounds
	marble    Marble
	target    Target
	state     State
	particles *Particles
	round     string
	hitSignal bool

	pending []bus.Event
}

// NewEngine builds an engine in the not-ready state. events may be nil.
func NewEngine(cfg *config.Config, rng Random, logger log.Log, events bus.EventBus) *Engine {
	e := &Engine{
		cfg:          cfg,
		marbleTuning: marbleTuning(cfg),
		targetTuning: targetTuning(cfg),
		field:        NewField(cfg.Field.Obstacles, cfg.Field.Water),
		rng:          rng,
		logger:       logger.With(log.String("component", "engine")),
		events:       events,
		marble:       Marble{Position: cfg.Marble.Start},
		target:       Target{Position: cfg.Target.Start, Size: cfg.Target.Size},
		particles:    NewParticles(cfg.Particles),
		round:        uuid.NewString(),
	}
	e.state.Selected = randomIdentity(rng)
	return e
}

// Field returns the static playfield layout.
func (e *Engine) Field() *Field { return e.field }

// SetBounds records the playfield size. The first non-empty size makes the engine ready.
func (e *Engine) SetBounds(b physics.Bounds) {
	e.mu.Lock()
	wasReady := !e.bounds.IsZero()
	e.bounds = b
	if !wasReady && !b.IsZero() {
		e.logger.Info("playfield ready",
			log.Float64("width", b.Width),
			log.Float64("height", b.Height))
		e.queue(EventPlayfieldReady, ReadyEvent{Bounds: b})
	}
	pending := e.takePending()
	e.mu.Unlock()

	e.publish(pending)
}

// Ready reports whether the playfield size is known.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.bounds.IsZero()
}

// Step advances both phases in order: marble first, then target and hits.
func (e *Engine) Step(dt float64, gravity physics.Vec2) {
	e.StepMotion(dt, gravity)
	e.StepTarget(dt)
}

// StepMotion advances the marble and its particle trail.
func (e *Engine) StepMotion(dt float64, gravity physics.Vec2) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bounds.IsZero() {
		return
	}
	e.marble = e.marble.Advance(dt, gravity, e.bounds, e.field, e.marbleTuning)
	e.particles.Advance(dt, e.marble, e.rng)
}

// StepTarget moves the target, decays the cooldown and runs the hit check.
func (e *Engine) StepTarget(dt float64) {
	e.mu.Lock()
	if !e.bounds.IsZero() {
		if !e.state.Caught {
			e.target = e.target.Advance(dt, e.bounds, e.field, e.state.CaughtBefore(), e.rng, e.targetTuning)
		}
		e.state.Decay(dt)
		e.checkHit()
	}
	pending := e.takePending()
	e.mu.Unlock()

	e.publish(pending)
}

func (e *Engine) checkHit() {
	if !e.state.CanHit() || !Overlaps(e.marble, e.marbleTuning.Radius, e.target, e.cfg.Target.HitHullDivisor) {
		return
	}

	caught := e.state.RegisterHit(e.cfg.Hits.ToCatch, e.cfg.Hits.Cooldown)
	e.hitSignal = true
	e.respawnTarget()

	e.logger.Debug("hit registered",
		log.String("round", e.round),
		log.String("identity", e.state.Selected.String()),
		log.Int("hits", e.state.HitCount))
	e.queue(EventHit, HitEvent{Round: e.round, Identity: e.state.Selected, HitCount: e.state.HitCount})

	if caught {
		e.logger.Info("target caught",
			log.String("round", e.round),
			log.String("identity", e.state.Selected.String()),
			log.Int("caught", e.state.CaughtSet.Len()))
		e.queue(EventCaught, CatchEvent{
			Round:     e.round,
			Identity:  e.state.Selected,
			Caught:    e.state.CaughtSet.List(),
			AllCaught: e.state.CaughtSet.Complete(),
		})
	}
}

func (e *Engine) respawnTarget() {
	clearance := hitDistance(e.marbleTuning.Radius, e.target, e.cfg.Target.HitHullDivisor)
	e.target = respawn(e.target, e.bounds, e.cfg.Target, e.rng, e.marble.Position, clearance)
}

// ResetGame starts a new round with a fresh identity.
func (e *Engine) ResetGame() {
	e.mu.Lock()
	cleared := e.state.Reset(randomIdentity(e.rng))
	e.marble = Marble{Position: e.cfg.Marble.ResetPosition}
	e.respawnTarget()
	e.particles.Clear()
	e.hitSignal = false
	e.round = uuid.NewString()

	if cleared {
		e.logger.Info("all identities caught, starting a new cycle")
	}
	e.logger.Info("game reset",
		log.String("round", e.round),
		log.String("identity", e.state.Selected.String()))
	e.queue(EventReset, ResetEvent{Round: e.round, Identity: e.state.Selected, ClearedCycle: cleared})
	pending := e.takePending()
	e.mu.Unlock()

	e.publish(pending)
}

// ConsumeHitSignal returns true once for each registered hit since the last call.
func (e *Engine) ConsumeHitSignal() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	fired := e.hitSignal
	e.hitSignal = false
	return fired
}

func (e *Engine) queue(eventType string, data any) {
	if e.events == nil {
		return
	}
	e.pending = append(e.pending, bus.NewEvent(eventType, eventSource, data))
}

func (e *Engine) takePending() []bus.Event {
	pending := e.pending
	e.pending = nil
	return pending
}

func (e *Engine) publish(events []bus.Event) {
	for _, ev := range events {
		if err := e.events.Publish(ev); err != nil {
			e.logger.Warn("event handler failed",
				log.String("event", ev.Type()),
				log.Error(err))
		}
	}
}
