package game

import (
	"math"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// Particle is one fading speck of the marble's trail.
type Particle struct {
	Position        physics.Vec2
	Lifetime        float64
	InitialLifetime float64
}

// Alpha is the draw opacity: 0.5 when spawned, fading linearly to 0.
func (p Particle) Alpha() float64 {
	if p.InitialLifetime <= 0 {
		return 0
	}
	return p.Lifetime / p.InitialLifetime * 0.5
}

// Particles emits a trail behind a fast marble on a fixed emission clock.
type Particles struct {
	cfg   config.ParticleConfig
	items []Particle
	clock float64
}

func NewParticles(cfg config.ParticleConfig) *Particles {
	return &Particles{cfg: cfg}
}

// Advance runs as many emission periods as dt covers. Each period ages every
// particle by Decay and, if the marble is fast enough, spawns new ones around it.
func (ps *Particles) Advance(dt float64, m Marble, rng Random) {
	if !ps.cfg.Enabled {
		return
	}
	ps.clock += dt

	// After this many periods every particle has expired, so running more is wasted.
	maxPeriods := int(math.Ceil(ps.cfg.Lifetime/ps.cfg.Decay)) + 1
	for periods := 0; ps.clock >= ps.cfg.Interval; periods++ {
		ps.clock -= ps.cfg.Interval
		if periods >= maxPeriods {
			ps.clock = 0
			break
		}
		ps.decay()
		ps.spawn(m, rng)
	}
}

func (ps *Particles) decay() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.Lifetime -= ps.cfg.Decay
		if p.Lifetime > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

func (ps *Particles) spawn(m Marble, rng Random) {
	speed := m.Velocity.Len()
	if speed <= ps.cfg.SpeedThreshold {
		return
	}
	count := max(1, int(speed/ps.cfg.SpeedPerParticle))
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * ps.cfg.Spread
		offset := physics.V(radius*math.Cos(angle), radius*math.Sin(angle))
		ps.items = append(ps.items, Particle{
			Position:        m.Position.Add(offset),
			Lifetime:        ps.cfg.Lifetime,
			InitialLifetime: ps.cfg.Lifetime,
		})
	}
	if over := len(ps.items) - ps.cfg.Max; over > 0 {
		ps.items = append(ps.items[:0], ps.items[over:]...)
	}
}

// Clear drops every particle and restarts the emission clock.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
	ps.clock = 0
}

// Len is the number of live particles.
func (ps *Particles) Len() int { return len(ps.items) }

// List returns a copy of the live particles, oldest first.
func (ps *Particles) List() []Particle {
	return append([]Particle(nil), ps.items...)
}
