package config

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	checks := []func() error{
		c.Physics.Validate,
		c.Marble.Validate,
		c.Target.Validate,
		c.Hits.Validate,
		c.Particles.Validate,
		c.Field.Validate,
		c.Driver.Validate,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (p PhysicsConfig) Validate() error {
	if p.Damping < 0 || p.Damping > 1 {
		return invalid("physics.damping %v outside [0,1]", p.Damping)
	}
	if p.Restitution < 0 || p.Restitution > 1 {
		return invalid("physics.restitution %v outside [0,1]", p.Restitution)
	}
	if p.WaterDamping < 0 || p.WaterDamping > 1 {
		return invalid("physics.water_damping %v outside [0,1]", p.WaterDamping)
	}
	return nil
}

func (m MarbleConfig) Validate() error {
	if m.Radius <= 0 {
		return invalid("marble.radius must be positive")
	}
	return nil
}

func (t TargetConfig) Validate() error {
	switch {
	case t.Size <= 0:
		return invalid("target.size must be positive")
	case t.HitHullDivisor <= 0:
		return invalid("target.hit_hull_divisor must be positive")
	case t.SpeedCaught < 0 || t.SpeedUncaught < 0:
		return invalid("target speeds must not be negative")
	case t.RespawnMargin < 0 || t.RespawnMargin >= 0.5:
		return invalid("target.respawn_margin %v outside [0,0.5)", t.RespawnMargin)
	case t.RespawnSpeedMin < 0 || t.RespawnSpeedMax < t.RespawnSpeedMin:
		return invalid("target respawn speed range [%v,%v] is empty", t.RespawnSpeedMin, t.RespawnSpeedMax)
	case t.RespawnAttempts < 1:
		return invalid("target.respawn_attempts must be at least 1")
	}
	return nil
}

func (h HitConfig) Validate() error {
	if h.ToCatch < 1 {
		return invalid("hits.to_catch must be at least 1")
	}
	if h.Cooldown < 0 {
		return invalid("hits.cooldown must not be negative")
	}
	return nil
}

func (p ParticleConfig) Validate() error {
	if !p.Enabled {
		return nil
	}
	if p.Interval <= 0 || p.Lifetime <= 0 || p.Decay <= 0 {
		return invalid("particles interval, lifetime and decay must be positive")
	}
	if p.SpeedPerParticle <= 0 {
		return invalid("particles.speed_per_particle must be positive")
	}
	if p.Max < 1 {
		return invalid("particles.max must be at least 1")
	}
	return nil
}

func (f FieldConfig) Validate() error {
	for i, o := range f.Obstacles {
		if o.Radius <= 0 {
			return invalid("field.obstacles[%d].radius must be positive", i)
		}
	}
	for i, w := range f.Water {
		if w.Radius <= 0 {
			return invalid("field.water[%d].radius must be positive", i)
		}
	}
	return nil
}

func (d DriverConfig) Validate() error {
	switch d.Mode {
	case DriverSingle, DriverSplit:
	default:
		return invalid("driver.mode %q is not one of single, split", d.Mode)
	}
	if d.TickInterval <= 0 {
		return invalid("driver.tick_interval must be positive")
	}
	if d.MaxStep < 0 {
		return invalid("driver.max_step must not be negative")
	}
	return nil
}
