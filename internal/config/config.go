package config

import (
	"time"

	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// Config is the full set of tuning knobs for a simulation instance.
type Config struct {
	Physics   PhysicsConfig  `json:"physics" yaml:"physics"`
	Marble    MarbleConfig   `json:"marble" yaml:"marble"`
	Target    TargetConfig   `json:"target" yaml:"target"`
	Hits      HitConfig      `json:"hits" yaml:"hits"`
	Particles ParticleConfig `json:"particles" yaml:"particles"`
	Field     FieldConfig    `json:"field" yaml:"field"`
	Driver    DriverConfig   `json:"driver" yaml:"driver"`
	Log       LogConfig      `json:"log" yaml:"log"`
	Frontend  FrontendConfig `json:"frontend" yaml:"frontend"`
}

// PhysicsConfig holds the constants shared by every body.
type PhysicsConfig struct {
	// GravityScale converts a sensor reading (m/s²) into playfield units/s².
	GravityScale float64 `json:"gravity_scale" yaml:"gravity_scale"`
	// Damping multiplies marble velocity once per tick.
	Damping            float64 `json:"damping" yaml:"damping"`
	Restitution        float64 `json:"restitution" yaml:"restitution"`
	WaterDamping       float64 `json:"water_damping" yaml:"water_damping"`
	RotationMultiplier float64 `json:"rotation_multiplier" yaml:"rotation_multiplier"`
}

type MarbleConfig struct {
	Radius        float64      `json:"radius" yaml:"radius"`
	Start         physics.Vec2 `json:"start" yaml:"start"`
	ResetPosition physics.Vec2 `json:"reset_position" yaml:"reset_position"`
}

type TargetConfig struct {
	Size  float64      `json:"size" yaml:"size"`
	Start physics.Vec2 `json:"start" yaml:"start"`

	SpeedUncaught float64 `json:"speed_uncaught" yaml:"speed_uncaught"`
	SpeedCaught   float64 `json:"speed_caught" yaml:"speed_caught"`
	// Jitter values are the half range of the per-tick heading change, in degrees.
	JitterUncaught float64 `json:"jitter_uncaught" yaml:"jitter_uncaught"`
	JitterCaught   float64 `json:"jitter_caught" yaml:"jitter_caught"`

	// HitHullDivisor shrinks or grows the hit hull relative to Size.
	// The rendered radius is Size/2; the hull is Size/HitHullDivisor.
	HitHullDivisor float64 `json:"hit_hull_divisor" yaml:"hit_hull_divisor"`

	RespawnMargin   float64 `json:"respawn_margin" yaml:"respawn_margin"`
	RespawnSpeedMin float64 `json:"respawn_speed_min" yaml:"respawn_speed_min"`
	RespawnSpeedMax float64 `json:"respawn_speed_max" yaml:"respawn_speed_max"`
	RespawnAttempts int     `json:"respawn_attempts" yaml:"respawn_attempts"`
}

type HitConfig struct {
	ToCatch int `json:"to_catch" yaml:"to_catch"`
	// Cooldown is in seconds of simulated time.
	Cooldown float64 `json:"cooldown" yaml:"cooldown"`
}

type ParticleConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Interval, Lifetime and Decay are in seconds of simulated time.
	Interval         float64 `json:"interval" yaml:"interval"`
	SpeedThreshold   float64 `json:"speed_threshold" yaml:"speed_threshold"`
	SpeedPerParticle float64 `json:"speed_per_particle" yaml:"speed_per_particle"`
	Spread           float64 `json:"spread" yaml:"spread"`
	Lifetime         float64 `json:"lifetime" yaml:"lifetime"`
	Decay            float64 `json:"decay" yaml:"decay"`
	Max              int     `json:"max" yaml:"max"`
}

type FieldConfig struct {
	Obstacles []physics.Circle `json:"obstacles" yaml:"obstacles"`
	Water     []physics.Circle `json:"water" yaml:"water"`
}

// DriverMode selects how the tick loops are paced.
type DriverMode string

const (
	// DriverSingle advances motion then target in one tick.
	DriverSingle DriverMode = "single"
	// DriverSplit runs the motion and target loops on independent cadences.
	DriverSplit DriverMode = "split"
)

type DriverConfig struct {
	Mode         DriverMode    `json:"mode" yaml:"mode"`
	TickInterval time.Duration `json:"tick_interval" yaml:"tick_interval"`
	// MaxStep caps the dt fed to a single tick. Zero disables the cap.
	MaxStep time.Duration `json:"max_step" yaml:"max_step"`
	// Seed makes target behavior reproducible. Empty means random.
	Seed string `json:"seed" yaml:"seed"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Output string `json:"output" yaml:"output"`
}

type FrontendConfig struct {
	CellWidth  float64 `json:"cell_width" yaml:"cell_width"`
	CellHeight float64 `json:"cell_height" yaml:"cell_height"`
	TiltStep   float64 `json:"tilt_step" yaml:"tilt_step"`
	MaxTilt    float64 `json:"max_tilt" yaml:"max_tilt"`
	Tone       bool    `json:"tone" yaml:"tone"`
}

// Default returns the stock tuning and playfield layout.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			GravityScale:       666,
			Damping:            0.99,
			Restitution:        0.75,
			WaterDamping:       0.75,
			RotationMultiplier: 0.3,
		},
		Marble: MarbleConfig{
			Radius:        25,
			Start:         physics.V(500, 1000),
			ResetPosition: physics.V(750, 750),
		},
		Target: TargetConfig{
			Size:            75,
			Start:           physics.V(750, 750),
			SpeedUncaught:   400,
			SpeedCaught:     350,
			JitterUncaught:  10,
			JitterCaught:    5,
			HitHullDivisor:  1.5,
			RespawnMargin:   0.2,
			RespawnSpeedMin: 50,
			RespawnSpeedMax: 150,
			RespawnAttempts: 8,
		},
		Hits: HitConfig{
			ToCatch:  3,
			Cooldown: 2.5,
		},
		Particles: ParticleConfig{
			Enabled:          true,
			Interval:         0.05,
			SpeedThreshold:   100,
			SpeedPerParticle: 150,
			Spread:           50,
			Lifetime:         1,
			Decay:            0.05,
			Max:              256,
		},
		Field: FieldConfig{
			Obstacles: []physics.Circle{
				{Center: physics.V(0, 0), Radius: 200},
				{Center: physics.V(-150, 200), Radius: 200},
				{Center: physics.V(200, -150), Radius: 200},
				{Center: physics.V(1050, 0), Radius: 200},
				{Center: physics.V(750, -100), Radius: 200},
				{Center: physics.V(-50, 1750), Radius: 200},
				{Center: physics.V(200, 1900), Radius: 200},
				{Center: physics.V(-150, 1550), Radius: 200},
				{Center: physics.V(1050, 1700), Radius: 200},
				{Center: physics.V(850, 1850), Radius: 200},
				{Center: physics.V(740, 305), Radius: 75},
				{Center: physics.V(160, 400), Radius: 70},
				{Center: physics.V(920, 975), Radius: 70},
			},
			Water: []physics.Circle{
				{Center: physics.V(125, 1575), Radius: 175},
				{Center: physics.V(175, 1575), Radius: 175},
				{Center: physics.V(225, 1575), Radius: 175},
			},
		},
		Driver: DriverConfig{
			Mode:         DriverSingle,
			TickInterval: 16 * time.Millisecond,
			MaxStep:      100 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Output: "stderr",
		},
		Frontend: FrontendConfig{
			CellWidth:  20,
			CellHeight: 40,
			TiltStep:   0.5,
			MaxTilt:    9.81,
			Tone:       false,
		},
	}
}
