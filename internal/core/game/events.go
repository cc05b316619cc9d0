package game

import (
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// Event types published by the engine.
const (
	EventPlayfieldReady = "playfield.ready"
	EventHit            = "marble.hit"
	EventCaught         = "target.caught"
	EventReset          = "game.reset"
)

const eventSource = "engine"

type ReadyEvent struct {
	Bounds physics.Bounds
}

type HitEvent struct {
	Round    string
	Identity Identity
	HitCount int
}

type CatchEvent struct {
	Round     string
	Identity  Identity
	Caught    []Identity
	AllCaught bool
}

type ResetEvent struct {
	Round        string
	Identity     Identity
	ClearedCycle bool
}
