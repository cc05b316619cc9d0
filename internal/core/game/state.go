package game

import (
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// State is the hit/catch bookkeeping for the current cycle.
//
// Caught is true exactly when HitCount reached the catch threshold since the last
// reset. Cooldown never goes below zero.
type State struct {
	HitCount  int
	Caught    bool
	Cooldown  float64
	CaughtSet IdentitySet
	Selected  Identity
}

// Invincible reports whether the target currently ignores hits.
func (s *State) Invincible() bool { return s.Cooldown > 0 }

// CaughtBefore reports whether the selected identity was already caught this cycle.
func (s *State) CaughtBefore() bool { return s.CaughtSet.Has(s.Selected) }

// Decay lowers the cooldown by dt, stopping at zero.
func (s *State) Decay(dt float64) {
	if s.Cooldown <= 0 {
		return
	}
	s.Cooldown -= dt
	if s.Cooldown < 0 {
		s.Cooldown = 0
	}
}

// CanHit reports whether a contact would register right now.
func (s *State) CanHit() bool { return !s.Caught && s.Cooldown <= 0 }

// RegisterHit counts one hit and arms the cooldown. It returns true on the hit that
// completes the catch, at which point the selected identity joins the caught set.
func (s *State) RegisterHit(toCatch int, cooldown float64) bool {
	if !s.CanHit() {
		return false
	}
	s.HitCount++
	s.Cooldown = cooldown
	if s.HitCount >= toCatch {
		s.HitCount = toCatch
		s.Caught = true
		s.CaughtSet = s.CaughtSet.Add(s.Selected)
		return true
	}
	return false
}

// Reset starts a new cycle with the given identity. A complete caught set is
// cleared first; the return value reports whether that happened.
func (s *State) Reset(next Identity) bool {
	cleared := s.CaughtSet.Complete()
	if cleared {
		s.CaughtSet = 0
	}
	s.HitCount = 0
	s.Caught = false
	s.Cooldown = 0
	s.Selected = next
	return cleared
}

// Overlaps reports whether the marble touches the target's hit hull. The hull radius
// is target.Size/hullDivisor, which differs from the rendered radius on purpose.
func Overlaps(m Marble, marbleRadius float64, t Target, hullDivisor float64) bool {
	return physics.Distance2V(m.Position, t.Position) < hitDistance(marbleRadius, t, hullDivisor)
}

func hitDistance(marbleRadius float64, t Target, hullDivisor float64) float64 {
	return marbleRadius + t.Size/hullDivisor
}
