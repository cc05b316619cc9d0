package game

import (
	"math/bits"
)

// Identity is one of the target variants a player can catch.
type Identity uint8

const (
	Bulbasaur Identity = iota
	Charmander
	Pikachu
	Squirtle

	identityCount
)

// IdentityCount is the number of distinct target identities.
const IdentityCount = int(identityCount)

var identityNames = [...]string{
	Bulbasaur:  "Bulbasaur",
	Charmander: "Charmander",
	Pikachu:    "Pikachu",
	Squirtle:   "Squirtle",
}

func (id Identity) String() string {
	if id >= identityCount {
		return "Unknown"
	}
	return identityNames[id]
}

// Valid reports whether id names a known variant.
func (id Identity) Valid() bool { return id < identityCount }

// Identities lists every variant in declaration order.
func Identities() []Identity {
	out := make([]Identity, 0, IdentityCount)
	for id := Identity(0); id < identityCount; id++ {
		out = append(out, id)
	}
	return out
}

// IdentitySet is a set of identities. The zero value is empty.
type IdentitySet uint8

// Add returns the set with id included. Adding twice is a no-op.
func (s IdentitySet) Add(id Identity) IdentitySet {
	if !id.Valid() {
		return s
	}
	return s | 1<<id
}

func (s IdentitySet) Has(id Identity) bool {
	return id.Valid() && s&(1<<id) != 0
}

func (s IdentitySet) Len() int { return bits.OnesCount8(uint8(s)) }

// Complete reports whether every identity is in the set.
func (s IdentitySet) Complete() bool { return s.Len() == IdentityCount }

// List returns members in declaration order.
func (s IdentitySet) List() []Identity {
	out := make([]Identity, 0, s.Len())
	for _, id := range Identities() {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
