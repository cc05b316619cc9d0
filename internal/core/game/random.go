package game

// Random is the source of randomness for target placement, heading jitter,
// identity selection and particles. *math/rand/v2.Rand satisfies it.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

func randomSign(r Random) float64 {
	if r.IntN(2) == 0 {
		return 1
	}
	return -1
}

func randomIdentity(r Random) Identity {
	return Identity(r.IntN(IdentityCount))
}
