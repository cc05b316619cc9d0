package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the value vector used across the simulation. It satisfies Vector2.
type Vec2 = mgl64.Vec2

// V is shorthand for a Vec2 literal.
func V(x, y float64) Vec2 { return Vec2{x, y} }

var _ Vector2 = Vec2{}

// Zero is the additive identity.
var Zero = Vec2{}

// Bounds is the playfield size. The zero value means the playfield is not known yet.
type Bounds struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// IsZero reports whether bounds have not been established.
func (b Bounds) IsZero() bool { return b.Width <= 0 || b.Height <= 0 }

// Circle is a static circular region.
type Circle struct {
	Center Vec2    `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Vec2) bool { return p.Sub(c.Center).Len() < c.Radius }

// Distance2V computes distance between two Vector2.
func Distance2V(a, b Vector2) float64 { return math.Hypot(b.X()-a.X(), b.Y()-a.Y()) }

// Reflect mirrors v about the surface with unit normal n: v - 2(v.n)n.
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Rotate turns v by deg degrees counter-clockwise using a 2D rotation matrix.
func Rotate(v Vec2, deg float64) Vec2 {
	return mgl64.Rotate2D(mgl64.DegToRad(deg)).Mul2x1(v)
}

// WithLength rescales v to length l. A zero vector becomes (l, 0).
func WithLength(v Vec2, l float64) Vec2 {
	n := v.Len()
	if n == 0 {
		return Vec2{l, 0}
	}
	return v.Mul(l / n)
}

// ContactNormal returns the unit vector from center to p and the distance between them.
// Coincident points use (1, 0).
func ContactNormal(p, center Vec2) (Vec2, float64) {
	diff := p.Sub(center)
	dist := diff.Len()
	if dist == 0 {
		return Vec2{1, 0}, 0
	}
	return diff.Mul(1 / dist), dist
}

// ResolveCircle separates a moving circle of the given radius from a static circle.
// The position is pushed out along the contact normal by the penetration depth and the
// velocity is reflected about the normal and scaled by restitution. ok is false when the
// circles do not overlap, in which case pos and vel are returned untouched.
func ResolveCircle(pos, vel Vec2, radius float64, c Circle, restitution float64) (Vec2, Vec2, bool) {
	minDist := radius + c.Radius
	normal, dist := ContactNormal(pos, c.Center)
	if dist >= minDist {
		return pos, vel, false
	}
	pos = pos.Add(normal.Mul(minDist - dist))
	vel = Reflect(vel, normal).Mul(restitution)
	return pos, vel, true
}

// Sign returns 1 for strictly positive x and -1 otherwise.
func Sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	return -1
}
