package physics

// Small 2D physics vocabulary shared by the marble, the target and the field.
// Vectors are mathgl's Vec2 so rotation matrices and length helpers come for free.

// Vector2 represents a 2D vector.
type Vector2 interface {
	X() float64
	Y() float64
}
