package game

import (
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// Field is the static playfield furniture: solid obstacles and water zones.
// It never changes after construction.
type Field struct {
	obstacles []physics.Circle
	water     []physics.Circle
}

// NewField copies the given layout.
func NewField(obstacles, water []physics.Circle) *Field {
	return &Field{
		obstacles: append([]physics.Circle(nil), obstacles...),
		water:     append([]physics.Circle(nil), water...),
	}
}

// Obstacles returns a copy of the obstacle list in resolution order.
func (f *Field) Obstacles() []physics.Circle {
	return append([]physics.Circle(nil), f.obstacles...)
}

// Water returns a copy of the water zones.
func (f *Field) Water() []physics.Circle {
	return append([]physics.Circle(nil), f.water...)
}

// InWater reports whether p is inside any water zone. Only the first match matters.
func (f *Field) InWater(p physics.Vec2) bool {
	for _, w := range f.water {
		if w.Contains(p) {
			return true
		}
	}
	return false
}

// Collide resolves a circle of the given radius against every obstacle in order.
// Overlaps are resolved one after another, each seeing the result of the previous one.
func (f *Field) Collide(pos, vel physics.Vec2, radius, restitution float64) (physics.Vec2, physics.Vec2) {
	for _, o := range f.obstacles {
		pos, vel, _ = physics.ResolveCircle(pos, vel, radius, o, restitution)
	}
	return pos, vel
}
