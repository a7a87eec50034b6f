// pkg/physics/vector.go
package physics

// Vector represents a 2D displacement in whole arena units
type Vector struct {
	X int
	Y int
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector) Scale(factor int) Vector {
	return Vector{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// IsZero reports whether the vector has no displacement
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Point is a position in arena coordinates. The origin is the top-left
// corner of the arena and Y grows downward.
type Point = Vector
