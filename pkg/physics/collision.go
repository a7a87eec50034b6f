// pkg/physics/collision.go
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X int
	Y int
	W int
	H int
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point, rounded toward the top-left
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Position returns the top-left corner
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Translate returns the rectangle moved by v
func (r Rect) Translate(v Vector) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Empty reports whether the rectangle covers no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects checks if two rectangles overlap.
// Rectangles that only share an edge do not intersect, and an empty
// rectangle intersects nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() &&
		other.X < r.Right() &&
		r.Y < other.Bottom() &&
		other.Y < r.Bottom()
}
