// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/woosh/pkg/physics"
)

// Side identifies one of the two players
type Side int

const (
	// Left is the yellow ship, confined to the left half
	Left Side = iota
	// Right is the red ship, confined to the right half
	Right
)

// Sides lists both sides in drawing and update order
var Sides = [2]Side{Left, Right}

// String returns the lowercase side name used in logs
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Label returns the historical color name shown in the winner banner
func (s Side) Label() string {
	switch s {
	case Left:
		return "Yellow"
	case Right:
		return "Red"
	default:
		return "Nobody"
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Direction returns the unit vector projectiles of this side travel along
func (s Side) Direction() physics.Vector {
	if s == Left {
		return physics.Vector{X: 1}
	}
	return physics.Vector{X: -1}
}

// Body is the common state of everything on the field
type Body struct {
	Bounds physics.Rect
}

// Position returns the top-left corner of the body
func (b *Body) Position() physics.Point {
	return b.Bounds.Position()
}

// Move translates the body by v
func (b *Body) Move(v physics.Vector) {
	b.Bounds = b.Bounds.Translate(v)
}
