package engine

import (
	"github.com/opd-ai/woosh/pkg/config"
	"github.com/opd-ai/woosh/pkg/entity"
	"github.com/opd-ai/woosh/pkg/physics"
)

// Arena is the fixed playing field: the window split by a centered divider
// with a strip at the bottom that ships may not enter.
type Arena struct {
	Width   int
	Height  int
	Divider physics.Rect
	// Floor is the lowest y a ship's bottom edge must stay above
	Floor int
}

// NewArena derives the arena geometry from cfg
func NewArena(cfg *config.GameConfig) Arena {
	w, h := cfg.Window.Width, cfg.Window.Height
	return Arena{
		Width:   w,
		Height:  h,
		Divider: physics.NewRect(w/2-cfg.Arena.DividerWidth/2, 0, cfg.Arena.DividerWidth, h),
		Floor:   h - cfg.Arena.BottomMargin,
	}
}

// Bounds returns the whole arena as a rectangle
func (a Arena) Bounds() physics.Rect {
	return physics.NewRect(0, 0, a.Width, a.Height)
}

// Lane returns the exclusive horizontal limits of side's half: a ship's
// x must stay above min and its right edge below max.
func (a Arena) Lane(side entity.Side) (min, max int) {
	if side == entity.Left {
		return 0, a.Divider.X
	}
	return a.Divider.Right(), a.Width
}

// Escaped reports whether p has left the arena through the edge it
// travels toward.
func (a Arena) Escaped(p *entity.Projectile) bool {
	if p.Owner == entity.Left {
		return p.Bounds.X > a.Width
	}
	return p.Bounds.X < 0
}
