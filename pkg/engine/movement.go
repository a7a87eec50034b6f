package engine

import (
	"github.com/opd-ai/woosh/pkg/entity"
	"github.com/opd-ai/woosh/pkg/input"
	"github.com/opd-ai/woosh/pkg/physics"
)

func (g *Game) moveShips(held input.KeySet) {
	for _, side := range entity.Sides {
		g.moveShip(g.Match.Ship(side), held)
	}
}

// moveShip steps ship along each held axis independently. A step is taken
// only if the ship stays strictly inside its half of the arena.
func (g *Game) moveShip(ship *entity.Ship, held input.KeySet) {
	c := ControlsFor(ship.Side)
	speed := g.Config.Ships.Speed
	minX, maxX := g.Arena.Lane(ship.Side)

	if held.Pressed(c.Left) && ship.Bounds.X-speed > minX {
		ship.Move(physics.Vector{X: -speed})
	}
	if held.Pressed(c.Right) && ship.Bounds.Right()+speed < maxX {
		ship.Move(physics.Vector{X: speed})
	}
	if held.Pressed(c.Up) && ship.Bounds.Y-speed > 0 {
		ship.Move(physics.Vector{Y: -speed})
	}
	if held.Pressed(c.Down) && ship.Bounds.Bottom()+speed < g.Arena.Floor {
		ship.Move(physics.Vector{Y: speed})
	}
}
