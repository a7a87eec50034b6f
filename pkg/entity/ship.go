// pkg/entity/ship.go
package entity

import (
	"github.com/opd-ai/woosh/pkg/physics"
)

// Ship is a player-controlled rectangle with health
type Ship struct {
	Body
	Side   Side
	Health int
}

// NewShip creates a ship at its starting position with full health
func NewShip(side Side, start physics.Point, width, height, health int) *Ship {
	return &Ship{
		Body: Body{
			Bounds: physics.NewRect(start.X, start.Y, width, height),
		},
		Side:   side,
		Health: health,
	}
}

// TakeHit removes one point of health, never going below zero.
// It returns true when the hit left the ship without health.
func (s *Ship) TakeHit() bool {
	if s.Health > 0 {
		s.Health--
	}
	return s.Health == 0
}

// Alive reports whether the ship still has health
func (s *Ship) Alive() bool {
	return s.Health > 0
}

// Muzzle returns the point projectiles leave the ship from: the leading
// edge facing the opponent, two units above the vertical center.
func (s *Ship) Muzzle() physics.Point {
	x := s.Bounds.X
	if s.Side == Left {
		x = s.Bounds.Right()
	}
	return physics.Point{X: x, Y: s.Bounds.Y + s.Bounds.H/2 - 2}
}
