package engine

import (
	"github.com/opd-ai/woosh/pkg/config"
	"github.com/opd-ai/woosh/pkg/entity"
	"github.com/opd-ai/woosh/pkg/logging"
	"github.com/opd-ai/woosh/pkg/physics"
)

// MatchStats counts what happened during one match, indexed by side
type MatchStats struct {
	Shots [2]int
	Hits  [2]int
	// Blocked counts fire presses ignored at the projectile cap
	Blocked [2]int
}

// Match is the state of a single round, from full health to a winner
type Match struct {
	ID          string
	Ships       [2]*entity.Ship
	Projectiles [2][]*entity.Projectile
	Stats       MatchStats
	Frames      uint64
}

// NewMatch places both ships at their start positions with full health
func NewMatch(cfg *config.GameConfig) *Match {
	ships := cfg.Ships
	start := [2]config.PointConfig{
		entity.Left:  ships.LeftStart,
		entity.Right: ships.RightStart,
	}

	m := &Match{ID: logging.GenerateMatchID()}
	for _, side := range entity.Sides {
		at := physics.Point{X: start[side].X, Y: start[side].Y}
		m.Ships[side] = entity.NewShip(side, at, ships.Width, ships.Height, ships.StartingHealth)
		m.Projectiles[side] = make([]*entity.Projectile, 0, cfg.Projectiles.MaxPerSide)
	}
	return m
}

// Ship returns the ship of side
func (m *Match) Ship(side entity.Side) *entity.Ship {
	return m.Ships[side]
}

// Live returns the number of side's projectiles in flight
func (m *Match) Live(side entity.Side) int {
	return len(m.Projectiles[side])
}

// Winner reports the winning side once a ship has no health left. The
// left ship losing takes precedence when both reach zero together.
func (m *Match) Winner() (entity.Side, bool) {
	switch {
	case !m.Ships[entity.Left].Alive():
		return entity.Right, true
	case !m.Ships[entity.Right].Alive():
		return entity.Left, true
	default:
		return entity.Left, false
	}
}
