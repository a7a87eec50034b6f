// pkg/entity/weapon.go
package entity

import (
	"github.com/opd-ai/woosh/pkg/physics"
)

// Projectile is a small rectangle travelling toward the opponent
type Projectile struct {
	Body
	Owner    Side
	Velocity physics.Vector
}

// Advance moves the projectile by one frame of velocity
func (p *Projectile) Advance() {
	p.Move(p.Velocity)
}

// Cannon fires projectiles for a ship, limited to MaxLive at a time
type Cannon struct {
	Width   int
	Height  int
	Speed   int
	MaxLive int
}

// CanFire reports whether another projectile may be spawned while live
// projectiles of the same owner are already in flight.
func (c Cannon) CanFire(live int) bool {
	return live < c.MaxLive
}

// Fire creates a projectile at the ship's muzzle. It returns nil when the
// ship already has MaxLive projectiles in flight.
func (c Cannon) Fire(ship *Ship, live int) *Projectile {
	if !c.CanFire(live) {
		return nil
	}
	muzzle := ship.Muzzle()
	return &Projectile{
		Body: Body{
			Bounds: physics.NewRect(muzzle.X, muzzle.Y, c.Width, c.Height),
		},
		Owner:    ship.Side,
		Velocity: ship.Side.Direction().Scale(c.Speed),
	}
}
