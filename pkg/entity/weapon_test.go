// pkg/entity/weapon_test.go
package entity

import (
	"testing"

	"github.com/opd-ai/woosh/pkg/physics"
)

func testCannon() Cannon {
	return Cannon{Width: 10, Height: 5, Speed: 7, MaxLive: 3}
}

func TestCannon_Fire(t *testing.T) {
	cannon := testCannon()

	t.Run("left projectile travels right", func(t *testing.T) {
		ship := NewShip(Left, physics.Point{X: 100, Y: 300}, 55, 40, 10)
		p := cannon.Fire(ship, 0)
		if p == nil {
			t.Fatal("Fire returned nil below the cap")
		}
		if p.Bounds != physics.NewRect(155, 318, 10, 5) {
			t.Errorf("Bounds = %v, want {155 318 10 5}", p.Bounds)
		}
		if p.Velocity != (physics.Vector{X: 7}) {
			t.Errorf("Velocity = %v, want {7 0}", p.Velocity)
		}
		if p.Owner != Left {
			t.Errorf("Owner = %v, want left", p.Owner)
		}
	})

	t.Run("right projectile travels left", func(t *testing.T) {
		ship := NewShip(Right, physics.Point{X: 700, Y: 300}, 55, 40, 10)
		p := cannon.Fire(ship, 2)
		if p == nil {
			t.Fatal("Fire returned nil below the cap")
		}
		if p.Bounds != physics.NewRect(700, 318, 10, 5) {
			t.Errorf("Bounds = %v, want {700 318 10 5}", p.Bounds)
		}
		if p.Velocity != (physics.Vector{X: -7}) {
			t.Errorf("Velocity = %v, want {-7 0}", p.Velocity)
		}
	})
}

func TestCannon_Cap(t *testing.T) {
	cannon := testCannon()
	ship := NewShip(Left, physics.Point{X: 100, Y: 300}, 55, 40, 10)

	tests := []struct {
		live     int
		expected bool
	}{
		{0, true},
		{2, true},
		{3, false},
		{4, false},
	}

	for _, tt := range tests {
		if got := cannon.CanFire(tt.live); got != tt.expected {
			t.Errorf("CanFire(%d) = %v, want %v", tt.live, got, tt.expected)
		}
		if got := cannon.Fire(ship, tt.live) != nil; got != tt.expected {
			t.Errorf("Fire with %d live returned projectile = %v, want %v", tt.live, got, tt.expected)
		}
	}
}

func TestProjectile_Advance(t *testing.T) {
	p := &Projectile{
		Body:     Body{Bounds: physics.NewRect(695, 318, 10, 5)},
		Owner:    Right,
		Velocity: physics.Vector{X: -7},
	}

	for i := 0; i < 3; i++ {
		p.Advance()
	}

	if p.Bounds.X != 674 {
		t.Errorf("X after 3 frames = %d, want 674", p.Bounds.X)
	}
	if p.Bounds.Y != 318 {
		t.Errorf("Y changed to %d, want 318", p.Bounds.Y)
	}
}
