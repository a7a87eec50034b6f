package engine

import (
	"context"

	"github.com/opd-ai/woosh/pkg/entity"
	"github.com/opd-ai/woosh/pkg/event"
)

func (g *Game) advanceProjectiles(ctx context.Context) {
	for _, side := range entity.Sides {
		target := g.Match.Ship(side.Opponent())
		g.Match.Projectiles[side] = g.advance(ctx, g.Match.Projectiles[side], target)
	}
}

// advance moves every projectile once and filters the slice in place. A
// projectile overlapping target queues a hit for the next frame; one past
// the far edge is dropped. Each projectile is visited exactly once.
func (g *Game) advance(ctx context.Context, projectiles []*entity.Projectile, target *entity.Ship) []*entity.Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		p.Advance()
		switch {
		case p.Bounds.Intersects(target.Bounds):
			g.logger.Debug(ctx, "projectile struck ship", "owner", p.Owner.String(), "x", p.Bounds.X, "y", p.Bounds.Y)
			g.hits.Post(event.NewShipEvent(event.ShipHit, g, target.Side, target.Health))
		case g.Arena.Escaped(p):
		default:
			kept = append(kept, p)
		}
	}

	clear(projectiles[len(kept):])
	return kept
}
