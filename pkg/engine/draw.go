package engine

import (
	"image/color"
	"strconv"

	"github.com/opd-ai/woosh/pkg/entity"
	"github.com/opd-ai/woosh/pkg/physics"
	"github.com/opd-ai/woosh/pkg/render"
)

// hudMargin is the distance of the health readouts from the window edges
const hudMargin = 10

var shipSprites = [2]render.Sprite{entity.Left: render.LeftShip, entity.Right: render.RightShip}

func (g *Game) draw() {
	g.drawScene()
	g.renderer.Present()
}

// drawScene paints the arena without presenting it
func (g *Game) drawScene() {
	r := g.renderer
	sprites, _ := r.(render.SpriteRenderer)

	r.Clear()
	if sprites != nil {
		sprites.DrawSprite(render.Background, g.Arena.Bounds())
	}
	r.DrawRect(g.Arena.Divider, g.palette.Divider)

	left := healthText(g.Match.Ship(entity.Left))
	r.DrawText(left, render.HealthFont, g.palette.Text, physics.Point{X: hudMargin, Y: hudMargin})

	right := healthText(g.Match.Ship(entity.Right))
	w, _ := r.MeasureText(right, render.HealthFont)
	r.DrawText(right, render.HealthFont, g.palette.Text, physics.Point{X: g.Arena.Width - w - hudMargin, Y: hudMargin})

	g.drawShip(sprites, entity.Left, g.palette.Left)
	g.drawShip(sprites, entity.Right, g.palette.Right)

	for _, p := range g.Match.Projectiles[entity.Right] {
		r.DrawRect(p.Bounds, g.palette.Right)
	}
	for _, p := range g.Match.Projectiles[entity.Left] {
		r.DrawRect(p.Bounds, g.palette.Left)
	}
}

// drawShip draws the ship sprite of side, or a block of c when the
// renderer has no sprite for it
func (g *Game) drawShip(sprites render.SpriteRenderer, side entity.Side, c color.Color) {
	bounds := g.Match.Ship(side).Bounds
	if sprites != nil && sprites.DrawSprite(shipSprites[side], bounds) {
		return
	}
	g.renderer.DrawRect(bounds, c)
}

// drawWinner presents the current arena with banner centered over it
func (g *Game) drawWinner(banner string) {
	g.drawScene()

	r := g.renderer
	w, h := r.MeasureText(banner, render.WinnerFont)
	at := physics.Point{X: g.Arena.Width/2 - w/2, Y: g.Arena.Height/2 - h/2}
	r.DrawText(banner, render.WinnerFont, g.palette.Text, at)
	r.Present()
}

func healthText(ship *entity.Ship) string {
	return "Health: " + strconv.Itoa(ship.Health)
}
