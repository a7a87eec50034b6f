// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/woosh/pkg/physics"
	"github.com/opd-ai/woosh/pkg/render"
)

// spriteSystem is the part of common.RenderSystem the renderer feeds
type spriteSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

// sprite is one pooled drawable entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// pool hands out sprites in draw order, reusing those of earlier frames
type pool struct {
	system  spriteSystem
	sprites []*sprite
	used    int
	// layer is the z-index of the first sprite; later ones stack above it
	layer float32
	newer func() common.Drawable
}

func (p *pool) acquire() *sprite {
	if p.used == len(p.sprites) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.RenderComponent = common.RenderComponent{
			Drawable: p.newer(),
			Scale:    engo.Point{X: 1, Y: 1},
		}
		s.SetZIndex(p.layer + float32(len(p.sprites)))
		p.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		p.sprites = append(p.sprites, s)
	}
	s := p.sprites[p.used]
	p.used++
	s.Hidden = false
	return s
}

// reset hides every sprite handed out since the last reset
func (p *pool) reset() {
	for _, s := range p.sprites[:p.used] {
		s.Hidden = true
	}
	p.used = 0
}

// Pool layers. Text stays above any number of rectangles. Images sit
// below them; ships never overlap the divider and projectiles are drawn
// over ships.
const (
	textLayer  = 1 << 16
	imageLayer = -(1 << 16)
)

// MeasureFunc returns the drawn size of text in a font class
type MeasureFunc func(text string, f render.Font) (int, int)

// Renderer implements render.Renderer on top of engo's retained render
// system: each draw call positions a pooled entity and Clear hides them all.
// Text is always layered above rectangles.
type Renderer struct {
	rects   pool
	texts   pool
	images  pool
	fonts   map[render.Font]*common.Font
	sprites map[render.Sprite]*common.Texture
	measure MeasureFunc
	frames  uint64
}

// NewRenderer creates a renderer adding its entities to system. fonts may
// be nil, in which case text is measured but not drawn.
func NewRenderer(system spriteSystem, fonts map[render.Font]*common.Font, measure MeasureFunc) *Renderer {
	if measure == nil {
		measure = render.DefaultFontSizes.Monospace
	}
	return &Renderer{
		rects: pool{system: system, newer: func() common.Drawable {
			return common.Rectangle{BorderWidth: 0, BorderColor: color.Transparent}
		}},
		texts: pool{system: system, layer: textLayer, newer: func() common.Drawable {
			return common.Text{}
		}},
		images: pool{system: system, layer: imageLayer, newer: func() common.Drawable {
			return common.Texture{}
		}},
		fonts:   fonts,
		measure: measure,
	}
}

// SetSprites sets the textures DrawSprite draws
func (r *Renderer) SetSprites(sprites map[render.Sprite]*common.Texture) {
	r.sprites = sprites
}

// Clear implements render.Renderer. The background is the engo clear color.
func (r *Renderer) Clear() {
	r.rects.reset()
	r.texts.reset()
	r.images.reset()
}

// DrawRect implements render.Renderer
func (r *Renderer) DrawRect(bounds physics.Rect, c color.Color) {
	if bounds.Empty() {
		return
	}
	s := r.rects.acquire()
	s.Color = c
	s.Position = engo.Point{X: float32(bounds.X), Y: float32(bounds.Y)}
	s.Width = float32(bounds.W)
	s.Height = float32(bounds.H)
}

// DrawSprite implements render.SpriteRenderer, scaling the texture to bounds
func (r *Renderer) DrawSprite(sp render.Sprite, bounds physics.Rect) bool {
	tex := r.sprites[sp]
	if tex == nil || tex.Width() == 0 || tex.Height() == 0 {
		return false
	}
	if bounds.Empty() {
		return true
	}

	s := r.images.acquire()
	s.Drawable = *tex
	s.Scale = engo.Point{X: float32(bounds.W) / tex.Width(), Y: float32(bounds.H) / tex.Height()}
	s.Position = engo.Point{X: float32(bounds.X), Y: float32(bounds.Y)}
	s.Width = float32(bounds.W)
	s.Height = float32(bounds.H)
	return true
}

// DrawText implements render.Renderer
func (r *Renderer) DrawText(text string, f render.Font, c color.Color, at physics.Point) {
	font := r.fonts[f]
	if font == nil {
		return
	}
	w, h := r.measure(text, f)

	s := r.texts.acquire()
	s.Drawable = common.Text{Font: font, Text: text}
	s.Color = c
	s.Position = engo.Point{X: float32(at.X), Y: float32(at.Y)}
	s.Width = float32(w)
	s.Height = float32(h)
}

// MeasureText implements render.Renderer
func (r *Renderer) MeasureText(text string, f render.Font) (int, int) {
	return r.measure(text, f)
}

// Present implements render.Renderer. Drawing happens in the render system.
func (r *Renderer) Present() {
	r.frames++
}

// Frames returns the number of presented frames
func (r *Renderer) Frames() uint64 {
	return r.frames
}
