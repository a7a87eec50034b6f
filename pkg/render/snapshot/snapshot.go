// Package snapshot renders frames offscreen and saves selected ones as PNG.
package snapshot

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/woosh/pkg/logging"
	"github.com/opd-ai/woosh/pkg/physics"
	"github.com/opd-ai/woosh/pkg/render"
)

// Options configures a snapshot Renderer
type Options struct {
	Width  int
	Height int
	// Background fills the canvas when no background image is set
	Background color.Color
	// BackgroundImage is an optional image scaled to cover the canvas
	BackgroundImage string
	// Sprites are image files for DrawSprite. Files that fail to load
	// are logged and left out.
	Sprites map[render.Sprite]string
	Fonts   render.FontSizes
	// Dir receives the PNG files. Empty disables saving.
	Dir string
	// Every saves each Nth presented frame. Frames showing the winner
	// banner are always saved.
	Every uint64
}

// Renderer draws onto a gg canvas
type Renderer struct {
	dc         *gg.Context
	background color.Color
	bgImage    image.Image
	faces      [2]font.Face
	sprites    map[render.Sprite]*spriteImage

	dir    string
	every  uint64
	frames uint64
	banner bool
	saved  []string
	err    error
	logger *logging.Logger
}

// NewRenderer creates a snapshot renderer. Fonts are the Go regular face
// embedded in golang.org/x/image.
func NewRenderer(opts Options, logger *logging.Logger) (*Renderer, error) {
	if logger == nil {
		logger = logging.NewLogger()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, logging.WrapError(err, "failed to parse font")
	}

	r := &Renderer{
		dc:         gg.NewContext(opts.Width, opts.Height),
		background: opts.Background,
		dir:        opts.Dir,
		every:      opts.Every,
		sprites:    make(map[render.Sprite]*spriteImage),
		logger:     logger,
	}
	for _, f := range []render.Font{render.HealthFont, render.WinnerFont} {
		r.faces[f] = truetype.NewFace(ttf, &truetype.Options{
			Size:    opts.Fonts.Size(f),
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	if opts.BackgroundImage != "" {
		img, err := imaging.Open(opts.BackgroundImage)
		if err != nil {
			return nil, logging.WrapError(err, "failed to load background %s", opts.BackgroundImage)
		}
		r.bgImage = imaging.Fill(img, opts.Width, opts.Height, imaging.Center, imaging.Lanczos)
	}

	for sprite, path := range opts.Sprites {
		img, err := render.LoadSprite(sprite, path)
		if err != nil {
			logger.Warn(context.Background(), "sprite unavailable", "sprite", sprite.String(), "path", path, "error", err)
			continue
		}
		r.sprites[sprite] = &spriteImage{src: img}
	}

	if r.dir != "" {
		if err := os.MkdirAll(r.dir, 0o755); err != nil {
			return nil, logging.WrapError(err, "failed to create snapshot dir")
		}
	}

	return r, nil
}

// Clear implements render.Renderer
func (r *Renderer) Clear() {
	r.banner = false
	if r.bgImage != nil {
		r.dc.DrawImage(r.bgImage, 0, 0)
		return
	}
	r.dc.SetColor(r.background)
	r.dc.Clear()
}

// DrawRect implements render.Renderer
func (r *Renderer) DrawRect(bounds physics.Rect, c color.Color) {
	if bounds.Empty() {
		return
	}
	r.dc.SetColor(c)
	r.dc.DrawRectangle(float64(bounds.X), float64(bounds.Y), float64(bounds.W), float64(bounds.H))
	r.dc.Fill()
}

// DrawSprite implements render.SpriteRenderer. Images are stretched to
// bounds.
func (r *Renderer) DrawSprite(s render.Sprite, bounds physics.Rect) bool {
	sprite, ok := r.sprites[s]
	if !ok {
		return false
	}
	if !bounds.Empty() {
		r.dc.DrawImage(sprite.fit(bounds.W, bounds.H), bounds.X, bounds.Y)
	}
	return true
}

// DrawText implements render.Renderer
func (r *Renderer) DrawText(text string, f render.Font, c color.Color, at physics.Point) {
	if f == render.WinnerFont {
		r.banner = true
	}
	r.dc.SetFontFace(r.face(f))
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(text, float64(at.X), float64(at.Y), 0, 1)
}

// MeasureText implements render.Renderer
func (r *Renderer) MeasureText(text string, f render.Font) (int, int) {
	r.dc.SetFontFace(r.face(f))
	w, h := r.dc.MeasureString(text)
	return int(w + 0.5), int(h + 0.5)
}

// Present implements render.Renderer
func (r *Renderer) Present() {
	r.frames++
	if r.dir == "" {
		return
	}
	if !r.banner && (r.every == 0 || r.frames%r.every != 0) {
		return
	}

	path := filepath.Join(r.dir, fmt.Sprintf("frame-%06d.png", r.frames))
	if err := imaging.Save(r.dc.Image(), path); err != nil {
		if r.err == nil {
			r.err = err
		}
		r.logger.Warn(context.Background(), "failed to save snapshot", "path", path, "error", err)
		return
	}
	r.saved = append(r.saved, path)
}

// Image returns the canvas as last drawn
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// Saved returns the paths written so far
func (r *Renderer) Saved() []string {
	return r.saved
}

// Frames returns the number of presented frames
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Err returns the first error saving a frame, if any
func (r *Renderer) Err() error {
	return r.err
}

// spriteImage keeps a loaded sprite and its last resized copy
type spriteImage struct {
	src    *image.NRGBA
	fitted *image.NRGBA
}

func (s *spriteImage) fit(w, h int) *image.NRGBA {
	if s.fitted == nil || s.fitted.Bounds().Dx() != w || s.fitted.Bounds().Dy() != h {
		s.fitted = imaging.Resize(s.src, w, h, imaging.Lanczos)
	}
	return s.fitted
}

func (r *Renderer) face(f render.Font) font.Face {
	if f == render.WinnerFont {
		return r.faces[render.WinnerFont]
	}
	return r.faces[render.HealthFont]
}
