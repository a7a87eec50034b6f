package snapshot

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/opd-ai/woosh/pkg/logging"
	"github.com/opd-ai/woosh/pkg/physics"
	"github.com/opd-ai/woosh/pkg/render"
)

var (
	navy   = color.RGBA{R: 0x0b, G: 0x0b, B: 0x1e, A: 0xff}
	yellow = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	white  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	if opts.Width == 0 {
		opts.Width, opts.Height = 900, 500
	}
	if opts.Background == nil {
		opts.Background = navy
	}
	opts.Fonts = render.DefaultFontSizes
	r, err := NewRenderer(opts, logging.Discard())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestNewRenderer_InvalidSize(t *testing.T) {
	if _, err := NewRenderer(Options{Width: 0, Height: 500}, logging.Discard()); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestNewRenderer_MissingBackground(t *testing.T) {
	opts := Options{Width: 10, Height: 10, BackgroundImage: filepath.Join(t.TempDir(), "missing.png")}
	if _, err := NewRenderer(opts, logging.Discard()); err == nil {
		t.Error("expected error for missing background image")
	}
}

func TestRenderer_DrawRect(t *testing.T) {
	r := newTestRenderer(t, Options{})
	r.Clear()
	r.DrawRect(physics.NewRect(100, 300, 55, 40), yellow)
	r.Present()

	img := r.Image()
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"inside", 120, 320, yellow},
		{"top left corner", 100, 300, yellow},
		{"bottom right corner", 154, 339, yellow},
		{"left of rect", 99, 320, navy},
		{"below rect", 120, 340, navy},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rgbaAt(img, tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRenderer_ClearRepaints(t *testing.T) {
	r := newTestRenderer(t, Options{})
	r.DrawRect(physics.NewRect(0, 0, 900, 500), yellow)
	r.Clear()
	if got := rgbaAt(r.Image(), 450, 250); got != navy {
		t.Errorf("pixel after Clear = %v, want %v", got, navy)
	}
}

func TestRenderer_BackgroundImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")
	if err := imaging.Save(imaging.New(4, 2, white), path); err != nil {
		t.Fatalf("failed to write background: %v", err)
	}

	r := newTestRenderer(t, Options{Width: 90, Height: 50, BackgroundImage: path})
	r.Clear()
	if got := rgbaAt(r.Image(), 45, 25); got != white {
		t.Errorf("background pixel = %v, want %v", got, white)
	}
}

func TestRenderer_MeasureText(t *testing.T) {
	r := newTestRenderer(t, Options{})

	hw, hh := r.MeasureText("Yellow Wins!", render.HealthFont)
	ww, wh := r.MeasureText("Yellow Wins!", render.WinnerFont)
	if hw <= 0 || hh <= 0 {
		t.Fatalf("health text size %dx%d should be positive", hw, hh)
	}
	if ww <= hw || wh <= hh {
		t.Errorf("winner text %dx%d should be larger than health text %dx%d", ww, wh, hw, hh)
	}
	if empty, _ := r.MeasureText("", render.HealthFont); empty != 0 {
		t.Errorf("empty text width = %d, want 0", empty)
	}
}

func TestRenderer_DrawTextPaintsInsideBox(t *testing.T) {
	r := newTestRenderer(t, Options{})
	r.Clear()
	at := physics.Point{X: 10, Y: 10}
	r.DrawText("Health: 10", render.HealthFont, white, at)

	w, h := r.MeasureText("Health: 10", render.HealthFont)
	img := r.Image()
	painted := false
	for y := at.Y; y < at.Y+h && !painted; y++ {
		for x := at.X; x < at.X+w; x++ {
			if rgbaAt(img, x, y) != navy {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("expected text pixels inside the measured box")
	}
	if got := rgbaAt(img, at.X+w+20, at.Y+h/2); got != navy {
		t.Errorf("pixel right of the text = %v, want background", got)
	}
}

func TestRenderer_SavesEveryNthAndBanners(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	r := newTestRenderer(t, Options{Dir: dir, Every: 2})

	for i := 0; i < 4; i++ {
		r.Clear()
		r.Present()
	}
	r.Clear()
	r.DrawText("Red Wins!", render.WinnerFont, white, physics.Point{X: 300, Y: 200})
	r.Present()

	want := []string{"frame-000002.png", "frame-000004.png", "frame-000005.png"}
	saved := r.Saved()
	if len(saved) != len(want) {
		t.Fatalf("saved %v, want %v", saved, want)
	}
	for i, name := range want {
		if filepath.Base(saved[i]) != name {
			t.Errorf("saved[%d] = %s, want %s", i, saved[i], name)
		}
	}

	img, err := imaging.Open(saved[0])
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 900 || b.Dy() != 500 {
		t.Errorf("snapshot size = %dx%d, want 900x500", b.Dx(), b.Dy())
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}
}

func TestRenderer_NoDirSavesNothing(t *testing.T) {
	r := newTestRenderer(t, Options{Every: 1})
	r.Clear()
	r.Present()
	if len(r.Saved()) != 0 || r.Frames() != 1 {
		t.Errorf("saved %v frames %d", r.Saved(), r.Frames())
	}
}

func TestRenderer_SaveError(t *testing.T) {
	dir := t.TempDir()
	r := newTestRenderer(t, Options{Dir: dir, Every: 1})
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("failed to remove dir: %v", err)
	}

	r.Clear()
	r.Present()
	if r.Err() == nil {
		t.Error("expected an error saving into a removed directory")
	}
}

// writeShip saves a 20x40 image whose upper half is red and lower half,
// the nose, is blue
func writeShip(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 20; x++ {
			c := color.NRGBA{R: 0xff, A: 0xff}
			if y >= 20 {
				c = color.NRGBA{B: 0xff, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, "ship.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save ship: %v", err)
	}
	return path
}

func TestRenderer_DrawSprite(t *testing.T) {
	ship := writeShip(t, t.TempDir())
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	r := newTestRenderer(t, Options{Sprites: map[render.Sprite]string{
		render.LeftShip:   ship,
		render.RightShip:  ship,
		render.Background: filepath.Join(t.TempDir(), "missing.png"),
	}})

	r.Clear()
	if r.DrawSprite(render.Background, physics.NewRect(0, 0, 900, 500)) {
		t.Error("missing background should not draw")
	}
	if !r.DrawSprite(render.LeftShip, physics.NewRect(100, 300, 40, 20)) {
		t.Fatal("left ship should draw")
	}
	if !r.DrawSprite(render.RightShip, physics.NewRect(700, 300, 40, 20)) {
		t.Fatal("right ship should draw")
	}
	img := r.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"left ship tail", 105, 310, red},
		{"left ship nose faces right", 134, 310, blue},
		{"right ship nose faces left", 705, 310, blue},
		{"right ship tail", 734, 310, red},
		{"background untouched", 50, 50, navy},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rgbaAt(img, tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}
