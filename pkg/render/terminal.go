package render

import (
	"image/color"
	"io"
	"strings"

	"github.com/opd-ai/woosh/pkg/physics"
)

// luminanceRamp maps dark to bright colors for rectangles without a glyph
const luminanceRamp = " .:-=+*#%@"

// TerminalRenderer provides a simple ASCII-based rendering for terminals.
// The arena is down-sampled onto a grid of character cells.
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
	buffer [][]rune
	scaleX float64
	scaleY float64
	glyphs map[color.RGBA]rune
	ansi   bool
	err    error
}

// NewTerminalRenderer creates a terminal renderer drawing an arenaW×arenaH
// arena into cols×rows character cells written to out.
func NewTerminalRenderer(out io.Writer, cols, rows, arenaW, arenaH int) *TerminalRenderer {
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = make([]rune, cols)
	}

	return &TerminalRenderer{
		out:    out,
		width:  cols,
		height: rows,
		buffer: buffer,
		scaleX: float64(arenaW) / float64(cols),
		scaleY: float64(arenaH) / float64(rows),
		glyphs: make(map[color.RGBA]rune),
	}
}

// SetGlyph makes rectangles of color c draw with r
func (r *TerminalRenderer) SetGlyph(c color.Color, glyph rune) {
	r.glyphs[toRGBA(c)] = glyph
}

// SetANSI enables clearing the terminal before each frame
func (r *TerminalRenderer) SetANSI(enabled bool) {
	r.ansi = enabled
}

// Err returns the first error writing a frame, if any
func (r *TerminalRenderer) Err() error {
	return r.err
}

// worldToCell converts arena coordinates to cell coordinates
func (r *TerminalRenderer) worldToCell(x, y int) (int, int) {
	return int(float64(x) / r.scaleX), int(float64(y) / r.scaleY)
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// DrawRect implements Renderer
func (r *TerminalRenderer) DrawRect(bounds physics.Rect, c color.Color) {
	if bounds.Empty() {
		return
	}
	glyph := r.glyphFor(c)

	x0, y0 := r.worldToCell(bounds.X, bounds.Y)
	x1, y1 := r.worldToCell(bounds.Right()-1, bounds.Bottom()-1)
	for y := max(y0, 0); y <= y1 && y < r.height; y++ {
		for x := max(x0, 0); x <= x1 && x < r.width; x++ {
			r.buffer[y][x] = glyph
		}
	}
}

// DrawText implements Renderer, one character per cell
func (r *TerminalRenderer) DrawText(text string, font Font, c color.Color, at physics.Point) {
	x, y := r.worldToCell(at.X, at.Y)
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range text {
		if x >= 0 && x < r.width {
			r.buffer[y][x] = ch
		}
		x++
	}
}

// MeasureText implements Renderer. Text occupies one cell row regardless
// of font, so the result is the arena size of len(text) cells.
func (r *TerminalRenderer) MeasureText(text string, font Font) (int, int) {
	n := len([]rune(text))
	return int(float64(n) * r.scaleX), int(r.scaleY)
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	var sb strings.Builder

	if r.ansi {
		sb.WriteString("\033[H\033[2J")
	}

	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")

	if _, err := io.WriteString(r.out, sb.String()); err != nil && r.err == nil {
		r.err = err
	}
}

// glyphFor returns the registered glyph for c, or a luminance ramp glyph
func (r *TerminalRenderer) glyphFor(c color.Color) rune {
	rgba := toRGBA(c)
	if glyph, ok := r.glyphs[rgba]; ok {
		return glyph
	}
	lum := (299*int(rgba.R) + 587*int(rgba.G) + 114*int(rgba.B)) / 1000
	return rune(luminanceRamp[lum*(len(luminanceRamp)-1)/255])
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
