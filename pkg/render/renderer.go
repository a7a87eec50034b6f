// pkg/render/renderer.go
package render

import (
	"context"
	"image/color"
	"math"

	"github.com/opd-ai/woosh/pkg/logging"
	"github.com/opd-ai/woosh/pkg/physics"
)

// Font selects one of the two text sizes the game draws
type Font int

const (
	// HealthFont is the small face used for health readouts
	HealthFont Font = iota
	// WinnerFont is the large face used for the winner banner
	WinnerFont
)

// String returns the font class name
func (f Font) String() string {
	switch f {
	case HealthFont:
		return "health"
	case WinnerFont:
		return "winner"
	default:
		return "unknown"
	}
}

// FontSizes maps each font class to a point size
type FontSizes struct {
	Health float64
	Winner float64
}

// DefaultFontSizes matches the classic 35/65 point faces
var DefaultFontSizes = FontSizes{Health: 35, Winner: 65}

// Size returns the point size of f
func (s FontSizes) Size(f Font) float64 {
	if f == WinnerFont {
		return s.Winner
	}
	return s.Health
}

// Monospace estimates the drawn size of text for renderers without font
// metrics: half the point size per character, the point size as height.
func (s FontSizes) Monospace(text string, f Font) (int, int) {
	size := s.Size(f)
	w := int(math.Round(float64(len([]rune(text))) * size / 2))
	return w, int(math.Round(size))
}

// Renderer draws one frame at a time. Calls between Clear and Present
// build the frame in order; later calls paint over earlier ones.
type Renderer interface {
	// Clear paints the background over the whole frame
	Clear()
	DrawRect(bounds physics.Rect, c color.Color)
	// DrawText draws text with its top-left corner at at
	DrawText(text string, font Font, c color.Color, at physics.Point)
	// MeasureText returns the width and height text occupies when drawn
	MeasureText(text string, font Font) (w, h int)
	Present()
}

// NullRenderer is a Renderer that only logs its calls at debug level.
type NullRenderer struct {
	logger *logging.Logger
	fonts  FontSizes
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger, fonts FontSizes) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger, fonts: fonts}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called", "frame", d.frames)
}

// DrawRect implements Renderer.
func (d *NullRenderer) DrawRect(bounds physics.Rect, c color.Color) {
	d.logger.Debug(context.Background(), "DrawRect called",
		"x", bounds.X,
		"y", bounds.Y,
		"w", bounds.W,
		"h", bounds.H,
	)
}

// DrawText implements Renderer.
func (d *NullRenderer) DrawText(text string, font Font, c color.Color, at physics.Point) {
	d.logger.Debug(context.Background(), "DrawText called",
		"text", text,
		"font", font.String(),
		"x", at.X,
		"y", at.Y,
	)
}

// MeasureText implements Renderer with a fixed-width estimate.
func (d *NullRenderer) MeasureText(text string, font Font) (int, int) {
	return d.fonts.Monospace(text, font)
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called", "frame", d.frames)
	d.frames++
}

// Frames returns how many frames have been presented.
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}
