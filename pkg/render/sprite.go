package render

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/opd-ai/woosh/pkg/config"
	"github.com/opd-ai/woosh/pkg/physics"
)

// Sprite selects one of the images the arena can be drawn with
type Sprite int

const (
	// Background covers the whole arena
	Background Sprite = iota
	// LeftShip is the left player's ship, facing right
	LeftShip
	// RightShip is the right player's ship, facing left
	RightShip
)

// Sprites lists every sprite in draw order
var Sprites = []Sprite{Background, LeftShip, RightShip}

// String returns the sprite name
func (s Sprite) String() string {
	switch s {
	case Background:
		return "background"
	case LeftShip:
		return "left_ship"
	case RightShip:
		return "right_ship"
	default:
		return "unknown"
	}
}

// rotation is the counterclockwise turn applied to each source image.
// Ship images are drawn nose down.
var rotation = map[Sprite]int{
	LeftShip:  90,
	RightShip: 270,
}

// SpriteRenderer is implemented by renderers that can draw images.
// DrawSprite scales s to bounds and reports false when s is not loaded,
// in which case the caller draws a placeholder.
type SpriteRenderer interface {
	DrawSprite(s Sprite, bounds physics.Rect) bool
}

// SpritePaths returns the configured image file of each sprite under root.
// Sprites with no configured file are left out.
func SpritePaths(root string, images config.ImagesConfig) map[Sprite]string {
	paths := make(map[Sprite]string, len(Sprites))
	for s, file := range map[Sprite]string{
		Background: images.Background,
		LeftShip:   images.LeftShip,
		RightShip:  images.RightShip,
	} {
		if file != "" {
			paths[s] = filepath.Join(root, file)
		}
	}
	return paths
}

// LoadSprite opens the image at path and turns it to face the way s is drawn
func LoadSprite(s Sprite, path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	switch rotation[s] {
	case 90:
		return imaging.Rotate90(img), nil
	case 270:
		return imaging.Rotate270(img), nil
	default:
		return imaging.Clone(img), nil
	}
}
