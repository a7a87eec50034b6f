// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"context"
	"image"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/woosh/pkg/audio"
	"github.com/opd-ai/woosh/pkg/config"
	"github.com/opd-ai/woosh/pkg/logging"
	"github.com/opd-ai/woosh/pkg/render"
)

// fontURL is the virtual asset path of the embedded Go regular font
const fontURL = "fonts/goregular.ttf"

// AssetManager loads the font, sound clips and sprites of a scene
type AssetManager struct {
	cfg    *config.GameConfig
	logger *logging.Logger
	clips  map[audio.Clip]string
	images map[render.Sprite]*image.NRGBA
}

// NewAssetManager creates an asset manager for cfg
func NewAssetManager(cfg *config.GameConfig, logger *logging.Logger) *AssetManager {
	return &AssetManager{
		cfg:    cfg,
		logger: logger,
		clips:  make(map[audio.Clip]string),
		images: make(map[render.Sprite]*image.NRGBA),
	}
}

// ClipURLs returns the asset path configured for each clip
func ClipURLs(cfg *config.GameConfig) map[audio.Clip]string {
	urls := make(map[audio.Clip]string)
	if cfg.Audio.FireClip != "" {
		urls[audio.Fire] = cfg.Audio.FireClip
	}
	if cfg.Audio.HitClip != "" {
		urls[audio.Hit] = cfg.Audio.HitClip
	}
	return urls
}

// LoadAssets registers the embedded font and loads the sound clips and
// sprite images found under the assets root. Missing clips and images are
// reported and left out.
func (am *AssetManager) LoadAssets() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return logging.WrapError(err, "failed to load font")
	}

	for clip, url := range ClipURLs(am.cfg) {
		if err := engo.Files.Load(url); err != nil {
			am.logger.Warn(context.Background(), "failed to load audio clip", "clip", string(clip), "url", url, "error", err)
			continue
		}
		am.clips[clip] = url
	}

	for sprite, path := range render.SpritePaths(engo.Files.GetRoot(), am.cfg.Images) {
		img, err := render.LoadSprite(sprite, path)
		if err != nil {
			am.logger.Warn(context.Background(), "failed to load sprite", "sprite", sprite.String(), "path", path, "error", err)
			continue
		}
		am.images[sprite] = img
	}
	return nil
}

// Clips returns the clips that loaded
func (am *AssetManager) Clips() map[audio.Clip]string {
	return am.clips
}

// Sprites uploads the loaded sprite images as textures. It needs the GL
// context, so it runs in Setup rather than Preload.
func (am *AssetManager) Sprites() map[render.Sprite]*common.Texture {
	textures := make(map[render.Sprite]*common.Texture, len(am.images))
	for sprite, img := range am.images {
		tex := common.NewTextureSingle(common.NewImageObject(img))
		textures[sprite] = &tex
	}
	return textures
}

// Fonts creates the two font classes. Text is rendered white and tinted
// by the draw color.
func (am *AssetManager) Fonts() (map[render.Font]*common.Font, error) {
	sizes := map[render.Font]float64{
		render.HealthFont: am.cfg.Fonts.HealthSize,
		render.WinnerFont: am.cfg.Fonts.WinnerSize,
	}

	fonts := make(map[render.Font]*common.Font, len(sizes))
	for f, size := range sizes {
		font := &common.Font{
			URL:  fontURL,
			FG:   color.White,
			Size: size,
		}
		if err := font.CreatePreloaded(); err != nil {
			return nil, logging.WrapError(err, "failed to create %s font", f)
		}
		fonts[f] = font
	}
	return fonts, nil
}

// Measure returns a MeasureFunc backed by the font metrics
func Measure(fonts map[render.Font]*common.Font) MeasureFunc {
	return func(text string, f render.Font) (int, int) {
		font, ok := fonts[f]
		if !ok {
			return render.DefaultFontSizes.Monospace(text, f)
		}
		w, h, _ := font.TextDimensions(text)
		return w, h
	}
}
