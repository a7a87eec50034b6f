// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfig is returned by Validate for inconsistent settings.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig contains every tunable constant of a woosh session
type GameConfig struct {
	Window      WindowConfig     `json:"window"`
	Arena       ArenaConfig      `json:"arena"`
	Ships       ShipConfig       `json:"ships"`
	Projectiles ProjectileConfig `json:"projectiles"`
	Rules       RulesConfig      `json:"rules"`
	Audio       AudioConfig      `json:"audio"`
	Images      ImagesConfig     `json:"images"`
	Fonts       FontConfig       `json:"fonts"`
	Colors      ColorConfig      `json:"colors"`
}

// WindowConfig describes the window; its size is also the arena size
type WindowConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ArenaConfig contains the divider and the reserved bottom strip
type ArenaConfig struct {
	DividerWidth int `json:"dividerWidth"`
	BottomMargin int `json:"bottomMargin"`
}

// PointConfig is a position in arena coordinates
type PointConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ShipConfig contains ship size, speed, health and start positions
type ShipConfig struct {
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	Speed          int         `json:"speed"`
	StartingHealth int         `json:"startingHealth"`
	LeftStart      PointConfig `json:"leftStart"`
	RightStart     PointConfig `json:"rightStart"`
}

// ProjectileConfig contains projectile size, speed and the per-side cap
type ProjectileConfig struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Speed      int `json:"speed"`
	MaxPerSide int `json:"maxPerSide"`
}

// RulesConfig contains frame pacing and the winner banner hold
type RulesConfig struct {
	FPS          int `json:"fps"`
	WinnerHoldMs int `json:"winnerHoldMs"`
}

// AudioConfig names the clip files under the assets root
type AudioConfig struct {
	Volume   float64 `json:"volume"`
	FireClip string  `json:"fireClip"`
	HitClip  string  `json:"hitClip"`
}

// ImagesConfig names the optional sprite files under the assets root.
// An empty or missing file is drawn as a plain rectangle or clear color.
type ImagesConfig struct {
	Background string `json:"background"`
	LeftShip   string `json:"leftShip"`
	RightShip  string `json:"rightShip"`
}

// FontConfig contains point sizes for the two text classes
type FontConfig struct {
	HealthSize float64 `json:"healthSize"`
	WinnerSize float64 `json:"winnerSize"`
}

// ColorConfig contains "#RRGGBB" colors
type ColorConfig struct {
	Background string `json:"background"`
	Divider    string `json:"divider"`
	Text       string `json:"text"`
	Left       string `json:"left"`
	Right      string `json:"right"`
}

// WinnerHold returns the banner hold as a duration
func (c *GameConfig) WinnerHold() time.Duration {
	return time.Duration(c.Rules.WinnerHoldMs) * time.Millisecond
}

// FrameDuration returns the target duration of one frame
func (c *GameConfig) FrameDuration() time.Duration {
	if c.Rules.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Rules.FPS)
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the classic 900×500 duel
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  "Woosh Woosh!",
			Width:  900,
			Height: 500,
		},
		Arena: ArenaConfig{
			DividerWidth: 10,
			BottomMargin: 15,
		},
		Ships: ShipConfig{
			Width:          55,
			Height:         40,
			Speed:          5,
			StartingHealth: 10,
			LeftStart:      PointConfig{X: 100, Y: 300},
			RightStart:     PointConfig{X: 700, Y: 300},
		},
		Projectiles: ProjectileConfig{
			Width:      10,
			Height:     5,
			Speed:      7,
			MaxPerSide: 3,
		},
		Rules: RulesConfig{
			FPS:          60,
			WinnerHoldMs: 2000,
		},
		Audio: AudioConfig{
			Volume:   0.1,
			FireClip: "sounds/fire.wav",
			HitClip:  "sounds/hit.wav",
		},
		Images: ImagesConfig{
			Background: "images/space.png",
			LeftShip:   "images/spaceship_yellow.png",
			RightShip:  "images/spaceship_red.png",
		},
		Fonts: FontConfig{
			HealthSize: 35,
			WinnerSize: 65,
		},
		Colors: ColorConfig{
			Background: "#0B0B1E",
			Divider:    "#000000",
			Text:       "#FFFFFF",
			Left:       "#FFFF00",
			Right:      "#FF0000",
		},
	}
}

// Environment variables read by ApplyEnv
const (
	EnvFPS          = "WOOSH_FPS"
	EnvWinnerHoldMs = "WOOSH_WINNER_HOLD_MS"
	EnvAudioVolume  = "WOOSH_AUDIO_VOLUME"
	EnvAssets       = "WOOSH_ASSETS"
)

// AssetsRoot returns the directory named by WOOSH_ASSETS, or fallback
// when it is unset.
func AssetsRoot(fallback string) string {
	if v := os.Getenv(EnvAssets); v != "" {
		return v
	}
	return fallback
}

// ApplyEnv overrides pacing and volume from the environment.
// Unset variables leave the config untouched.
func ApplyEnv(config *GameConfig) error {
	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvFPS, v, err)
		}
		config.Rules.FPS = fps
	}

	if v := os.Getenv(EnvWinnerHoldMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWinnerHoldMs, v, err)
		}
		config.Rules.WinnerHoldMs = ms
	}

	if v := os.Getenv(EnvAudioVolume); v != "" {
		volume, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvAudioVolume, v, err)
		}
		config.Audio.Volume = volume
	}

	return nil
}

// Validate checks that the configuration describes a playable arena:
// positive sizes and speeds, and start positions strictly inside each
// ship's half of the arena.
func (c *GameConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"arena.dividerWidth", c.Arena.DividerWidth},
		{"ships.width", c.Ships.Width},
		{"ships.height", c.Ships.Height},
		{"ships.speed", c.Ships.Speed},
		{"ships.startingHealth", c.Ships.StartingHealth},
		{"projectiles.width", c.Projectiles.Width},
		{"projectiles.height", c.Projectiles.Height},
		{"projectiles.speed", c.Projectiles.Speed},
		{"projectiles.maxPerSide", c.Projectiles.MaxPerSide},
		{"rules.fps", c.Rules.FPS},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Arena.BottomMargin < 0 {
		return fmt.Errorf("%w: arena.bottomMargin must not be negative", ErrInvalidConfig)
	}
	if c.Rules.WinnerHoldMs < 0 {
		return fmt.Errorf("%w: rules.winnerHoldMs must not be negative", ErrInvalidConfig)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}

	dividerX := c.Window.Width/2 - c.Arena.DividerWidth/2
	dividerRight := dividerX + c.Arena.DividerWidth
	floor := c.Window.Height - c.Arena.BottomMargin

	left, right := c.Ships.LeftStart, c.Ships.RightStart
	if left.X <= 0 || left.X+c.Ships.Width >= dividerX {
		return fmt.Errorf("%w: ships.leftStart.x %d outside (0, %d)", ErrInvalidConfig, left.X, dividerX-c.Ships.Width)
	}
	if right.X <= dividerRight || right.X+c.Ships.Width >= c.Window.Width {
		return fmt.Errorf("%w: ships.rightStart.x %d outside (%d, %d)", ErrInvalidConfig, right.X, dividerRight, c.Window.Width-c.Ships.Width)
	}
	for _, y := range []int{left.Y, right.Y} {
		if y <= 0 || y+c.Ships.Height >= floor {
			return fmt.Errorf("%w: ship start y %d outside (0, %d)", ErrInvalidConfig, y, floor-c.Ships.Height)
		}
	}

	for name, hex := range map[string]string{
		"background": c.Colors.Background,
		"divider":    c.Colors.Divider,
		"text":       c.Colors.Text,
		"left":       c.Colors.Left,
		"right":      c.Colors.Right,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: colors.%s: %v", ErrInvalidConfig, name, err)
		}
	}

	return nil
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// Palette holds the parsed colors of a ColorConfig
type Palette struct {
	Background color.RGBA
	Divider    color.RGBA
	Text       color.RGBA
	Left       color.RGBA
	Right      color.RGBA
}

// Palette parses the configured colors. Colors that fail to parse fall
// back to white; Validate reports them.
func (c ColorConfig) Palette() Palette {
	parse := func(s string) color.RGBA {
		rgba, err := ParseHexColor(s)
		if err != nil {
			return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		return rgba
	}
	return Palette{
		Background: parse(c.Background),
		Divider:    parse(c.Divider),
		Text:       parse(c.Text),
		Left:       parse(c.Left),
		Right:      parse(c.Right),
	}
}
