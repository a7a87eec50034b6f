// cmd/woosh/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/woosh/pkg/audio"
	"github.com/opd-ai/woosh/pkg/config"
	"github.com/opd-ai/woosh/pkg/engine"
	"github.com/opd-ai/woosh/pkg/input"
	"github.com/opd-ai/woosh/pkg/logging"
	"github.com/opd-ai/woosh/pkg/render"
	engorender "github.com/opd-ai/woosh/pkg/render/engo"
	"github.com/opd-ai/woosh/pkg/render/snapshot"
)

// terminal grid size; each cell covers 10x20 arena units at 900x500
const (
	terminalCols = 90
	terminalRows = 25
)

type options struct {
	configPath    string
	createDefault bool
	renderer      string
	assets        string
	script        string
	snapshotDir   string
	background    string
	snapshotEvery uint64
	maxFrames     int
}

func main() {
	logger := logging.NewLogger()

	var opts options
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file")
	flag.BoolVar(&opts.createDefault, "default", false, "Create default configuration file")
	flag.StringVar(&opts.renderer, "renderer", "engo", "Renderer type: 'engo', 'terminal', 'snapshot' or 'null'")
	flag.StringVar(&opts.assets, "assets", config.AssetsRoot("assets"), "Directory holding the sound clips and sprite images")
	flag.StringVar(&opts.script, "script", "", "JSON input script for headless renderers")
	flag.StringVar(&opts.snapshotDir, "snapshot-dir", "snapshots", "Directory for snapshot PNGs")
	flag.StringVar(&opts.background, "background", "", "Background image for the snapshot renderer")
	flag.Uint64Var(&opts.snapshotEvery, "snapshot-every", 60, "Save every Nth frame with the snapshot renderer (0 saves banners only)")
	flag.IntVar(&opts.maxFrames, "max-frames", 0, "Quit after this many frames of play (0 means no limit)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", opts.configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", opts.configPath,
		)
		return
	}

	gameConfig, err := loadConfig(ctx, opts.configPath, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", opts.configPath)
		os.Exit(1)
	}

	if err := run(ctx, opts, gameConfig, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Game stopped with error", err, "renderer", opts.renderer)
		os.Exit(1)
	}
	logger.Info(ctx, "Goodbye")
}

// loadConfig reads path, falling back to the defaults when it does not
// exist, then applies environment overrides and validates the result.
func loadConfig(ctx context.Context, path string, logger *logging.Logger) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(gameConfig); err != nil {
		return nil, logging.WrapError(err, "failed to apply environment configuration")
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, err
	}
	return gameConfig, nil
}

func run(ctx context.Context, opts options, cfg *config.GameConfig, logger *logging.Logger) error {
	if opts.renderer == "engo" {
		logger.Info(ctx, "Starting engo window",
			"title", cfg.Window.Title,
			"assets", opts.assets,
		)
		return engorender.Run(ctx, cfg, opts.assets, logger)
	}

	renderer, err := headlessRenderer(opts, cfg, logger)
	if err != nil {
		return err
	}

	var source input.Source = input.Idle{}
	if opts.script != "" {
		script, err := input.LoadScript(opts.script)
		if err != nil {
			return err
		}
		source = script
	}

	game, err := engine.NewGame(engine.Collaborators{
		Renderer: renderer,
		Input:    input.Limit(source, opts.maxFrames),
		Audio:    audio.NewSilent(logger),
	}, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info(ctx, "Starting headless game",
		"renderer", opts.renderer,
		"script", opts.script,
		"max_frames", opts.maxFrames,
	)
	if err := game.Run(ctx); err != nil {
		return err
	}

	if r, ok := renderer.(*snapshot.Renderer); ok {
		logger.Info(ctx, "Snapshots written", "count", len(r.Saved()), "dir", opts.snapshotDir)
		return r.Err()
	}
	if r, ok := renderer.(*render.TerminalRenderer); ok {
		return r.Err()
	}
	return nil
}

func headlessRenderer(opts options, cfg *config.GameConfig, logger *logging.Logger) (render.Renderer, error) {
	palette := cfg.Colors.Palette()
	fonts := render.FontSizes{Health: cfg.Fonts.HealthSize, Winner: cfg.Fonts.WinnerSize}

	switch opts.renderer {
	case "null":
		return render.NewNullRenderer(logger, fonts), nil
	case "terminal":
		r := render.NewTerminalRenderer(os.Stdout, terminalCols, terminalRows, cfg.Window.Width, cfg.Window.Height)
		r.SetGlyph(palette.Divider, '|')
		r.SetGlyph(palette.Left, 'Y')
		r.SetGlyph(palette.Right, 'R')
		r.SetANSI(true)
		return r, nil
	case "snapshot":
		sprites := render.SpritePaths(opts.assets, cfg.Images)
		if opts.background != "" {
			delete(sprites, render.Background)
		}
		return snapshot.NewRenderer(snapshot.Options{
			Width:           cfg.Window.Width,
			Height:          cfg.Window.Height,
			Background:      palette.Background,
			BackgroundImage: opts.background,
			Sprites:         sprites,
			Fonts:           fonts,
			Dir:             opts.snapshotDir,
			Every:           opts.snapshotEvery,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown renderer %q", opts.renderer)
	}
}
