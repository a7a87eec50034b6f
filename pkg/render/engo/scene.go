// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/woosh/pkg/audio"
	"github.com/opd-ai/woosh/pkg/config"
	"github.com/opd-ai/woosh/pkg/engine"
	"github.com/opd-ai/woosh/pkg/logging"
)

// GameScene runs a woosh game inside an engo window
type GameScene struct {
	ctx    context.Context
	cfg    *config.GameConfig
	logger *logging.Logger

	assets   *AssetManager
	renderer *Renderer
	game     *engine.Game
	err      error
}

// NewGameScene creates a new game scene
func NewGameScene(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger) *GameScene {
	return &GameScene{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		assets: NewAssetManager(cfg, logger),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "WooshScene"
}

// Preload loads the font, sound clips and sprite images (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.assets.LoadAssets(); err != nil {
		scene.fail(err)
	}
}

// Setup builds the systems and the game (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	if scene.err != nil {
		return
	}
	world, _ := u.(*ecs.World)
	if world == nil {
		scene.fail(logging.WrapError(engine.ErrMissingCollaborator, "ecs world"))
		return
	}

	common.SetBackground(scene.cfg.Colors.Palette().Background)

	renderSystem := &common.RenderSystem{}
	audioSystem := &common.AudioSystem{}
	world.AddSystem(renderSystem)
	world.AddSystem(audioSystem)

	fonts, err := scene.assets.Fonts()
	if err != nil {
		scene.fail(err)
		return
	}
	scene.renderer = NewRenderer(renderSystem, fonts, Measure(fonts))
	sprites := scene.assets.Sprites()
	scene.renderer.SetSprites(sprites)

	sink := NewAudioSink(audioSystem, scene.assets.Clips(), scene.cfg.Audio.Volume, scene.logger)
	game, err := engine.NewGame(engine.Collaborators{
		Renderer: scene.renderer,
		Input:    NewKeyboardSource(),
		Audio:    sink,
	}, scene.cfg, scene.logger)
	if err != nil {
		scene.fail(err)
		return
	}
	scene.game = game

	world.AddSystem(&loopSystem{ctx: scene.ctx, game: game, logger: scene.logger})
	scene.logger.Info(scene.ctx, "engo scene ready",
		"fire_clip", sink.Loaded(audio.Fire),
		"hit_clip", sink.Loaded(audio.Hit),
		"sprites", len(sprites),
	)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.logger.Info(scene.ctx, "engo scene exiting")
}

// Game returns the game once Setup has run
func (scene *GameScene) Game() *engine.Game {
	return scene.game
}

// Err returns the error that stopped the scene, if any
func (scene *GameScene) Err() error {
	return scene.err
}

func (scene *GameScene) fail(err error) {
	scene.err = err
	scene.logger.Error(scene.ctx, "engo scene failed", err)
	engo.Exit()
}

// loopSystem advances the game once per engo update
type loopSystem struct {
	ctx    context.Context
	game   *engine.Game
	logger *logging.Logger
}

// Update runs one game frame and leaves engo on quit or cancellation
func (l *loopSystem) Update(dt float32) {
	if err := l.ctx.Err(); err != nil {
		l.logger.Info(l.ctx, "engo loop cancelled", "error", err)
		engo.Exit()
		return
	}
	if l.game.Frame(l.ctx) == engine.StatusQuit {
		l.logger.Info(l.ctx, "leaving engo loop", "frames", l.game.Frames)
		engo.Exit()
	}
}

// Remove satisfies the ecs.System interface
func (l *loopSystem) Remove(basic ecs.BasicEntity) {}

// Run opens the window and blocks until the game quits
func Run(ctx context.Context, cfg *config.GameConfig, assetsRoot string, logger *logging.Logger) error {
	scene := NewGameScene(ctx, cfg, logger)

	opts := engo.RunOptions{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		FPSLimit:     cfg.Rules.FPS,
		AssetsRoot:   assetsRoot,
		NotResizable: true,
		VSync:        true,
	}

	engo.Run(opts, scene)
	return scene.Err()
}
