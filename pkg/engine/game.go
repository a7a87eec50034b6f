// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/opd-ai/woosh/pkg/audio"
	"github.com/opd-ai/woosh/pkg/config"
	"github.com/opd-ai/woosh/pkg/entity"
	"github.com/opd-ai/woosh/pkg/event"
	"github.com/opd-ai/woosh/pkg/input"
	"github.com/opd-ai/woosh/pkg/logging"
	"github.com/opd-ai/woosh/pkg/render"
)

// Status is the outcome of one frame
type Status int

const (
	// StatusRunning means the match is in progress
	StatusRunning Status = iota
	// StatusHolding means the winner banner is on screen
	StatusHolding
	// StatusQuit means the player asked to leave
	StatusQuit
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusHolding:
		return "holding"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ErrMissingCollaborator is returned by NewGame when a required
// collaborator is nil.
var ErrMissingCollaborator = errors.New("missing collaborator")

// Collaborators are the platform services a Game draws on
type Collaborators struct {
	Renderer render.Renderer
	Input    input.Source
	// Audio defaults to a silent sink
	Audio audio.Sink
	// Clock defaults to RealClock
	Clock Clock
}

// Game owns the state of a two-ship duel and advances it one frame at a time
type Game struct {
	Config   *config.GameConfig
	Arena    Arena
	Match    *Match
	EventBus *event.Bus

	renderer render.Renderer
	input    input.Source
	audio    audio.Sink
	clock    Clock
	logger   *logging.Logger

	cannon  entity.Cannon
	palette config.Palette
	hits    event.Queue

	// Frames counts every frame since the game was created
	Frames    uint64
	Matches   int
	announced bool
	holdUntil time.Time
}

// NewGame creates a game with a fresh match. cfg must already be valid.
func NewGame(collab Collaborators, cfg *config.GameConfig, logger *logging.Logger) (*Game, error) {
	if cfg == nil {
		return nil, logging.WrapError(ErrMissingCollaborator, "game config")
	}
	if collab.Renderer == nil {
		return nil, logging.WrapError(ErrMissingCollaborator, "renderer")
	}
	if collab.Input == nil {
		return nil, logging.WrapError(ErrMissingCollaborator, "input source")
	}
	if logger == nil {
		logger = logging.NewLogger()
	}
	if collab.Audio == nil {
		collab.Audio = audio.NewSilent(logger)
	}
	if collab.Clock == nil {
		collab.Clock = RealClock()
	}

	g := &Game{
		Config:   cfg,
		Arena:    NewArena(cfg),
		EventBus: event.NewEventBus(),
		renderer: collab.Renderer,
		input:    collab.Input,
		audio:    collab.Audio,
		clock:    collab.Clock,
		logger:   logger,
		cannon: entity.Cannon{
			Width:   cfg.Projectiles.Width,
			Height:  cfg.Projectiles.Height,
			Speed:   cfg.Projectiles.Speed,
			MaxLive: cfg.Projectiles.MaxPerSide,
		},
		palette: cfg.Colors.Palette(),
	}
	g.Match = NewMatch(cfg)
	return g, nil
}

// Holding reports whether the winner banner is on screen
func (g *Game) Holding() bool {
	return !g.holdUntil.IsZero()
}

// HoldRemaining returns how long the winner banner stays up
func (g *Game) HoldRemaining() time.Duration {
	if !g.Holding() {
		return 0
	}
	return max(g.holdUntil.Sub(g.clock.Now()), 0)
}

// PendingHits returns the number of hits waiting for the next frame
func (g *Game) PendingHits() int {
	return g.hits.Len()
}

// Frame runs one iteration of the game loop.
func (g *Game) Frame(ctx context.Context) Status {
	g.Frames++

	if g.Holding() {
		if g.clock.Now().Before(g.holdUntil) {
			return StatusHolding
		}
		g.holdUntil = time.Time{}
	}

	mctx := logging.WithMatchID(ctx, g.Match.ID)
	if !g.announced {
		g.announceMatch(mctx)
	}

	if quit := g.collectEvents(mctx); quit {
		g.logger.Info(mctx, "quit requested", "frame", g.Frames)
		return StatusQuit
	}

	if winner, ok := g.Match.Winner(); ok {
		g.endMatch(mctx, winner)
		return StatusHolding
	}

	g.moveShips(g.input.Held())
	g.advanceProjectiles(mctx)
	g.draw()

	g.Match.Frames++
	return StatusRunning
}

// Run drives Frame at the configured rate until the player quits or ctx is
// cancelled. While the winner banner is up it blocks for the rest of the hold.
func (g *Game) Run(ctx context.Context) error {
	limiter := NewLimiter(g.clock, g.Config.FrameDuration())
	g.logger.Info(ctx, "game loop started",
		"fps", g.Config.Rules.FPS,
		"winner_hold", g.Config.WinnerHold().String(),
	)

	for {
		if err := ctx.Err(); err != nil {
			g.logger.Info(ctx, "game loop cancelled", "frames", g.Frames)
			return err
		}

		limiter.Wait()
		switch g.Frame(ctx) {
		case StatusQuit:
			return nil
		case StatusHolding:
			g.clock.Sleep(g.HoldRemaining())
		}
	}
}

// collectEvents handles the input events of this frame followed by the
// hits queued during the previous one. It returns true on Quit.
func (g *Game) collectEvents(ctx context.Context) bool {
	for _, ev := range g.input.PollEvents() {
		switch ev.Kind {
		case input.Quit:
			return true
		case input.KeyPressed:
			g.handleKeyPress(ctx, ev.Key)
		}
	}

	for _, ev := range g.hits.Drain() {
		if hit, ok := ev.(*event.ShipEvent); ok {
			g.applyHit(ctx, hit.Side)
		}
	}
	return false
}

func (g *Game) handleKeyPress(ctx context.Context, key input.Key) {
	for _, side := range entity.Sides {
		if key == ControlsFor(side).Fire {
			g.fire(ctx, side)
		}
	}
}

// fire spawns a projectile for side unless it is at the projectile cap
func (g *Game) fire(ctx context.Context, side entity.Side) {
	ship := g.Match.Ship(side)
	p := g.cannon.Fire(ship, g.Match.Live(side))
	if p == nil {
		g.Match.Stats.Blocked[side]++
		g.logger.Debug(ctx, "fire ignored at cap", "side", side.String(), "live", g.Match.Live(side))
		return
	}

	g.Match.Projectiles[side] = append(g.Match.Projectiles[side], p)
	g.Match.Stats.Shots[side]++
	g.audio.Play(audio.Fire)
	g.logger.Debug(ctx, "projectile fired",
		"side", side.String(),
		"x", p.Bounds.X,
		"y", p.Bounds.Y,
	)
	g.EventBus.Publish(event.NewShipEvent(event.ProjectileFired, g, side, ship.Health))
}

// applyHit removes one health point from the struck ship with its sound
func (g *Game) applyHit(ctx context.Context, struck entity.Side) {
	ship := g.Match.Ship(struck)
	ship.TakeHit()
	g.audio.Play(audio.Hit)
	g.Match.Stats.Hits[struck.Opponent()]++

	g.logger.Debug(ctx, "ship hit", "side", struck.String(), "health", ship.Health)
	g.EventBus.Publish(event.NewShipEvent(event.ShipHit, g, struck, ship.Health))
}

func (g *Game) announceMatch(ctx context.Context) {
	g.announced = true
	g.Matches++
	g.logger.Info(ctx, "match started", "match", g.Matches)
	g.EventBus.Publish(event.NewMatchStartedEvent(g, g.Match.ID))
}

// endMatch shows the winner, starts the hold and sets up the next match
func (g *Game) endMatch(ctx context.Context, winner entity.Side) {
	banner := winner.Label() + " Wins!"
	g.drawWinner(banner)

	m := g.Match
	g.logger.Info(ctx, "match ended",
		"winner", winner.String(),
		"banner", banner,
		"frames", m.Frames,
		"left_shots", m.Stats.Shots[entity.Left],
		"right_shots", m.Stats.Shots[entity.Right],
		"left_hits", m.Stats.Hits[entity.Left],
		"right_hits", m.Stats.Hits[entity.Right],
		"left_blocked", m.Stats.Blocked[entity.Left],
		"right_blocked", m.Stats.Blocked[entity.Right],
	)
	g.EventBus.Publish(event.NewMatchEndedEvent(g, m.ID, winner, m.Frames))

	g.holdUntil = g.clock.Now().Add(g.Config.WinnerHold())
	g.resetMatch()
}

// resetMatch discards the finished match and anything still pending from it
func (g *Game) resetMatch() {
	g.hits.Clear()
	g.Match = NewMatch(g.Config)
	g.announced = false
}
