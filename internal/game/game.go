package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/timber/internal/assets"
	"chosenoffset.com/timber/internal/audio"
	"chosenoffset.com/timber/internal/core/branch"
	"chosenoffset.com/timber/internal/core/round"
	"chosenoffset.com/timber/internal/render"
	"chosenoffset.com/timber/internal/simulation"
)

// Options configures a new Game.
type Options struct {
	Config   *simulation.Config
	Seed     int64
	Renderer render.Renderer
	Input    render.InputManager
	Textures assets.Textures
	Sounds   audio.Player
	Logger   zerolog.Logger

	// ShowDebug draws the frame rate and the raw clock.
	ShowDebug bool

	// Now is the clock used to measure frame time. Defaults to time.Now.
	Now func() time.Time
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Round        *round.Round
	Scene        *Scene
	Textures     assets.Textures
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Sounds       audio.Player
	Logger       zerolog.Logger
	ShowDebug    bool

	config *simulation.Config
	now    func() time.Time
	last   time.Time
}

// New builds a paused game showing the start message. Branches and
// decorations draw from separate generators seeded from opts.Seed.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = audio.Silent{}
	}

	sim := branch.NewSeeded(opts.Seed, cfg.Branches.RollSides)
	g := &Game{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		Round:        round.New(cfg, sim),
		Scene:        NewScene(rand.New(rand.NewSource(opts.Seed + 1))),
		Textures:     opts.Textures,
		Renderer:     opts.Renderer,
		InputMgr:     opts.Input,
		Sounds:       sounds,
		Logger:       opts.Logger,
		ShowDebug:    opts.ShowDebug,
		config:       cfg,
		now:          now,
	}
	g.Round.OnEvent = g.onRoundEvent
	g.last = now()
	return g
}

// Update handles input, then advances the clock and the decorations while a
// round is running. Frame time is measured on every call so a pause is never
// charged to the next round.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	current := g.now()
	dt := current.Sub(g.last).Seconds()
	g.last = current
	if dt < 0 {
		dt = 0
	}

	if g.Round.Paused() {
		return nil
	}

	g.Round.Tick(dt)
	g.Scene.Update(dt)
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Message returns the centred text for the current state, or "" while a
// round is running.
func (g *Game) Message() string {
	return g.Round.Banner()
}

func (g *Game) onRoundEvent(e round.Event) {
	switch e {
	case round.EventStarted:
		g.Logger.Info().Msg("round started")
	case round.EventChopped:
		g.Sounds.Play(audio.Chop)
	case round.EventDied:
		g.Sounds.Play(audio.Death)
		g.Logger.Info().Int("score", g.Round.Score).Stringer("reason", g.Round.Reason).Msg("round over")
	case round.EventTimedOut:
		g.Sounds.Play(audio.OutOfTime)
		g.Logger.Info().Int("score", g.Round.Score).Stringer("reason", g.Round.Reason).Msg("round over")
	}
}
