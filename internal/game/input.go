package game

import (
	"chosenoffset.com/timber/internal/core/branch"
	"chosenoffset.com/timber/internal/render"
)

// handleInput applies this frame's key presses in a fixed order: quit,
// start, then chops. Starting and chopping in the same frame both count.
func (g *Game) handleInput() error {
	if g.InputMgr == nil {
		return nil
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Logger.Info().Int("score", g.Round.Score).Msg("quit requested")
		return render.ErrTerminated
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyEnter) {
		g.Round.Start()
		g.Scene.Log.Active = false
		g.Scene.Log.X, g.Scene.Log.Y = logStartX, logStartY
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyRight) {
		g.chop(branch.Right)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyLeft) {
		g.chop(branch.Left)
	}
	return nil
}

func (g *Game) chop(side branch.Side) {
	out := g.Round.Cut(side)
	if !out.Accepted {
		return
	}
	g.Scene.LaunchLog(side, g.config.Log)
	g.Logger.Debug().
		Stringer("side", side).
		Stringer("dropped", out.Dropped).
		Int("score", g.Round.Score).
		Float64("bonus", out.Bonus).
		Float64("time_left", g.Round.TimeLeft).
		Msg("chop")
}
