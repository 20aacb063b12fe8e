package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/timber/internal/core/round"
	"chosenoffset.com/timber/internal/render"
)

const (
	scoreTextSize   = 100
	messageTextSize = 75
	debugTextSize   = 30
	hudMargin       = 20
)

var (
	clearColor   = color.RGBA{0, 0, 0, 255}
	textColor    = color.RGBA{255, 255, 255, 255}
	debugColor   = color.RGBA{0, 255, 255, 255}
	timeBarColor = color.RGBA{255, 0, 0, 255}
)

// Draw renders the scene back to front, then the HUD on top.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(clearColor)

	g.drawSprite(screen, g.Textures.Background, 0, 0)
	g.drawSprite(screen, g.Textures.TreeFar, backTree1X, 0)
	g.drawSprite(screen, g.Textures.TreeFar, backTree2X, 0)

	for _, cloud := range g.Scene.Clouds {
		if cloud.Active {
			g.drawSprite(screen, g.Textures.Cloud, cloud.X, cloud.Y)
		}
	}
	g.drawBee(screen)
	g.drawBranches(screen)

	g.drawSprite(screen, g.Textures.Tree, treeX, 0)
	g.drawSprite(screen, g.Textures.Log, g.Scene.Log.X, g.Scene.Log.Y)
	g.drawSprite(screen, g.Textures.Axe, AxeX(g.Round.PlayerSide), axeY)

	if g.Round.Reason == round.ReasonDeath && g.Round.Paused() {
		g.drawSprite(screen, g.Textures.Gravestone, gravestoneX, gravestoneY)
	} else {
		g.drawSprite(screen, g.Textures.Player, PlayerX(g.Round.PlayerSide), playerY)
	}

	g.drawSprite(screen, g.Textures.TreeFar, frontTree1X, 0)
	g.drawSprite(screen, g.Textures.TreeFar, frontTree2X, 0)

	g.drawHUD(screen)
}

func (g *Game) drawSprite(screen, img render.Image, x, y float64) {
	if img == nil {
		return
	}
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(x, y)
	screen.DrawImage(img, opts)
}

// drawBee mirrors the bee so it faces the way it flies.
func (g *Game) drawBee(screen render.Image) {
	bee := g.Scene.Bee
	if !bee.Active || g.Textures.Bee == nil {
		return
	}
	w, _ := g.Textures.Bee.Size()
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(-1, 1)
	opts.GeoM.Translate(bee.X+float64(w), bee.Y)
	screen.DrawImage(g.Textures.Bee, opts)
}

// drawBranches draws each occupied slot, turning left branches around so
// they point away from the trunk.
func (g *Game) drawBranches(screen render.Image) {
	if g.Textures.Branch == nil {
		return
	}
	for i, side := range g.Round.Branches {
		x, y, flipped, visible := BranchPosition(i, side)
		if !visible {
			continue
		}
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Translate(-branchOriginX, -branchOriginY)
		if flipped {
			opts.GeoM.Rotate(math.Pi)
		}
		opts.GeoM.Translate(x, y)
		screen.DrawImage(g.Textures.Branch, opts)
	}
}

func (g *Game) drawHUD(screen render.Image) {
	if g.Renderer == nil {
		return
	}

	g.Renderer.DrawText(screen, fmt.Sprintf("Score = %d", g.Round.Score), hudMargin, hudMargin, textColor, scoreTextSize)

	width := g.config.TimeBarWidthPerSecond() * g.Round.TimeLeft
	if width > 0 {
		x := float64(g.ScreenWidth)/2 - g.config.TimeBar.Width/2
		g.Renderer.FillRect(screen, float32(x), timeBarY, float32(width), float32(g.config.TimeBar.Height), timeBarColor)
	}

	if g.ShowDebug {
		debug := fmt.Sprintf("FPS: %.0f\nTime: %.2f", g.Renderer.ActualFPS(), g.Round.TimeLeft)
		w, _ := g.Renderer.MeasureText(debug, debugTextSize)
		g.Renderer.DrawText(screen, debug, float64(g.ScreenWidth)-w-hudMargin, hudMargin, debugColor, debugTextSize)
	}

	if msg := g.Message(); msg != "" {
		w, h := g.Renderer.MeasureText(msg, messageTextSize)
		x := float64(g.ScreenWidth)/2 - w/2
		y := float64(g.ScreenHeight)/2 - h/2
		g.Renderer.DrawText(screen, msg, x, y, textColor, messageTextSize)
	}
}
