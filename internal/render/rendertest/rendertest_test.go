package rendertest

import (
	"math"
	"testing"

	"chosenoffset.com/timber/internal/render"
)

var (
	_ render.Renderer       = (*Renderer)(nil)
	_ render.Image          = (*Image)(nil)
	_ render.GeoM           = (*GeoM)(nil)
	_ render.InputManager   = (*Input)(nil)
	_ render.ResourceLoader = (*Loader)(nil)
)

func TestGeoMApply(t *testing.T) {
	tests := []struct {
		name   string
		build  func(g *GeoM)
		wx, wy float64
	}{
		{"identity", func(g *GeoM) {}, 0, 0},
		{"translate", func(g *GeoM) { g.Translate(10, 20) }, 10, 20},
		{"mirror then translate", func(g *GeoM) { g.Scale(-1, 1); g.Translate(60, 5) }, 60, 5},
		{"half turn around origin", func(g *GeoM) { g.Translate(-220, -20); g.Rotate(math.Pi); g.Translate(610, 0) }, 830, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeoM()
			tt.build(g)
			x, y := g.Apply(0, 0)
			if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
				t.Errorf("Apply(0, 0) = (%v, %v), want (%v, %v)", x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestInputPressRelease(t *testing.T) {
	in := NewInput()
	in.Press(render.KeyEnter, render.KeyLeft)
	if !in.IsKeyJustPressed(render.KeyEnter) || !in.IsKeyJustPressed(render.KeyLeft) {
		t.Error("Expected pressed keys to report just pressed")
	}
	if in.IsKeyJustPressed(render.KeyRight) {
		t.Error("Right was never pressed")
	}
	in.Release()
	if in.IsKeyJustPressed(render.KeyEnter) {
		t.Error("Expected Release to clear every key")
	}
}
