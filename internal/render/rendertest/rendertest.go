// Package rendertest provides in-memory implementations of the render
// interfaces for tests that must not open a window.
package rendertest

import (
	"errors"
	"image"
	"image/color"
	"math"

	"chosenoffset.com/timber/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return NewGeoM() }
	}
}

// Op is one recorded drawing operation.
type Op struct {
	Kind  string // "image", "rect", "text" or "fill"
	Name  string // Image name, or the text drawn
	X, Y  float64
	W, H  float64
	Color color.Color
}

// Image is a named image that records what is drawn onto it.
type Image struct {
	Name string
	W, H int
	Ops  []Op
}

// NewImage creates a recording image.
func NewImage(name string, w, h int) *Image {
	return &Image{Name: name, W: w, H: h}
}

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) Fill(clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: "fill", Color: clr})
}

// DrawImage records the source name and where its origin ends up.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := Op{Kind: "image"}
	if s, ok := src.(*Image); ok {
		op.Name = s.Name
		op.W, op.H = float64(s.W), float64(s.H)
	}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			op.X, op.Y = g.Apply(0, 0)
		}
	}
	i.Ops = append(i.Ops, op)
}

// Names returns the names of the images drawn, in order.
func (i *Image) Names() []string {
	var names []string
	for _, op := range i.Ops {
		if op.Kind == "image" {
			names = append(names, op.Name)
		}
	}
	return names
}

// Find returns the first operation of the given kind and name.
func (i *Image) Find(kind, name string) (Op, bool) {
	for _, op := range i.Ops {
		if op.Kind == kind && op.Name == name {
			return op, true
		}
	}
	return Op{}, false
}

// Texts returns every string drawn, in order.
func (i *Image) Texts() []string {
	var texts []string
	for _, op := range i.Ops {
		if op.Kind == "text" {
			texts = append(texts, op.Name)
		}
	}
	return texts
}

// GeoM is a 2D affine matrix.
type GeoM struct {
	a, b, c, d, tx, ty float64
}

// NewGeoM returns the identity matrix.
func NewGeoM() *GeoM {
	return &GeoM{a: 1, d: 1}
}

func (g *GeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	g.a *= sx
	g.b *= sx
	g.tx *= sx
	g.c *= sy
	g.d *= sy
	g.ty *= sy
}

func (g *GeoM) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	a := cos*g.a - sin*g.c
	b := cos*g.b - sin*g.d
	tx := cos*g.tx - sin*g.ty
	c := sin*g.a + cos*g.c
	d := sin*g.b + cos*g.d
	ty := sin*g.tx + cos*g.ty
	g.a, g.b, g.tx, g.c, g.d, g.ty = a, b, tx, c, d, ty
}

// Apply transforms a point.
func (g *GeoM) Apply(x, y float64) (float64, float64) {
	return g.a*x + g.b*y + g.tx, g.c*x + g.d*y + g.ty
}

// Renderer records text and rectangles onto Images.
type Renderer struct {
	FPS       float64
	CharWidth float64 // Width of one character relative to the font size
	Font      []byte
	FontErr   error
}

// NewRenderer creates a recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{FPS: 60, CharWidth: 0.5}
}

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage("generated", b.Dx(), b.Dy())
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	img := dst.(*Image)
	img.Ops = append(img.Ops, Op{Kind: "rect", X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Color: clr})
}

func (r *Renderer) SetFont(ttf []byte) error {
	if r.FontErr != nil {
		return r.FontErr
	}
	r.Font = ttf
	return nil
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y float64, clr color.Color, size float64) {
	img := dst.(*Image)
	w, h := r.MeasureText(text, size)
	img.Ops = append(img.Ops, Op{Kind: "text", Name: text, X: x, Y: y, W: w, H: h, Color: clr})
}

// MeasureText assumes every character is CharWidth*size wide and one size tall.
func (r *Renderer) MeasureText(text string, size float64) (float64, float64) {
	return float64(len(text)) * r.CharWidth * size, size
}

func (r *Renderer) ActualFPS() float64 { return r.FPS }

// Input is a scripted InputManager. Keys in Just are reported as just
// pressed until Release is called.
type Input struct {
	Just map[render.Key]bool
}

// NewInput creates an Input with no keys pressed.
func NewInput() *Input {
	return &Input{Just: map[render.Key]bool{}}
}

// Press marks keys as just pressed.
func (in *Input) Press(keys ...render.Key) {
	for _, k := range keys {
		in.Just[k] = true
	}
}

// Release clears every key.
func (in *Input) Release() {
	in.Just = map[render.Key]bool{}
}

func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }

// ErrNotFound is returned by Loader for paths it does not know.
var ErrNotFound = errors.New("rendertest: not found")

// Loader serves images registered by path.
type Loader struct {
	Images map[string]*Image
	Loaded []string
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{Images: map[string]*Image{}}
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	l.Loaded = append(l.Loaded, path)
	img, ok := l.Images[path]
	if !ok {
		return nil, ErrNotFound
	}
	return img, nil
}
