package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
)

// ColorPalette defines colors for the forest scene
var ColorPalette = struct {
	// Scenery
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Grass     color.RGBA
	Bark      color.RGBA
	BarkFar   color.RGBA
	Leaves    color.RGBA

	// Props
	Cloud     color.RGBA
	BeeBody   color.RGBA
	BeeStripe color.RGBA
	Stone     color.RGBA
	AxeHead   color.RGBA
	Handle    color.RGBA
	LogRing   color.RGBA

	// Lumberjack
	Shirt color.RGBA
	Skin  color.RGBA
	Pants color.RGBA
}{
	SkyTop:    color.RGBA{90, 160, 230, 255},
	SkyBottom: color.RGBA{190, 225, 250, 255},
	Grass:     color.RGBA{70, 140, 60, 255},
	Bark:      color.RGBA{110, 75, 45, 255},
	BarkFar:   color.RGBA{80, 95, 70, 255}, // Hazy trees in the distance
	Leaves:    color.RGBA{40, 120, 40, 255},

	Cloud:     color.RGBA{250, 250, 250, 255},
	BeeBody:   color.RGBA{245, 200, 30, 255},
	BeeStripe: color.RGBA{30, 30, 30, 255},
	Stone:     color.RGBA{150, 150, 155, 255},
	AxeHead:   color.RGBA{190, 195, 200, 255},
	Handle:    color.RGBA{150, 100, 60, 255},
	LogRing:   color.RGBA{210, 170, 110, 255},

	Shirt: color.RGBA{200, 40, 40, 255},
	Skin:  color.RGBA{240, 200, 160, 255},
	Pants: color.RGBA{50, 60, 120, 255},
}

// Sprite names, matching the file names under graphics/ without extension
const (
	Background = "background"
	Tree       = "tree"
	TreeFar    = "tree2"
	Branch     = "branch"
	Player     = "player"
	Bee        = "bee"
	Cloud      = "cloud"
	Gravestone = "rip"
	Axe        = "axe"
	Log        = "log"
)

var generators = map[string]func() *image.RGBA{
	Background: CreateBackground,
	Tree:       func() *image.RGBA { return CreateTree(ColorPalette.Bark) },
	TreeFar:    func() *image.RGBA { return CreateTree(ColorPalette.BarkFar) },
	Branch:     CreateBranch,
	Player:     CreatePlayer,
	Bee:        CreateBee,
	Cloud:      CreateCloud,
	Gravestone: CreateGravestone,
	Axe:        CreateAxe,
	Log:        CreateLog,
}

// Names returns every sprite name a placeholder exists for, sorted.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate creates the placeholder for a named sprite.
func Generate(name string) (*image.RGBA, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("no placeholder for sprite: %s", name)
	}
	return gen(), nil
}

// GenerateAndSave writes a PNG placeholder for every sprite into dir and
// returns the paths it wrote. Existing files are kept unless force is set.
func GenerateAndSave(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	var written []string
	for _, name := range Names() {
		path := filepath.Join(dir, name+".png")
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		img, err := Generate(name)
		if err != nil {
			return written, err
		}
		if err := SavePNG(img, path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// NewCanvas creates a transparent image
func NewCanvas(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

// FillRect fills a rectangle of the image with a solid color
func FillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Over)
}

// FillEllipse fills the ellipse inscribed in r
func FillEllipse(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}

	bounds := r.Intersect(img.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// CreateBackground creates a sky gradient above a strip of grass
func CreateBackground() *image.RGBA {
	const width, height = 1920, 1080
	const horizon = 860
	img := NewCanvas(width, height)

	for y := 0; y < horizon; y++ {
		t := float64(y) / horizon
		row := Mix(ColorPalette.SkyTop, ColorPalette.SkyBottom, t)
		FillRect(img, image.Rect(0, y, width, y+1), row)
	}
	FillRect(img, image.Rect(0, horizon, width, height), ColorPalette.Grass)
	FillRect(img, image.Rect(0, horizon, width, horizon+6), Darken(ColorPalette.Grass, 0.8))

	return img
}

// CreateTree creates a trunk with vertical bark stripes
func CreateTree(bark color.RGBA) *image.RGBA {
	const width, height = 300, 900
	img := NewCanvas(width, height)

	FillRect(img, img.Bounds(), bark)
	stripe := Darken(bark, 0.75)
	for x := 20; x < width; x += 45 {
		FillRect(img, image.Rect(x, 0, x+6, height), stripe)
	}
	// Roots
	FillRect(img, image.Rect(0, height-30, width, height), Darken(bark, 0.6))

	return img
}

// CreateBranch creates a branch pointing right with leaves at its tip.
// The end touching the trunk is at x=0.
func CreateBranch() *image.RGBA {
	const width, height = 440, 80
	img := NewCanvas(width, height)

	FillRect(img, image.Rect(0, 10, width-60, 30), ColorPalette.Bark)
	FillEllipse(img, image.Rect(width-140, 0, width, height), ColorPalette.Leaves)
	FillEllipse(img, image.Rect(width-220, 5, width-100, 55), Lighten(ColorPalette.Leaves, 0.15))

	return img
}

// CreatePlayer creates a standing lumberjack
func CreatePlayer() *image.RGBA {
	const width, height = 150, 192
	img := NewCanvas(width, height)

	FillEllipse(img, image.Rect(45, 0, 105, 60), ColorPalette.Skin)
	FillRect(img, image.Rect(35, 60, 115, 130), ColorPalette.Shirt)
	// Checked shirt
	for x := 35; x < 115; x += 20 {
		FillRect(img, image.Rect(x, 60, x+4, 130), Darken(ColorPalette.Shirt, 0.7))
	}
	FillRect(img, image.Rect(40, 130, 70, 192), ColorPalette.Pants)
	FillRect(img, image.Rect(80, 130, 110, 192), ColorPalette.Pants)

	return img
}

// CreateBee creates a striped bee
func CreateBee() *image.RGBA {
	const size = 60
	img := NewCanvas(size, size)

	FillEllipse(img, image.Rect(10, 5, 35, 25), ColorPalette.Cloud) // wing
	FillEllipse(img, image.Rect(0, 15, size, size-5), ColorPalette.BeeBody)
	for x := 15; x < size-10; x += 14 {
		FillRect(img, image.Rect(x, 18, x+6, size-8), ColorPalette.BeeStripe)
	}

	return img
}

// CreateCloud creates a puffy cloud
func CreateCloud() *image.RGBA {
	const width, height = 300, 150
	img := NewCanvas(width, height)

	FillEllipse(img, image.Rect(0, 50, 160, 150), ColorPalette.Cloud)
	FillEllipse(img, image.Rect(70, 0, 230, 130), ColorPalette.Cloud)
	FillEllipse(img, image.Rect(150, 40, 300, 150), ColorPalette.Cloud)

	return img
}

// CreateGravestone creates a rounded headstone with a cross
func CreateGravestone() *image.RGBA {
	const width, height = 150, 180
	img := NewCanvas(width, height)

	FillEllipse(img, image.Rect(0, 0, width, 120), ColorPalette.Stone)
	FillRect(img, image.Rect(0, 60, width, height), ColorPalette.Stone)
	cross := Darken(ColorPalette.Stone, 0.6)
	FillRect(img, image.Rect(68, 40, 82, 140), cross)
	FillRect(img, image.Rect(45, 65, 105, 79), cross)

	return img
}

// CreateAxe creates a horizontal axe with the blade on the left
func CreateAxe() *image.RGBA {
	const width, height = 120, 40
	img := NewCanvas(width, height)

	FillRect(img, image.Rect(20, 15, width, 25), ColorPalette.Handle)
	FillRect(img, image.Rect(0, 0, 30, height), ColorPalette.AxeHead)

	return img
}

// CreateLog creates a cut log showing its rings at one end
func CreateLog() *image.RGBA {
	const width, height = 300, 150
	img := NewCanvas(width, height)

	FillRect(img, image.Rect(40, 20, width, 130), ColorPalette.Bark)
	FillEllipse(img, image.Rect(0, 20, 80, 130), ColorPalette.LogRing)
	FillEllipse(img, image.Rect(20, 50, 60, 100), Darken(ColorPalette.LogRing, 0.8))

	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Mix linearly interpolates between two colors
func Mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
