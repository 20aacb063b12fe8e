package placeholders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateSizes(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{Background, 1920, 1080},
		{Tree, 300, 900},
		{TreeFar, 300, 900},
		{Branch, 440, 80},
		{Player, 150, 192},
		{Bee, 60, 60},
		{Cloud, 300, 150},
		{Gravestone, 150, 180},
		{Axe, 120, 40},
		{Log, 300, 150},
	}

	if len(tests) != len(Names()) {
		t.Fatalf("Expected %d sprites, generator knows %d", len(tests), len(Names()))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Generate(tt.name)
			if err != nil {
				t.Fatalf("Failed to generate: %v", err)
			}
			if img.Bounds().Dx() != tt.w || img.Bounds().Dy() != tt.h {
				t.Errorf("Expected %dx%d, got %dx%d", tt.w, tt.h, img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}
}

func TestGenerateUnknownSprite(t *testing.T) {
	if _, err := Generate("chainsaw"); err == nil {
		t.Error("Expected an error for an unknown sprite")
	}
}

func TestBranchTouchesTrunkAtOrigin(t *testing.T) {
	img := CreateBranch()

	// The wood starts at x=0 around the rotation origin (220, 20)
	if got := img.RGBAAt(0, 20); got != ColorPalette.Bark {
		t.Errorf("Expected bark at the trunk end, got %v", got)
	}
	// The top-left corner stays transparent
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("Expected transparent corner, got %v", got)
	}
}

func TestFillEllipse(t *testing.T) {
	img := NewCanvas(20, 20)
	red := color.RGBA{255, 0, 0, 255}
	FillEllipse(img, image.Rect(0, 0, 20, 20), red)

	if img.RGBAAt(10, 10) != red {
		t.Error("Expected center to be filled")
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("Expected corner outside the ellipse to stay transparent")
	}
}

func TestMixDarkenLighten(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	if got := Mix(black, white, 0); got != black {
		t.Errorf("Mix at 0 = %v, want %v", got, black)
	}
	if got := Mix(black, white, 1); got != white {
		t.Errorf("Mix at 1 = %v, want %v", got, white)
	}
	if got := Darken(white, 0.5); got.R != 127 {
		t.Errorf("Darken(white, 0.5).R = %d, want 127", got.R)
	}
	if got := Lighten(black, 1); got != white {
		t.Errorf("Lighten(black, 1) = %v, want %v", got, white)
	}
}

func TestGenerateAndSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphics")
	written, err := GenerateAndSave(dir, false)
	if err != nil {
		t.Fatalf("Failed to generate placeholders: %v", err)
	}
	if len(written) != len(Names()) {
		t.Errorf("Expected %d files written, got %d", len(Names()), len(written))
	}

	for _, name := range Names() {
		path := filepath.Join(dir, name+".png")
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Expected %s to exist: %v", path, err)
		}
		_, err = png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("Expected %s to be a PNG: %v", path, err)
		}
	}
}

func TestGenerateAndSaveKeepsExistingArt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	art := []byte("hand-drawn tree")
	tree := filepath.Join(dir, Tree+".png")
	if err := os.WriteFile(tree, art, 0o644); err != nil {
		t.Fatal(err)
	}

	written, err := GenerateAndSave(dir, false)
	if err != nil {
		t.Fatalf("Failed to generate placeholders: %v", err)
	}
	for _, path := range written {
		if path == tree {
			t.Error("tree.png should not be reported as written")
		}
	}
	if len(written) != len(Names())-1 {
		t.Errorf("Expected %d files written, got %d", len(Names())-1, len(written))
	}
	if got, _ := os.ReadFile(tree); string(got) != string(art) {
		t.Fatal("Existing art was overwritten without force")
	}

	written, err = GenerateAndSave(dir, true)
	if err != nil {
		t.Fatalf("Failed to regenerate placeholders: %v", err)
	}
	if len(written) != len(Names()) {
		t.Errorf("Expected force to rewrite all %d files, got %d", len(Names()), len(written))
	}
	if got, _ := os.ReadFile(tree); string(got) == string(art) {
		t.Error("Expected force to replace the existing file")
	}
}
