// Package assets loads the textures, font and sounds of the game from an
// asset directory laid out as graphics/, fonts/ and sound/. Anything missing
// is replaced by a generated placeholder so the game always starts.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"chosenoffset.com/timber/internal/audio"
	"chosenoffset.com/timber/internal/placeholders"
	"chosenoffset.com/timber/internal/render"
)

// FontFile is the font looked up under fonts/.
const FontFile = "KOMIKAP_.ttf"

// Textures holds every sprite of the scene.
type Textures struct {
	Background render.Image
	Tree       render.Image
	TreeFar    render.Image
	Branch     render.Image
	Player     render.Image
	Bee        render.Image
	Cloud      render.Image
	Gravestone render.Image
	Axe        render.Image
	Log        render.Image
}

// slots maps sprite names to the fields they fill.
func (t *Textures) slots() map[string]*render.Image {
	return map[string]*render.Image{
		placeholders.Background: &t.Background,
		placeholders.Tree:       &t.Tree,
		placeholders.TreeFar:    &t.TreeFar,
		placeholders.Branch:     &t.Branch,
		placeholders.Player:     &t.Player,
		placeholders.Bee:        &t.Bee,
		placeholders.Cloud:      &t.Cloud,
		placeholders.Gravestone: &t.Gravestone,
		placeholders.Axe:        &t.Axe,
		placeholders.Log:        &t.Log,
	}
}

// Assets is everything loaded from disk.
type Assets struct {
	Textures Textures
	Sounds   map[audio.Cue][]byte // Decoded PCM; cues without a file are absent
	Fallback []string             // Sprites that use a placeholder
	FontPath string               // Empty when the default face is used
}

// Load reads the asset directory. The font, if found, is installed into the
// renderer. Load only fails when a placeholder cannot be generated.
func Load(dir string, r render.Renderer, loader render.ResourceLoader, logger zerolog.Logger) (*Assets, error) {
	a := &Assets{Sounds: make(map[audio.Cue][]byte)}

	slots := a.Textures.slots()
	for _, name := range placeholders.Names() {
		slot := slots[name]
		path := filepath.Join(dir, "graphics", name+".png")

		img, err := loader.LoadImage(path)
		if err == nil {
			*slot = img
			continue
		}

		logger.Warn().Err(err).Str("sprite", name).Msg("texture unavailable, using placeholder")
		generated, genErr := placeholders.Generate(name)
		if genErr != nil {
			return nil, fmt.Errorf("failed to create placeholder for %s: %w", name, genErr)
		}
		*slot = r.NewImageFromImage(generated)
		a.Fallback = append(a.Fallback, name)
	}

	fontPath := filepath.Join(dir, "fonts", FontFile)
	if ttf, err := os.ReadFile(fontPath); err != nil {
		logger.Info().Str("path", fontPath).Msg("font not found, using Go Regular")
	} else if err := r.SetFont(ttf); err != nil {
		logger.Warn().Err(err).Str("path", fontPath).Msg("failed to parse font, using Go Regular")
	} else {
		a.FontPath = fontPath
	}

	for _, cue := range audio.Cues {
		path := filepath.Join(dir, "sound", cue.FileName())
		pcm, err := audio.LoadClip(path)
		if err != nil {
			logger.Info().Err(err).Stringer("cue", cue).Msg("sound unavailable, synthesizing")
			continue
		}
		a.Sounds[cue] = pcm
	}

	logger.Debug().
		Int("placeholders", len(a.Fallback)).
		Int("sounds", len(a.Sounds)).
		Str("dir", dir).
		Msg("assets loaded")

	return a, nil
}
