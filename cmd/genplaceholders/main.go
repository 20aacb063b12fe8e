package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/timber/internal/audio"
	"chosenoffset.com/timber/internal/placeholders"
)

func main() {
	dir := flag.String("assets", "assets", "asset directory to populate")
	force := flag.Bool("force", false, "overwrite graphics and sounds that already exist")
	flag.Parse()

	fmt.Println("Timber Placeholder Asset Generator")
	fmt.Println("==================================")
	fmt.Println()

	graphics := filepath.Join(*dir, "graphics")
	written, err := placeholders.GenerateAndSave(graphics, *force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}
	if kept := len(placeholders.Names()) - len(written); kept > 0 {
		fmt.Printf("  kept  %d existing graphics (use -force to replace)\n", kept)
	}

	sound := filepath.Join(*dir, "sound")
	if err := os.MkdirAll(sound, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, cue := range audio.Cues {
		path := filepath.Join(sound, cue.FileName())
		if _, err := os.Stat(path); err == nil && !*force {
			fmt.Printf("  kept  %s\n", path)
			continue
		}
		if err := os.WriteFile(path, audio.EncodeWAV(audio.Synthesize(cue)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  wrote %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder assets are ready to use.")
	fmt.Println("Drop real art into the same folders to replace them.")
}
