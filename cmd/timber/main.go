package main

import (
	"flag"
	"os"
	"time"

	"chosenoffset.com/timber/internal/assets"
	"chosenoffset.com/timber/internal/audio"
	"chosenoffset.com/timber/internal/game"
	"chosenoffset.com/timber/internal/logging"
	ebitenrender "chosenoffset.com/timber/internal/render/ebiten"
	"chosenoffset.com/timber/internal/simulation"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON tuning file")
	seed := flag.Int64("seed", 0, "random seed (0 uses the current time)")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	mute := flag.Bool("mute", false, "disable sound")
	volume := flag.Float64("volume", 0.8, "sound volume between 0 and 1")
	assetDir := flag.String("assets", "assets", "directory holding graphics/, fonts/ and sound/")
	debug := flag.Bool("debug", true, "show the frame rate and the raw clock")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load tuning")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", *seed).Msg("seeded")

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create renderer")
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	a, err := assets.Load(*assetDir, renderer, loader, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load assets")
	}

	var sounds audio.Player = audio.Silent{}
	if !*mute {
		sounds = audio.NewBank(a.Sounds, *volume, logger)
	}

	g := game.New(game.Options{
		Config:    cfg,
		Seed:      *seed,
		Renderer:  renderer,
		Input:     inputMgr,
		Textures:  a.Textures,
		Sounds:    sounds,
		Logger:    logger,
		ShowDebug: *debug,
	})

	// Set up the window
	engine.SetWindowSize(*width, *height)
	engine.SetWindowTitle("Timber!!!")
	engine.SetWindowResizable(true)
	engine.SetFullscreen(*fullscreen)

	logger.Info().Msg("starting game")
	if err := engine.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game loop failed")
	}
}
