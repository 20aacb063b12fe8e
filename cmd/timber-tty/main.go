package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"chosenoffset.com/timber/internal/logging"
	"chosenoffset.com/timber/internal/simulation"
	"chosenoffset.com/timber/internal/tty"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON tuning file")
	seed := flag.Int64("seed", 0, "random seed (0 uses the current time)")
	fps := flag.Int("fps", 30, "redraws per second")
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is busy drawing)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			os.Stderr.WriteString("failed to open log file: " + err.Error() + "\n")
			os.Exit(2)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := logging.New(logOut, *logLevel)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		os.Stderr.WriteString("timber-tty needs an interactive terminal\n")
		os.Exit(1)
	}

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tty.Run(ctx, tty.Options{
		Config: cfg,
		Seed:   *seed,
		FPS:    *fps,
		Logger: logger,
	})
	if err != nil {
		logger.Error().Err(err).Msg("terminal session failed")
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
