package tty

import (
	"context"
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog"

	"chosenoffset.com/timber/internal/core/branch"
	"chosenoffset.com/timber/internal/core/round"
	"chosenoffset.com/timber/internal/simulation"
)

// Options configures a terminal session.
type Options struct {
	Config *simulation.Config
	Seed   int64
	FPS    int
	Logger zerolog.Logger
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionStart
	actionLeft
	actionRight
)

// actionFor maps a key event to a game action.
func actionFor(ev termbox.Event) action {
	if ev.Type != termbox.EventKey {
		return actionNone
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return actionQuit
	case termbox.KeyEnter:
		return actionStart
	case termbox.KeyArrowLeft:
		return actionLeft
	case termbox.KeyArrowRight:
		return actionRight
	}
	if ev.Ch == 'q' {
		return actionQuit
	}
	return actionNone
}

// apply runs an action against the round and reports whether to quit.
func apply(r *round.Round, a action) bool {
	switch a {
	case actionQuit:
		return true
	case actionStart:
		r.Start()
	case actionLeft:
		r.Cut(branch.Left)
	case actionRight:
		r.Cut(branch.Right)
	}
	return false
}

// eventPump forwards blocking terminal events to a channel until an
// interrupt event arrives.
type eventPump struct {
	events  chan termbox.Event
	stopped chan struct{}
}

func newEventPump(poll func() termbox.Event) *eventPump {
	p := &eventPump{
		events:  make(chan termbox.Event),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(p.stopped)
		for {
			ev := poll()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			p.events <- ev
		}
	}()
	return p
}

// stop wakes the poller with interrupt and waits for it to exit. Events
// still in flight are dropped. interrupt blocks until the poller receives
// it, so it runs on its own goroutine while the channel is drained.
func (p *eventPump) stop(interrupt func()) {
	go interrupt()
	for {
		select {
		case <-p.events:
		case <-p.stopped:
			return
		}
	}
}

// Run plays until the player quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	logger := opts.Logger

	r := round.New(cfg, branch.NewSeeded(opts.Seed, cfg.Branches.RollSides))
	r.OnEvent = func(e round.Event) {
		switch e {
		case round.EventStarted:
			logger.Info().Msg("round started")
		case round.EventDied, round.EventTimedOut:
			logger.Info().Int("score", r.Score).Stringer("reason", r.Reason).Msg("round over")
		}
	}

	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}
	defer termbox.Close()

	pump := newEventPump(termbox.PollEvent)
	defer pump.stop(termbox.Interrupt)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	draw(r)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-pump.events:
			if ev.Type == termbox.EventError {
				return fmt.Errorf("terminal event: %w", ev.Err)
			}
			if apply(r, actionFor(ev)) {
				logger.Info().Int("score", r.Score).Msg("quit requested")
				return nil
			}
			draw(r)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if r.Running() {
				r.Tick(dt)
			}
			draw(r)
		}
	}
}

func draw(r *round.Round) {
	w, h := termbox.Size()
	f := Compose(r, r.Banner(), w, h)

	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			ch := f.At(x, y)
			fg := termbox.ColorWhite
			switch ch {
			case '=':
				fg = termbox.ColorGreen
			case '|':
				fg = termbox.ColorYellow
			case '#':
				fg = termbox.ColorRed
			}
			termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
		}
	}
	termbox.Flush()
}
