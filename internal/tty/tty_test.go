package tty

import (
	"strings"
	"testing"
	"time"

	"github.com/nsf/termbox-go"

	"chosenoffset.com/timber/internal/core/branch"
	"chosenoffset.com/timber/internal/core/round"
	"chosenoffset.com/timber/internal/simulation"
)

const (
	testWidth  = 60
	testHeight = 20
)

func newRound() *round.Round {
	cfg := simulation.DefaultConfig()
	return round.New(cfg, branch.NewSeeded(1, cfg.Branches.RollSides))
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		want action
	}{
		{"escape", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, actionQuit},
		{"q", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, actionQuit},
		{"enter", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, actionStart},
		{"left arrow", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, actionLeft},
		{"ctrl-c", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, actionQuit},
		{"right arrow", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, actionRight},
		{"a is not a chop", termbox.Event{Type: termbox.EventKey, Ch: 'a'}, actionNone},
		{"d is not a chop", termbox.Event{Type: termbox.EventKey, Ch: 'd'}, actionNone},
		{"other key", termbox.Event{Type: termbox.EventKey, Ch: 'x'}, actionNone},
		{"resize", termbox.Event{Type: termbox.EventResize}, actionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionFor(tt.ev); got != tt.want {
				t.Errorf("actionFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	r := newRound()

	if apply(r, actionLeft) {
		t.Fatal("chop should not quit")
	}
	if r.Score != 0 {
		t.Errorf("Expected chops to be ignored before start, got score %d", r.Score)
	}

	apply(r, actionStart)
	if !r.Running() {
		t.Fatal("Expected the round to run")
	}
	r.Branches.Clear()
	apply(r, actionRight)
	if r.Score != 1 || r.PlayerSide != branch.Right {
		t.Errorf("Expected score 1 on the right, got %d on %v", r.Score, r.PlayerSide)
	}

	if !apply(r, actionQuit) {
		t.Error("Expected quit")
	}
}

func TestComposeBranchesAndPlayer(t *testing.T) {
	r := newRound()
	r.Branches = branch.Queue{branch.Left, branch.None, branch.Right, branch.None, branch.None, branch.None}

	f := Compose(r, "", testWidth, testHeight)
	cx := TrunkX(testWidth)

	left := f.Row(topRow)
	if left[cx-branchLen:cx] != strings.Repeat("=", branchLen) {
		t.Errorf("Expected a left branch on slot 0, got %q", left)
	}
	if strings.Contains(left[cx:], "=") {
		t.Errorf("Slot 0 should have nothing on the right, got %q", left)
	}

	right := f.Row(topRow + 2*slotRows)
	if right[cx+trunkWidth:cx+trunkWidth+branchLen] != strings.Repeat("=", branchLen) {
		t.Errorf("Expected a right branch on slot 2, got %q", right)
	}

	empty := f.Row(topRow + slotRows)
	if strings.Contains(empty, "=") {
		t.Errorf("Slot 1 should be empty, got %q", empty)
	}

	if f.At(cx-3, PlayerRow) != '@' {
		t.Errorf("Expected the player on the left, got %q", f.Row(PlayerRow))
	}
}

func TestComposeHUD(t *testing.T) {
	r := newRound()
	r.Start()
	r.Score = 12
	r.Tick(3)

	f := Compose(r, "", testWidth, testHeight)
	if !strings.HasPrefix(f.Row(0), "Score = 12") {
		t.Errorf("Expected the score on the first row, got %q", f.Row(0))
	}

	bar := f.Row(1)
	if got := strings.Count(bar, "#"); got != maxBarWidth/2 {
		t.Errorf("Expected a half full bar of %d, got %d in %q", maxBarWidth/2, got, bar)
	}
	if !strings.Contains(bar, "3.0s") {
		t.Errorf("Expected the remaining time, got %q", bar)
	}
}

func TestComposeDeathAndMessage(t *testing.T) {
	r := newRound()
	r.Start()
	r.Branches[branch.Count-1] = r.PlayerSide
	r.Tick(0)

	f := Compose(r, r.Banner(), testWidth, testHeight)
	if !strings.Contains(f.Row(PlayerRow), "RIP") {
		t.Errorf("Expected a gravestone, got %q", f.Row(PlayerRow))
	}
	if strings.ContainsRune(f.Row(PlayerRow), '@') {
		t.Error("Player should be hidden after death")
	}
	msg := f.Row(PlayerRow + 2)
	if !strings.Contains(msg, round.MessageDeath) {
		t.Errorf("Expected %q, got %q", round.MessageDeath, msg)
	}
}

func TestComposeTinyTerminal(t *testing.T) {
	r := newRound()
	f := Compose(r, round.MessageStart, 3, 2)
	if len(f.Cells) != 6 {
		t.Errorf("Expected 6 cells, got %d", len(f.Cells))
	}
	if got := Compose(r, "", 0, 0); len(got.Cells) != 0 {
		t.Errorf("Expected an empty frame, got %d cells", len(got.Cells))
	}
}

// fakeTerminal hands out queued events and blocks like PollEvent when empty.
type fakeTerminal struct {
	queue chan termbox.Event
}

func newFakeTerminal() *fakeTerminal {
	return &fakeTerminal{queue: make(chan termbox.Event)}
}

func (f *fakeTerminal) poll() termbox.Event { return <-f.queue }

func (f *fakeTerminal) interrupt() { f.queue <- termbox.Event{Type: termbox.EventInterrupt} }

func TestEventPumpForwardsEvents(t *testing.T) {
	term := newFakeTerminal()
	pump := newEventPump(term.poll)
	defer pump.stop(term.interrupt)

	go func() { term.queue <- termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter} }()

	select {
	case ev := <-pump.events:
		if ev.Key != termbox.KeyEnter {
			t.Errorf("Expected Enter, got %v", ev.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for the event")
	}
}

func TestEventPumpStopReleasesPoller(t *testing.T) {
	tests := []struct {
		name    string
		pending bool
	}{
		{"idle in poll", false},
		{"blocked handing over an event", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := newFakeTerminal()
			pump := newEventPump(term.poll)
			if tt.pending {
				// Nobody reads pump.events, so the poller is stuck sending.
				term.queue <- termbox.Event{Type: termbox.EventKey, Ch: 'x'}
			}

			done := make(chan struct{})
			go func() {
				pump.stop(term.interrupt)
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("stop did not return")
			}
			select {
			case <-pump.stopped:
			default:
				t.Error("Expected the poller goroutine to have exited")
			}
		})
	}
}
