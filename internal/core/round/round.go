// Package round implements the timer and score state machine for one round
// of chopping. A round is either running or stopped; it stops when the clock
// runs out or when a branch lands on the lumberjack.
package round

import (
	"chosenoffset.com/timber/internal/core/branch"
	"chosenoffset.com/timber/internal/simulation"
)

// State is the state of the round.
type State int

const (
	Stopped State = iota
	Running
)

// Reason explains why a round is stopped.
type Reason int

const (
	ReasonNone    Reason = iota // No round has been played yet
	ReasonTimeout               // The clock ran out
	ReasonDeath                 // A branch landed on the player
)

// String returns a lowercase name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonTimeout:
		return "timeout"
	case ReasonDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Event is something the front-end may want to react to.
type Event int

const (
	EventStarted Event = iota
	EventChopped
	EventDied
	EventTimedOut
)

// Outcome describes the effect of a single chop.
type Outcome struct {
	Accepted bool        // False when the round was not running
	Side     branch.Side // Side the player chopped from
	Bonus    float64     // Seconds added to the clock
	Dropped  branch.Side // Branch that fell off the bottom
	Died     bool
}

// Round holds everything the simulation mutates.
type Round struct {
	Branches   branch.Queue
	PlayerSide branch.Side
	Score      int
	TimeLeft   float64
	State      State
	Reason     Reason

	// OnEvent, if set, is called after every state change.
	OnEvent func(Event)

	config *simulation.Config
	sim    *branch.Simulator
}

// New creates a stopped round that has never been played. The player starts
// on the left with an empty trunk.
func New(config *simulation.Config, sim *branch.Simulator) *Round {
	if config == nil {
		config = simulation.DefaultConfig()
	}
	r := &Round{
		PlayerSide: branch.Left,
		TimeLeft:   config.Round.StartTime,
		State:      Stopped,
		Reason:     ReasonNone,
		config:     config,
		sim:        sim,
	}
	r.Branches.Clear()
	return r
}

// Config returns the tuning the round was created with.
func (r *Round) Config() *simulation.Config {
	return r.config
}

// Running reports whether the round is in progress.
func (r *Round) Running() bool {
	return r.State == Running
}

// Paused reports whether the simulation is halted. This is the case before
// the first round and after every stop.
func (r *Round) Paused() bool {
	return r.State != Running
}

// Start resets the score, the clock and the trunk and starts a new round.
// It may be called in any state.
func (r *Round) Start() {
	r.Score = 0
	r.TimeLeft = r.config.Round.StartTime
	r.Branches.Clear()
	r.State = Running
	r.Reason = ReasonNone
	r.emit(EventStarted)
}

// Tick runs the clock down by dt seconds. Running out of time stops the
// round with ReasonTimeout; a branch hanging over the player stops it with
// ReasonDeath. It returns true when this tick stopped the round.
func (r *Round) Tick(dt float64) bool {
	if r.State != Running {
		return false
	}
	r.TimeLeft -= dt
	if r.TimeLeft <= 0 {
		r.TimeLeft = 0
		r.stop(ReasonTimeout)
		r.emit(EventTimedOut)
		return true
	}
	return r.checkCollision()
}

func (r *Round) checkCollision() bool {
	if !r.Branches.Collides(r.PlayerSide) {
		return false
	}
	r.stop(ReasonDeath)
	r.emit(EventDied)
	return true
}

// Cut chops the trunk from the given side. The player moves to that side,
// scores a point and earns a time bonus, then every branch drops by one.
// If the lowest branch ends up over the player the round stops with
// ReasonDeath. Chops are ignored while the round is not running.
func (r *Round) Cut(side branch.Side) Outcome {
	if r.State != Running || side == branch.None {
		return Outcome{Side: side}
	}

	r.PlayerSide = side
	r.Score++
	bonus := r.config.Bonus(r.Score)
	r.TimeLeft += bonus
	dropped := r.sim.Advance(&r.Branches)

	out := Outcome{
		Accepted: true,
		Side:     side,
		Bonus:    bonus,
		Dropped:  dropped,
	}
	r.emit(EventChopped)

	out.Died = r.checkCollision()
	return out
}

// Banner texts shown while no round is running.
const (
	MessageStart   = "Press Enter to start!"
	MessageTimeout = "Out of time!"
	MessageDeath   = "SQUISHED!"
)

// Banner returns the text to centre on screen, or "" while running.
func (r *Round) Banner() string {
	if r.State == Running {
		return ""
	}
	switch r.Reason {
	case ReasonTimeout:
		return MessageTimeout
	case ReasonDeath:
		return MessageDeath
	default:
		return MessageStart
	}
}

// TimeFraction returns the remaining time relative to the starting time.
// It can exceed 1 when bonuses pile up.
func (r *Round) TimeFraction() float64 {
	return r.TimeLeft / r.config.Round.StartTime
}

func (r *Round) stop(reason Reason) {
	r.State = Stopped
	r.Reason = reason
}

func (r *Round) emit(e Event) {
	if r.OnEvent != nil {
		r.OnEvent(e)
	}
}
