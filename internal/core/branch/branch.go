// Package branch models the stack of branches growing out of the tree trunk.
// Slot 0 is the top of the visible trunk and the last slot is level with the
// lumberjack's head, so a branch arriving there on the player's side is fatal.
package branch

import (
	"math/rand"
)

// Count is the number of branch slots on the trunk.
const Count = 6

// Side identifies which side of the trunk something occupies.
type Side int

const (
	Left Side = iota
	Right
	None
)

// String returns a lowercase name for the side.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// Queue holds the branch side for every slot, top to bottom.
type Queue [Count]Side

// Bottom returns the side of the lowest branch.
func (q *Queue) Bottom() Side {
	return q[Count-1]
}

// Clear removes every branch.
func (q *Queue) Clear() {
	for i := range q {
		q[i] = None
	}
}

// Collides reports whether the bottom branch hangs over the given side.
func (q *Queue) Collides(side Side) bool {
	return side != None && q.Bottom() == side
}

// Simulator grows new branches at the top of the trunk.
type Simulator struct {
	rng   *rand.Rand
	sides int
}

// NewSimulator creates a Simulator drawing from rng. The roll picks an
// integer in [0, sides): 0 is Left, 1 is Right and everything else is None.
// Sides below 3 fall back to 5.
func NewSimulator(rng *rand.Rand, sides int) *Simulator {
	if sides < 3 {
		sides = 5
	}
	return &Simulator{rng: rng, sides: sides}
}

// NewSeeded is a convenience for NewSimulator(rand.New(rand.NewSource(seed)), sides).
func NewSeeded(seed int64, sides int) *Simulator {
	return NewSimulator(rand.New(rand.NewSource(seed)), sides)
}

// Roll draws the side of a fresh branch.
func (s *Simulator) Roll() Side {
	switch s.rng.Intn(s.sides) {
	case 0:
		return Left
	case 1:
		return Right
	default:
		return None
	}
}

// Advance shifts every branch one slot down, dropping the bottom one, and
// grows a freshly rolled branch in the top slot. It returns the side that
// fell off the bottom.
func (s *Simulator) Advance(q *Queue) Side {
	dropped := q[Count-1]
	for j := Count - 1; j > 0; j-- {
		q[j] = q[j-1]
	}
	q[0] = s.Roll()
	return dropped
}
