// Package tty plays the game in a terminal using text cells instead of
// sprites. The rules are the same round and branch packages the window
// front-end uses.
package tty

import (
	"fmt"
	"strings"

	"chosenoffset.com/timber/internal/core/branch"
	"chosenoffset.com/timber/internal/core/round"
)

// Cell layout.
const (
	trunkWidth  = 4
	branchLen   = 10
	slotRows    = 2
	topRow      = 3
	maxBarWidth = 40
)

// PlayerRow is the row the lumberjack stands on.
const PlayerRow = topRow + branch.Count*slotRows

// Frame is a grid of runes ready to be copied to the terminal.
type Frame struct {
	Width, Height int
	Cells         []rune
}

// NewFrame returns a blank frame.
func NewFrame(width, height int) Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return Frame{Width: width, Height: height, Cells: cells}
}

// Set writes a rune, ignoring coordinates outside the frame.
func (f Frame) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = r
}

// At returns the rune at (x, y), or a space outside the frame.
func (f Frame) At(x, y int) rune {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return ' '
	}
	return f.Cells[y*f.Width+x]
}

// Text writes s starting at (x, y).
func (f Frame) Text(x, y int, s string) {
	for i, r := range []rune(s) {
		f.Set(x+i, y, r)
	}
}

// Row returns one line of the frame.
func (f Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	return string(f.Cells[y*f.Width : (y+1)*f.Width])
}

func (f Frame) String() string {
	var sb strings.Builder
	for y := 0; y < f.Height; y++ {
		sb.WriteString(strings.TrimRight(f.Row(y), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TrunkX returns the leftmost column of the trunk.
func TrunkX(width int) int {
	return width/2 - trunkWidth/2
}

// Compose draws the round into a new frame. The message, if any, is centred
// below the player.
func Compose(r *round.Round, message string, width, height int) Frame {
	f := NewFrame(width, height)

	f.Text(0, 0, fmt.Sprintf("Score = %d", r.Score))

	barWidth := min(maxBarWidth, width-2)
	if barWidth > 0 {
		filled := int(r.TimeFraction() * float64(barWidth))
		filled = max(0, min(filled, barWidth))
		bar := "[" + strings.Repeat("#", filled) + strings.Repeat(" ", barWidth-filled) + "]"
		f.Text(0, 1, bar)
		f.Text(barWidth+3, 1, fmt.Sprintf("%.1fs", r.TimeLeft))
	}

	cx := TrunkX(width)
	for y := topRow; y <= PlayerRow; y++ {
		f.Set(cx, y, '|')
		f.Set(cx+trunkWidth-1, y, '|')
	}

	for i, side := range r.Branches {
		y := topRow + i*slotRows
		switch side {
		case branch.Left:
			f.Text(cx-branchLen, y, strings.Repeat("=", branchLen))
		case branch.Right:
			f.Text(cx+trunkWidth, y, strings.Repeat("=", branchLen))
		}
	}

	px := cx - 3
	axe := "/"
	axeX := cx - 1
	if r.PlayerSide == branch.Right {
		px = cx + trunkWidth + 2
		axe = "\\"
		axeX = cx + trunkWidth
	}
	if r.Reason == round.ReasonDeath && r.Paused() {
		f.Text(px-1, PlayerRow, "RIP")
	} else {
		f.Set(px, PlayerRow, '@')
		f.Text(axeX, PlayerRow, axe)
	}

	if message != "" {
		f.Text(width/2-len([]rune(message))/2, PlayerRow+2, message)
	}
	return f
}
