package game

import (
	"chosenoffset.com/timber/internal/core/branch"
)

// Logical screen size. The engine scales it to the window.
const (
	ScreenWidth  = 1920
	ScreenHeight = 1080
)

// Scene layout in logical pixels.
const (
	treeX       = 810
	backTree1X  = 100
	backTree2X  = 1500
	frontTree1X = 50
	frontTree2X = 1600

	branchSpacing = 150
	branchLeftX   = 610
	branchRightX  = 1330
	branchOriginX = 220 // Rotation origin inside the branch texture
	branchOriginY = 20

	playerLeftX  = 580
	playerRightX = 1200
	playerY      = 720

	axeLeftX  = 700
	axeRightX = 1075
	axeY      = 720

	gravestoneX = 525
	gravestoneY = 760

	logStartX = 810
	logStartY = 720

	timeBarY = 980
)

// PlayerX returns where the lumberjack stands for a side.
func PlayerX(side branch.Side) float64 {
	if side == branch.Right {
		return playerRightX
	}
	return playerLeftX
}

// AxeX returns where the axe is held for a side.
func AxeX(side branch.Side) float64 {
	if side == branch.Right {
		return axeRightX
	}
	return axeLeftX
}

// BranchPosition returns where a branch slot is drawn and whether it is
// mirrored. Empty slots are not drawn.
func BranchPosition(slot int, side branch.Side) (x, y float64, flipped, visible bool) {
	y = float64(slot * branchSpacing)
	switch side {
	case branch.Left:
		return branchLeftX, y, true, true
	case branch.Right:
		return branchRightX, y, false, true
	default:
		return 0, y, false, false
	}
}

// NPC is a decoration that drifts horizontally across the screen and
// respawns with a new speed and height once it leaves.
type NPC struct {
	X, Y      float64
	Speed     float64
	Active    bool
	MaxHeight int
	MaxSpeed  int
	Direction float64 // +1 drifts right, -1 drifts left
	StartX    float64
}

// FlyingLog is the chunk of trunk knocked away by a chop.
type FlyingLog struct {
	X, Y   float64
	SpeedX float64
	SpeedY float64
	Active bool
}
