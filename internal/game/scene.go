package game

import (
	"math/rand"

	"chosenoffset.com/timber/internal/core/branch"
	"chosenoffset.com/timber/internal/simulation"
)

// Decorations leave the screen past these x coordinates.
const (
	npcMinX = -200
	npcMaxX = 2000
	logMinX = -100
	logMaxX = 2000
)

// Scene holds the decorative sprites that move independently of the rules.
type Scene struct {
	Clouds [3]NPC
	Bee    NPC
	Log    FlyingLog

	rng *rand.Rand
}

// NewScene creates the clouds, the bee and the resting log. The rng only
// feeds decorations so it never disturbs the branch sequence.
func NewScene(rng *rand.Rand) *Scene {
	return &Scene{
		Clouds: [3]NPC{
			{MaxHeight: 100, MaxSpeed: 200, Direction: 1, StartX: npcMinX},
			{MaxHeight: 250, MaxSpeed: 200, Direction: 1, StartX: npcMinX},
			{MaxHeight: 500, MaxSpeed: 200, Direction: 1, StartX: npcMinX},
		},
		Bee: NPC{MaxHeight: 500, MaxSpeed: 400, Direction: -1, StartX: npcMaxX},
		Log: FlyingLog{X: logStartX, Y: logStartY},
		rng: rng,
	}
}

// Update moves every decoration by dt seconds.
func (s *Scene) Update(dt float64) {
	for i := range s.Clouds {
		s.updateNPC(&s.Clouds[i], dt)
	}
	s.updateNPC(&s.Bee, dt)
	s.updateLog(dt)
}

// updateNPC spawns an inactive NPC or moves an active one, deactivating it
// once it drifts off screen.
func (s *Scene) updateNPC(npc *NPC, dt float64) {
	if !npc.Active {
		npc.Speed = float64(s.rng.Intn(npc.MaxSpeed)) * npc.Direction
		npc.X = npc.StartX
		npc.Y = float64(s.rng.Intn(npc.MaxHeight))
		npc.Active = true
		return
	}

	npc.X += npc.Speed * dt
	if npc.X < npcMinX || npc.X > npcMaxX {
		npc.Active = false
	}
}

// LaunchLog sends the log flying away from the side that was chopped.
func (s *Scene) LaunchLog(side branch.Side, cfg simulation.LogConfig) {
	s.Log.X, s.Log.Y = logStartX, logStartY
	s.Log.SpeedX = cfg.SpeedX
	if side == branch.Right {
		s.Log.SpeedX = -cfg.SpeedX
	}
	s.Log.SpeedY = cfg.SpeedY
	s.Log.Active = true
}

func (s *Scene) updateLog(dt float64) {
	if !s.Log.Active {
		return
	}
	s.Log.X += s.Log.SpeedX * dt
	s.Log.Y += s.Log.SpeedY * dt
	if s.Log.X < logMinX || s.Log.X > logMaxX {
		s.Log.Active = false
		s.Log.X, s.Log.Y = logStartX, logStartY
	}
}
