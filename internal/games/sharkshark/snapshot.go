package sharkshark

import (
	"math"

	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

// Snapshot is a flat view of the game state for determinism checks.
type Snapshot struct {
	Tick      int
	Mode      string
	Score     int
	Lives     int
	Tier      int
	PreyEaten int
	ApexKills int
	PlayerX   float64
	PlayerY   float64
	NextID    int
	Intensity float64

	// Each entity is 4 values: ID, Kind, X, Y
	EntityData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	data := make([]float64, 0, len(w.Entities)*4)
	for _, e := range w.Entities {
		b := sim.BodyOf(e)
		data = append(data, float64(b.ID), float64(e.Kind()), b.Pos.X, b.Pos.Y)
	}

	return Snapshot{
		Tick:       w.Run.Ticks,
		Mode:       w.Mode.String(),
		Score:      w.Run.Score,
		Lives:      w.Player.Lives,
		Tier:       w.Player.Tier,
		PreyEaten:  w.Run.PreyEaten,
		ApexKills:  w.Run.ApexKills,
		PlayerX:    w.Player.Pos.X,
		PlayerY:    w.Player.Pos.Y,
		NextID:     int(w.NextID),
		Intensity:  w.Threat.Intensity,
		EntityData: data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tier)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PreyEaten) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ApexKills) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextID)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.Intensity)
	for _, r := range snap.Mode {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EntityData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
