package sim

import (
	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

// Mode drives whether a step advances the simulation.
type Mode int

const (
	ModeTitle Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Arena is the fixed playfield rectangle, origin top-left.
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena.
func (a Arena) Center() core.Vec2 {
	return core.V(a.Width/2, a.Height/2)
}

// DefaultArena returns the constant arena.
func DefaultArena() Arena {
	return Arena{Width: ArenaWidth, Height: ArenaHeight}
}

// Player is the controlled organism.
type Player struct {
	Pos               core.Vec2
	Vel               core.Vec2
	Radius            float64
	Tier              int
	Lives             int
	InvulnerableUntil float64 // Run seconds
}

// Run holds score and progression counters.
type Run struct {
	Score           int
	Elapsed         float64
	PreyEaten       int
	ApexKills       int
	NextGrowthAt    int
	NextExtraLifeAt int
	Milestone       int
	Ticks           int
}

// SpawnTimers are per-kind accumulators in seconds.
type SpawnTimers struct {
	Prey     float64
	Predator float64
	Hazard   float64
	Apex     float64
}

// ApexThreat is the aggregate boss danger signal.
type ApexThreat struct {
	Active     int
	Intensity  float64 // In [0,1]
	LastHitAt  float64
	LastKillAt float64
	Reported   float64 // Last intensity published in an event
}

// World is the whole simulation state. Step never mutates its input.
type World struct {
	Mode     Mode
	Arena    Arena
	Profile  config.Profile
	Player   Player
	Entities []Entity
	NextID   EntityID
	Run      Run
	Timers   SpawnTimers
	Threat   ApexThreat
	Events   []Event // Produced by the most recent step only
}

// NewWorld builds an idle world at the title screen.
func NewWorld(p config.Profile) World {
	w := freshRun(p)
	w.Mode = ModeTitle
	return w
}

func freshRun(p config.Profile) World {
	arena := DefaultArena()
	return World{
		Mode:    ModePlaying,
		Arena:   arena,
		Profile: p,
		Player: Player{
			Pos:    core.V(respawnX, arena.Height/2),
			Radius: PlayerRadius(1),
			Tier:   1,
			Lives:  p.Player.StartingLives,
		},
		NextID: 1,
		Run: Run{
			NextGrowthAt:    growthStep,
			NextExtraLifeAt: p.Scoring.ExtraLifeStep,
		},
		Threat: ApexThreat{
			LastHitAt:  -1,
			LastKillAt: -1,
		},
	}
}

// clone returns a deep copy with events cleared.
func (w World) clone() World {
	c := w
	c.Entities = cloneEntities(w.Entities)
	c.Events = nil
	return c
}

// Alive reports whether the run is still in progress.
func (w World) Alive() bool {
	return w.Mode == ModePlaying || w.Mode == ModePaused
}

// Summary returns run totals for persistence.
func (w World) Summary() core.RunSummary {
	return core.RunSummary{
		Score:     w.Run.Score,
		Tier:      w.Player.Tier,
		PreyEaten: w.Run.PreyEaten,
		ApexKills: w.Run.ApexKills,
		Seconds:   w.Run.Elapsed,
	}
}

// CountKind returns the number of live entities of a kind.
func (w World) CountKind(k Kind) int {
	n := 0
	for _, e := range w.Entities {
		if e.Kind() == k {
			n++
		}
	}
	return n
}
