// Package sim is the deterministic SharkShark simulation core.
//
// The world is a value: Step copies it, advances the copy by one tick and
// returns it with the events produced along the way. All randomness is
// drawn from the Rand passed in by the caller.
package sim

import (
	"math"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

// Input is the player's intent for one tick.
type Input struct {
	Move        core.Vec2 // Raw direction, components roughly in [-1,1]
	TogglePause bool      // Edge-triggered
}

// StartRun begins a fresh run from the title or game over screens.
// Other modes are left untouched.
func StartRun(w World) World {
	if w.Mode != ModeTitle && w.Mode != ModeGameOver {
		return w
	}
	return freshRun(w.Profile)
}

// SetDifficulty swaps the profile outside an active run, returning to title.
func SetDifficulty(w World, p config.Profile) World {
	if w.Alive() {
		return w
	}
	return NewWorld(p)
}

// ClampStep bounds a time delta to [0, MaxStep]. NaN becomes zero.
func ClampStep(dt float64) float64 {
	if math.IsNaN(dt) {
		return 0
	}
	return core.ClampF(dt, 0, MaxStep)
}

// Step advances the world by one tick.
// The returned events are also stored in World.Events.
func Step(w World, in Input, dt float64, rng Rand) (World, []Event) {
	next := w.clone()

	if in.TogglePause {
		switch next.Mode {
		case ModePlaying:
			next.Mode = ModePaused
			return next, nil
		case ModePaused:
			next.Mode = ModePlaying
		}
	}
	if next.Mode != ModePlaying {
		return next, nil
	}

	dt = ClampStep(dt)
	next.Run.Ticks++
	next.Run.Elapsed += dt

	spawnEntities(&next, dt, rng)

	next.Player = steerPlayer(next.Player, in.Move, next.Profile.Player, next.Arena, dt)
	for _, e := range next.Entities {
		steerEntity(e, next.Player, next.Profile, next.Run.Elapsed, dt, next.Arena)
	}

	// Progression also runs on the tick that ends the game.
	events := resolveCollisions(&next, rng)
	events = append(events, progress(&next)...)
	events = append(events, updateThreat(&next, dt)...)

	next.Events = events
	return next, events
}
