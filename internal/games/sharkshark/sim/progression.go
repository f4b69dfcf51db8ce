package sim

import (
	"math"

	"github.com/gulati8/SharkShark/internal/core"
)

// progress applies growth, extra lives and milestones for the current score.
// Every threshold crossed this tick fires, in order.
func progress(w *World) []Event {
	var events []Event

	for w.Player.Tier < MaxTier && w.Run.Score >= w.Run.NextGrowthAt {
		w.Player.Tier++
		w.Player.Radius = PlayerRadius(w.Player.Tier)
		w.Run.NextGrowthAt += growthStep
		events = append(events, GrowthEvent{Tier: w.Player.Tier})
	}

	// No lives are granted once the run has ended.
	if step := w.Profile.Scoring.ExtraLifeStep; w.Player.Tier >= MaxTier && step > 0 && w.Mode == ModePlaying {
		for w.Run.Score >= w.Run.NextExtraLifeAt {
			w.Player.Lives++
			w.Run.NextExtraLifeAt += step
			events = append(events, ExtraLifeEvent{Lives: w.Player.Lives})
		}
	}

	if m := w.Run.Score / milestoneStep; m > w.Run.Milestone {
		w.Run.Milestone = m
		events = append(events, MilestoneEvent{Tier: m})
	}
	return events
}

// updateThreat recomputes the apex intensity from the live apex population.
func updateThreat(w *World, dt float64) []Event {
	decayed := w.Threat.Intensity * math.Pow(threatDecay, dt*threatDecayRate)
	if decayed < threatFloor {
		decayed = 0
	}

	active := 0
	sum := 0.0
	for _, e := range w.Entities {
		if apex, ok := e.(*Apex); ok {
			active++
			sum += apex.Combat.DamageFraction()
		}
	}

	next := decayed
	if active > 0 {
		next = math.Max(decayed, sum/float64(active))
	}
	next = core.ClampF(next, 0, 1)

	w.Threat.Active = active
	w.Threat.Intensity = next

	moved := math.Abs(next-w.Threat.Reported) >= threatReportDelta
	settled := next == 0 && w.Threat.Reported != 0
	if !moved && !settled {
		return nil
	}
	w.Threat.Reported = next
	return []Event{ApexIntensityEvent{Intensity: next}}
}
