package sim

import (
	"math"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

// spawnChannel binds a kind to its accumulator and profile rule.
type spawnChannel struct {
	kind  Kind
	timer *float64
	rule  config.SpawnRule
}

// spawnEntities advances spawn timers and appends new entities to w.
func spawnEntities(w *World, dt float64, rng Rand) {
	rules := w.Profile.Spawn
	channels := [...]spawnChannel{
		{KindPrey, &w.Timers.Prey, rules.Prey},
		{KindPredator, &w.Timers.Predator, rules.Predator},
		{KindHazard, &w.Timers.Hazard, rules.Hazard},
		{KindApex, &w.Timers.Apex, rules.Apex},
	}

	for _, ch := range channels {
		if !eligible(*w, ch.kind, ch.rule) {
			continue
		}
		*ch.timer += dt
		if *ch.timer >= 1/ch.rule.Rate {
			*ch.timer = 0
			w.Entities = append(w.Entities, newEntity(w, ch.kind, rng))
		}
	}
}

// eligible reports whether a kind may accumulate spawn time this tick.
func eligible(w World, kind Kind, rule config.SpawnRule) bool {
	if rule.Rate <= 0 || w.CountKind(kind) >= rule.Cap {
		return false
	}
	return Unlocked(kind, w.Run.Elapsed, w.Run.Score, w.Player.Tier)
}

// Unlocked reports whether a kind has passed its unlock gate.
func Unlocked(kind Kind, elapsed float64, score, tier int) bool {
	switch kind {
	case KindPrey:
		return true
	case KindPredator:
		return elapsed >= predatorUnlockSeconds || score >= predatorUnlockScore
	case KindHazard:
		return elapsed >= hazardUnlockSeconds || tier >= hazardUnlockTier
	case KindApex:
		return elapsed >= apexUnlockSeconds && (tier >= apexUnlockTier || score >= apexUnlockScore)
	default:
		return false
	}
}

// newEntity draws a fresh entity of the given kind just outside an edge.
// Draw order: size, edge, edge offset, heading angle, speed, extras.
func newEntity(w *World, kind Kind, rng Rand) Entity {
	id := w.NextID
	w.NextID++

	var (
		size   SizeClass
		radius float64
	)
	switch kind {
	case KindPrey, KindPredator:
		size = pickSize(SizeWeights(kind, w.Run.Elapsed, w.Player.Tier), rng)
		radius = fishRadius(size)
	case KindHazard:
		radius = hazardRadius
	case KindApex:
		size = apexSizeClass
		radius = apexRadius
	}

	pos := edgePosition(w.Arena, radius, rng)
	dir := spawnHeading(pos, w.Arena.Center(), headingBias(kind, w.Profile), rng)
	lo, hi := speedRange(kind, size)
	speed := lo + rng.Float64()*(hi-lo)

	body := Body{
		ID:     id,
		Pos:    pos,
		Vel:    dir.Scale(speed),
		Radius: radius,
		Cruise: speed,
	}

	switch kind {
	case KindPrey:
		return &Prey{Body: body, Size: size}
	case KindPredator:
		return &Predator{Body: body, Size: size}
	case KindHazard:
		return &Hazard{Body: body, Drift: body.Vel, Phase: rng.Float64() * 2 * math.Pi}
	default:
		bias := tailBiasMin + rng.Float64()*tailBiasSpread
		return &Apex{Body: body, Combat: newCombat(w.Profile.Apex.MaxHealth, bias)}
	}
}

// SizeWeights returns the class 1..4 weights for a fish spawn.
func SizeWeights(kind Kind, elapsed float64, tier int) [4]int {
	var weights [4]int
	if elapsed < earlyPhaseSeconds {
		weights = earlyWeights
	} else {
		weights = tierWeights[core.Clamp(tier, 1, MaxTier)-1]
		if elapsed >= latePhaseSeconds {
			for i := range weights {
				weights[i] += lateBonus[i]
			}
		}
	}

	if kind != KindPredator {
		return weights
	}

	// Predators lean one class larger. The early window still stays within
	// the two smallest classes.
	if elapsed < earlyPhaseSeconds {
		return [4]int{weights[1], weights[0], 0, 0}
	}
	return [4]int{0, weights[0], weights[1], weights[2] + weights[3]}
}

func pickSize(weights [4]int, rng Rand) SizeClass {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 1
	}
	r := rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return SizeClass(i + 1)
		}
		r -= w
	}
	return SizeClass(len(weights))
}

// edgePosition picks a random edge and places the entity just beyond it.
func edgePosition(a Arena, radius float64, rng Rand) core.Vec2 {
	edge := rng.Intn(4)
	t := rng.Float64()
	switch edge {
	case 0:
		return core.V(-radius, t*a.Height)
	case 1:
		return core.V(a.Width+radius, t*a.Height)
	case 2:
		return core.V(t*a.Width, -radius)
	default:
		return core.V(t*a.Width, a.Height+radius)
	}
}

// spawnHeading blends a random direction with the direction to the centre.
// bias 0 is fully random, 1 aims straight at the centre.
func spawnHeading(pos, center core.Vec2, bias float64, rng Rand) core.Vec2 {
	random := core.FromAngle(rng.Float64() * 2 * math.Pi)
	toCenter := center.Sub(pos).Normalize()
	dir := core.LerpVec(random, toCenter, core.ClampF(bias, 0, 1)).Normalize()
	if dir.IsZero() {
		return toCenter
	}
	return dir
}

func headingBias(kind Kind, p config.Profile) float64 {
	switch kind {
	case KindPredator:
		return p.Enemies.PredatorAggression
	case KindApex:
		return p.Enemies.ApexAggression
	case KindHazard:
		return hazardHeadingBias
	default:
		return preyHeadingBias
	}
}

func speedRange(kind Kind, size SizeClass) (float64, float64) {
	s := float64(size)
	switch kind {
	case KindPrey:
		return preyMinSpeed + preySpeedPerSize*s, preyMaxSpeed + preySpeedPerSize*s
	case KindPredator:
		return predMinSpeed + predSpeedPerSize*s, predMaxSpeed + predSpeedPerSize*s
	case KindHazard:
		return hazardMinSpeed, hazardMaxSpeed
	default:
		return apexMinSpeed, apexMaxSpeed
	}
}
