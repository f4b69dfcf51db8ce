package sim

import (
	"math"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

// Ellipse holds axis-aligned half-extents.
type Ellipse struct {
	RX, RY float64
}

// PlayerEllipse returns the player's hitbox.
func PlayerEllipse(p Player, prof config.Profile) Ellipse {
	s := prof.Player.HitboxScale
	return Ellipse{RX: p.Radius * playerEllipseX * s, RY: p.Radius * playerEllipseY * s}
}

// EntityEllipse returns an entity's hitbox. Fish are wider than tall;
// hazards are symmetric.
func EntityEllipse(e Entity, prof config.Profile) Ellipse {
	r := e.body().Radius
	s := prof.Enemies.HitboxScale
	switch e.(type) {
	case *Apex:
		return Ellipse{RX: r * apexEllipseX * s, RY: r * apexEllipseY * s}
	case *Hazard:
		return Ellipse{RX: r * hazardEllipse * s, RY: r * hazardEllipse * s}
	default:
		return Ellipse{RX: r * fishEllipseX * s, RY: r * fishEllipseY * s}
	}
}

// Overlaps tests two ellipses with the normalized ellipse-sum inequality.
func Overlaps(a core.Vec2, ea Ellipse, b core.Vec2, eb Ellipse) bool {
	rx := ea.RX + eb.RX
	ry := ea.RY + eb.RY
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx/(rx*rx)+dy*dy/(ry*ry) <= 1
}

// CanEat reports whether the player at tier can eat e.
// Only prey and predators up to the player's tier are edible.
func CanEat(tier int, e Entity) bool {
	switch v := e.(type) {
	case *Prey:
		return int(v.Size) <= tier
	case *Predator:
		return int(v.Size) <= tier
	default:
		return false
	}
}

// FishPoints returns the score for eating a fish of the given class.
func FishPoints(size SizeClass, multiplier float64) int {
	base := fishPoints[core.Clamp(int(size), 1, len(fishPoints))-1]
	return int(math.Floor(float64(base) * multiplier))
}

// ApexDamage returns the tail-hit damage dealt by a player of the given tier.
func ApexDamage(tier int) int {
	switch {
	case tier < 3:
		return 1
	case tier < MaxTier:
		return 2
	default:
		return 3
	}
}

// resolveCollisions runs every entity against the player in order.
// Consumed entities are dropped; survivors keep their relative order.
func resolveCollisions(w *World, rng Rand) []Event {
	var events []Event
	playerBox := PlayerEllipse(w.Player, w.Profile)
	survivors := make([]Entity, 0, len(w.Entities))

	culling := false
	var cullAt core.Vec2

	for i, e := range w.Entities {
		if w.Mode == ModeGameOver {
			survivors = append(survivors, w.Entities[i:]...)
			break
		}

		b := e.body()
		if culling && core.Distance(b.Pos, cullAt) < respawnCullRange {
			continue
		}
		if !Overlaps(w.Player.Pos, playerBox, b.Pos, EntityEllipse(e, w.Profile)) {
			survivors = append(survivors, e)
			continue
		}

		if apex, ok := e.(*Apex); ok {
			evs, killed := w.hitApex(apex, playerBox)
			events = append(events, evs...)
			if !killed {
				survivors = append(survivors, e)
			}
			continue
		}

		if CanEat(w.Player.Tier, e) {
			events = append(events, w.eat(e)...)
			continue
		}

		survivors = append(survivors, e)
		evs, respawned := w.hurtPlayer(rng)
		events = append(events, evs...)
		if respawned {
			culling = true
			cullAt = w.Player.Pos
			playerBox = PlayerEllipse(w.Player, w.Profile)
			survivors = cullNear(survivors, cullAt)
		}
	}

	w.Entities = survivors
	return events
}

func cullNear(entities []Entity, at core.Vec2) []Entity {
	kept := entities[:0]
	for _, e := range entities {
		if core.Distance(e.body().Pos, at) >= respawnCullRange {
			kept = append(kept, e)
		}
	}
	return kept
}

func (w *World) eat(e Entity) []Event {
	size, _ := SizeOf(e)
	points := FishPoints(size, w.Profile.Scoring.Multiplier)
	w.Run.Score += points
	w.Run.PreyEaten++

	b := e.body()
	return []Event{
		EatEvent{EntityID: b.ID, Kind: e.Kind(), Size: size, Pos: b.Pos, Points: points},
		ScoreEvent{Amount: points, Total: w.Run.Score},
	}
}

// hurtPlayer applies hostile contact. It reports whether the player respawned.
func (w *World) hurtPlayer(rng Rand) ([]Event, bool) {
	t := w.Run.Elapsed
	if t < w.Player.InvulnerableUntil {
		return nil, false
	}

	w.Player.Lives--
	events := []Event{PlayerHitEvent{LivesRemaining: w.Player.Lives}}
	if w.Player.Lives <= 0 {
		w.Mode = ModeGameOver
		w.Player.Vel = core.Vec2{}
		return append(events, GameOverEvent{FinalScore: w.Run.Score}), false
	}

	offset := (rng.Float64()*2 - 1) * respawnJitter
	w.Player.Pos = core.V(respawnX, w.Arena.Height/2+offset)
	w.Player.Vel = core.Vec2{}
	w.Player.InvulnerableUntil = t + w.Profile.Player.RespawnGrace
	return events, true
}

// InTailBand reports whether the player sits behind the apex far enough to
// land a hit. Facing follows the sign of the apex's horizontal velocity.
func InTailBand(apex *Apex, player core.Vec2, band, leniency float64) bool {
	facing := 1.0
	if apex.Vel.X < 0 {
		facing = -1
	}
	behind := -(player.X - apex.Pos.X) * facing
	if behind <= 0 {
		return false
	}
	need := band * math.Max(0, apex.Combat.TailBias-leniency) * tailBandFraction
	return behind >= need
}

// hitApex resolves overlap with an apex. Front-body contact does nothing.
// It reports whether the apex was killed.
func (w *World) hitApex(apex *Apex, playerBox Ellipse) ([]Event, bool) {
	t := w.Run.Elapsed
	band := playerBox.RX + EntityEllipse(apex, w.Profile).RX
	if !InTailBand(apex, w.Player.Pos, band, w.Profile.Apex.TailLeniency) {
		return nil, false
	}
	if t-apex.Combat.LastHitAt < apexHitCooldown {
		return nil, false
	}

	damage := ApexDamage(w.Player.Tier)
	points := int(math.Floor(apexHitPoints * w.Profile.Scoring.Multiplier))

	c := &apex.Combat
	c.Health -= damage
	c.FlashUntil = t + apexFlashSeconds
	c.LastHitAt = t
	w.Threat.LastHitAt = t
	w.Threat.Intensity = math.Max(w.Threat.Intensity, c.DamageFraction())

	events := []Event{ApexHitEvent{
		EntityID:  apex.ID,
		Damage:    damage,
		Health:    max(c.Health, 0),
		MaxHealth: c.MaxHealth,
		Points:    points,
		Pos:       apex.Pos,
	}}

	total := points
	killed := c.Health <= 0
	if killed {
		bonus := apexKillFactor * points
		total += bonus
		w.Threat.Intensity = 0
		w.Threat.LastKillAt = t
		w.Run.ApexKills++
		events = append(events, ApexKilledEvent{EntityID: apex.ID, Points: bonus, Pos: apex.Pos})
	}

	w.Run.Score += total
	events = append(events, ScoreEvent{Amount: total, Total: w.Run.Score})
	return events, killed
}
