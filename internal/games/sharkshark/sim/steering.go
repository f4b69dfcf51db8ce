package sim

import (
	"math"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

// smooth moves vel toward target by turnRate*dt, clamped to a full snap.
func smooth(vel, target core.Vec2, turnRate, dt float64) core.Vec2 {
	return core.LerpVec(vel, target, core.ClampF(turnRate*dt, 0, 1))
}

// SanitizeMove clamps each input component to [-1,1]. NaN reads as no input.
func SanitizeMove(m core.Vec2) core.Vec2 {
	return core.V(axis(m.X), axis(m.Y))
}

func axis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return core.ClampF(v, -1, 1)
}

// steerPlayer integrates the player toward the input-driven velocity and
// clamps it inside the arena. The player never wraps.
func steerPlayer(p Player, move core.Vec2, prof config.PlayerProfile, a Arena, dt float64) Player {
	target := SanitizeMove(move).Scale(prof.Speed)
	p.Vel = smooth(p.Vel, target, prof.TurnRate, dt)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, a.Width-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, a.Height-p.Radius)
	return p
}

// steerEntity updates one entity's velocity and position in place.
func steerEntity(e Entity, player Player, prof config.Profile, elapsed, dt float64, a Arena) {
	b := e.body()

	switch v := e.(type) {
	case *Prey:
		b.Vel = steerFish(*b, v.Size, player, prof.Enemies.PredatorAggression*preyAggressionScale, dt)
	case *Predator:
		b.Vel = steerFish(*b, v.Size, player, prof.Enemies.PredatorAggression, dt)
	case *Apex:
		aggr := prof.Enemies.ApexAggression
		speed := b.Cruise * (apexSpeedBase + apexSpeedGain*aggr)
		target := player.Pos.Sub(b.Pos).Normalize().Scale(speed)
		b.Vel = smooth(b.Vel, target, apexTurnRate*(0.5+aggr), dt)
	case *Hazard:
		bob := hazardBobAmp * math.Sin(hazardBobFreq*elapsed+v.Phase)
		b.Vel = v.Drift.Add(core.V(0, bob))
	}

	b.Pos = wrap(b.Pos.Add(b.Vel.Scale(dt)), b.Radius, a)
}

// steerFish chases when the fish outclasses the player, flees when the
// player is close enough to eat it, and otherwise keeps cruising.
func steerFish(b Body, size SizeClass, player Player, aggr, dt float64) core.Vec2 {
	toPlayer := player.Pos.Sub(b.Pos)

	if Threatens(size, player.Tier) {
		gap := float64(int(size) - player.Tier)
		speed := b.Cruise * (1 + aggr*chaseAggressionGain + gap*chaseGapGain)
		turn := chaseTurnRate * (0.6 + aggr) * (1 + chaseGapTurnGain*gap)
		return smooth(b.Vel, toPlayer.Normalize().Scale(speed), turn, dt)
	}

	heading := b.Vel.Normalize()
	if toPlayer.Len() < FleeRadius(player.Tier) {
		away := toPlayer.Scale(-1).Normalize()
		if away.IsZero() {
			away = heading
		}
		return smooth(b.Vel, away.Scale(b.Cruise*fleeSpeedFactor), fleeTurnRate, dt)
	}
	return smooth(b.Vel, heading.Scale(b.Cruise), cruiseTurnRate, dt)
}

// Threatens reports whether a fish of the given size outclasses the player.
func Threatens(size SizeClass, tier int) bool {
	return int(size) > tier
}

// FleeRadius is the distance at which edible fish start to flee.
func FleeRadius(tier int) float64 {
	return fleeRadiusBase + fleeRadiusPerTier*float64(tier)
}

// wrap moves a point that left the arena by more than r to the opposite edge.
func wrap(p core.Vec2, r float64, a Arena) core.Vec2 {
	switch {
	case p.X < -r:
		p.X = a.Width + r
	case p.X > a.Width+r:
		p.X = -r
	}
	switch {
	case p.Y < -r:
		p.Y = a.Height + r
	case p.Y > a.Height+r:
		p.Y = -r
	}
	return p
}
