package sim

import (
	"math"

	"github.com/gulati8/SharkShark/internal/core"
)

// EntityID identifies an entity within a run. IDs are never reused.
type EntityID int

// Kind enumerates entity variants.
type Kind int

const (
	KindPrey Kind = iota
	KindPredator
	KindHazard
	KindApex
)

// String returns the kind name used in logs and replays.
func (k Kind) String() string {
	switch k {
	case KindPrey:
		return "prey"
	case KindPredator:
		return "predator"
	case KindHazard:
		return "hazard"
	case KindApex:
		return "apex"
	default:
		return "unknown"
	}
}

// SizeClass ranks a fish in the food chain (1-4; apex is 5).
type SizeClass int

// Body is the state shared by every entity.
type Body struct {
	ID     EntityID
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Cruise float64 // Speed drawn at spawn
}

// Entity is one actor in the arena. The set of variants is closed:
// Prey, Predator, Hazard and Apex.
type Entity interface {
	body() *Body
	Kind() Kind
}

// Prey is a small fish that only threatens undersized players.
type Prey struct {
	Body
	Size SizeClass
}

// Predator is a fish spawned with a larger size bias that hunts the player.
type Predator struct {
	Body
	Size SizeClass
}

// Hazard drifts without steering and is never edible.
type Hazard struct {
	Body
	Drift core.Vec2
	Phase float64
}

// Apex is a boss fish. It is damaged only from behind.
type Apex struct {
	Body
	Combat Combat
}

// Combat is the apex hit-point record.
type Combat struct {
	MaxHealth  int
	Health     int
	TailBias   float64 // Fraction of the tail band the player must clear
	FlashUntil float64
	LastHitAt  float64 // -Inf until the first hit
}

// DamageFraction returns the share of health lost, in [0,1].
func (c Combat) DamageFraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(1-float64(c.Health)/float64(c.MaxHealth), 0, 1)
}

func newCombat(maxHealth int, tailBias float64) Combat {
	return Combat{
		MaxHealth: maxHealth,
		Health:    maxHealth,
		TailBias:  tailBias,
		LastHitAt: math.Inf(-1),
	}
}

func (e *Prey) body() *Body     { return &e.Body }
func (e *Predator) body() *Body { return &e.Body }
func (e *Hazard) body() *Body   { return &e.Body }
func (e *Apex) body() *Body     { return &e.Body }

func (*Prey) Kind() Kind     { return KindPrey }
func (*Predator) Kind() Kind { return KindPredator }
func (*Hazard) Kind() Kind   { return KindHazard }
func (*Apex) Kind() Kind     { return KindApex }

// BodyOf returns a copy of the entity's shared state.
func BodyOf(e Entity) Body {
	return *e.body()
}

// SizeOf returns the size class of an entity and whether it has one.
// Hazards have no size class.
func SizeOf(e Entity) (SizeClass, bool) {
	switch v := e.(type) {
	case *Prey:
		return v.Size, true
	case *Predator:
		return v.Size, true
	case *Apex:
		return apexSizeClass, true
	default:
		return 0, false
	}
}

// cloneEntity returns an independent copy so that steps never alias
// the previous world.
func cloneEntity(e Entity) Entity {
	switch v := e.(type) {
	case *Prey:
		c := *v
		return &c
	case *Predator:
		c := *v
		return &c
	case *Hazard:
		c := *v
		return &c
	case *Apex:
		c := *v
		return &c
	default:
		panic("sim: unknown entity variant")
	}
}

func cloneEntities(src []Entity) []Entity {
	dst := make([]Entity, len(src))
	for i, e := range src {
		dst[i] = cloneEntity(e)
	}
	return dst
}

// PlayerRadius returns the radius for a size tier, clamped to [1, MaxTier].
func PlayerRadius(tier int) float64 {
	return playerRadii[core.Clamp(tier, 1, MaxTier)-1]
}

func fishRadius(size SizeClass) float64 {
	return fishRadii[core.Clamp(int(size), 1, len(fishRadii))-1]
}
