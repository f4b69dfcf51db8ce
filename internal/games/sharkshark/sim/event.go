package sim

import "github.com/gulati8/SharkShark/internal/core"

// Event is a discrete notable occurrence within one step.
// Consumers switch on the concrete type.
type Event interface {
	isEvent()
}

// ScoreEvent reports points awarded this step.
type ScoreEvent struct {
	Amount int
	Total  int
}

// EatEvent reports an edible entity consumed by the player.
type EatEvent struct {
	EntityID EntityID
	Kind     Kind
	Size     SizeClass
	Pos      core.Vec2
	Points   int
}

// PlayerHitEvent reports a life lost to hostile contact.
type PlayerHitEvent struct {
	LivesRemaining int
}

// ExtraLifeEvent reports a life granted at max tier.
type ExtraLifeEvent struct {
	Lives int
}

// GrowthEvent reports a new size tier.
type GrowthEvent struct {
	Tier int
}

// GameOverEvent ends the run.
type GameOverEvent struct {
	FinalScore int
}

// MilestoneEvent reports each new thousand-point milestone.
type MilestoneEvent struct {
	Tier int
}

// ApexHitEvent reports a successful tail hit. Health is never negative.
type ApexHitEvent struct {
	EntityID  EntityID
	Damage    int
	Health    int
	MaxHealth int
	Points    int
	Pos       core.Vec2
}

// ApexKilledEvent reports an apex removed by a tail hit.
type ApexKilledEvent struct {
	EntityID EntityID
	Points   int
	Pos      core.Vec2
}

// ApexIntensityEvent reports a change of the threat signal.
type ApexIntensityEvent struct {
	Intensity float64
}

func (ScoreEvent) isEvent()         {}
func (EatEvent) isEvent()           {}
func (PlayerHitEvent) isEvent()     {}
func (ExtraLifeEvent) isEvent()     {}
func (GrowthEvent) isEvent()        {}
func (GameOverEvent) isEvent()      {}
func (MilestoneEvent) isEvent()     {}
func (ApexHitEvent) isEvent()       {}
func (ApexKilledEvent) isEvent()    {}
func (ApexIntensityEvent) isEvent() {}

// EventName returns a short stable name for an event type.
func EventName(e Event) string {
	switch e.(type) {
	case ScoreEvent:
		return "score"
	case EatEvent:
		return "eat"
	case PlayerHitEvent:
		return "player-hit"
	case ExtraLifeEvent:
		return "extra-life"
	case GrowthEvent:
		return "growth"
	case GameOverEvent:
		return "game-over"
	case MilestoneEvent:
		return "milestone"
	case ApexHitEvent:
		return "apex-hit"
	case ApexKilledEvent:
		return "apex-killed"
	case ApexIntensityEvent:
		return "apex-intensity"
	default:
		return "unknown"
	}
}
