// Package config provides difficulty profile loading for the game.
// Profiles are read from YAML or TOML files with an embedded default.
package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownProfile is returned when a preset name is not defined.
var ErrUnknownProfile = errors.New("config: unknown difficulty profile")

// Profile is a read-only difficulty preset consumed by the simulation.
type Profile struct {
	Name    string         `yaml:"name" toml:"name"`
	Player  PlayerProfile  `yaml:"player" toml:"player"`
	Enemies EnemyProfile   `yaml:"enemies" toml:"enemies"`
	Spawn   SpawnProfile   `yaml:"spawn" toml:"spawn"`
	Apex    ApexProfile    `yaml:"apex" toml:"apex"`
	Scoring ScoringProfile `yaml:"scoring" toml:"scoring"`
}

// PlayerProfile defines movement and survival knobs for the player.
type PlayerProfile struct {
	Speed         float64 `yaml:"speed" toml:"speed"`                   // Arena units per second at full input
	TurnRate      float64 `yaml:"turn_rate" toml:"turn_rate"`           // Velocity smoothing factor per second
	HitboxScale   float64 `yaml:"hitbox_scale" toml:"hitbox_scale"`     // Multiplier on the player's ellipse
	StartingLives int     `yaml:"starting_lives" toml:"starting_lives"` // Lives at run start
	RespawnGrace  float64 `yaml:"respawn_grace" toml:"respawn_grace"`   // Invulnerable seconds after a hit
}

// EnemyProfile defines hitbox and aggression knobs for hostile entities.
type EnemyProfile struct {
	HitboxScale        float64 `yaml:"hitbox_scale" toml:"hitbox_scale"`
	PredatorAggression float64 `yaml:"predator_aggression" toml:"predator_aggression"` // 0..1
	ApexAggression     float64 `yaml:"apex_aggression" toml:"apex_aggression"`         // 0..1
}

// SpawnRule is the cadence and population cap for one entity kind.
type SpawnRule struct {
	Rate float64 `yaml:"rate" toml:"rate"` // Spawns per second; 0 disables the kind
	Cap  int     `yaml:"cap" toml:"cap"`   // Maximum live instances
}

// SpawnProfile holds a SpawnRule per entity kind.
type SpawnProfile struct {
	Prey     SpawnRule `yaml:"prey" toml:"prey"`
	Predator SpawnRule `yaml:"predator" toml:"predator"`
	Hazard   SpawnRule `yaml:"hazard" toml:"hazard"`
	Apex     SpawnRule `yaml:"apex" toml:"apex"`
}

// ApexProfile defines boss combat knobs.
type ApexProfile struct {
	MaxHealth    int     `yaml:"max_health" toml:"max_health"`
	TailLeniency float64 `yaml:"tail_leniency" toml:"tail_leniency"` // Widens the tail-hit band
}

// ScoringProfile defines score scaling and extra life cadence.
type ScoringProfile struct {
	Multiplier    float64 `yaml:"multiplier" toml:"multiplier"`
	ExtraLifeStep int     `yaml:"extra_life_step" toml:"extra_life_step"`
}

// Validate checks that a profile can drive a run.
func (p Profile) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("config: profile has no name")
	case p.Player.StartingLives <= 0:
		return fmt.Errorf("config: profile %s: starting_lives must be positive", p.Name)
	case p.Player.Speed <= 0:
		return fmt.Errorf("config: profile %s: player speed must be positive", p.Name)
	case p.Apex.MaxHealth <= 0:
		return fmt.Errorf("config: profile %s: apex max_health must be positive", p.Name)
	case p.Scoring.Multiplier < 0:
		return fmt.Errorf("config: profile %s: score multiplier must not be negative", p.Name)
	case p.Scoring.ExtraLifeStep <= 0:
		return fmt.Errorf("config: profile %s: extra_life_step must be positive", p.Name)
	}
	for kind, rule := range map[string]SpawnRule{
		"prey":     p.Spawn.Prey,
		"predator": p.Spawn.Predator,
		"hazard":   p.Spawn.Hazard,
		"apex":     p.Spawn.Apex,
	} {
		if rule.Rate < 0 {
			return fmt.Errorf("config: profile %s: %s rate must not be negative", p.Name, kind)
		}
		if rule.Cap < 0 {
			return fmt.Errorf("config: profile %s: %s cap must not be negative", p.Name, kind)
		}
	}
	return nil
}

// Preset names.
const (
	PresetEasy   = "easy"
	PresetNormal = "normal"
	PresetHard   = "hard"
)

// Profiles is the named set of difficulty presets.
type Profiles map[string]Profile

// Get returns the profile for a preset name. An empty name selects normal.
func (ps Profiles) Get(name string) (Profile, error) {
	if name == "" {
		name = PresetNormal
	}
	p, ok := ps[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Names returns the preset names in a stable order.
func (ps Profiles) Names() []string {
	order := map[string]int{PresetEasy: 0, PresetNormal: 1, PresetHard: 2}
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iok := order[names[i]]
		oj, jok := order[names[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return names[i] < names[j]
	})
	return names
}

// Validate checks every profile in the set.
func (ps Profiles) Validate() error {
	for _, name := range ps.Names() {
		if err := ps[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}
