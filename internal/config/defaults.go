package config

import (
	_ "embed"
)

//go:embed defaults/profiles.yaml
var defaultProfilesYAML []byte

// DefaultProfiles returns the built-in difficulty presets.
// Keep in sync with defaults/profiles.yaml.
func DefaultProfiles() Profiles {
	return Profiles{
		PresetEasy: {
			Name: PresetEasy,
			Player: PlayerProfile{
				Speed:         260,
				TurnRate:      9,
				HitboxScale:   0.85,
				StartingLives: 5,
				RespawnGrace:  2.5,
			},
			Enemies: EnemyProfile{
				HitboxScale:        0.85,
				PredatorAggression: 0.35,
				ApexAggression:     0.45,
			},
			Spawn: SpawnProfile{
				Prey:     SpawnRule{Rate: 1.4, Cap: 14},
				Predator: SpawnRule{Rate: 0.35, Cap: 5},
				Hazard:   SpawnRule{Rate: 0.12, Cap: 3},
				Apex:     SpawnRule{Rate: 0.02, Cap: 1},
			},
			Apex: ApexProfile{
				MaxHealth:    6,
				TailLeniency: 0.22,
			},
			Scoring: ScoringProfile{
				Multiplier:    0.8,
				ExtraLifeStep: 6000,
			},
		},
		PresetNormal: {
			Name: PresetNormal,
			Player: PlayerProfile{
				Speed:         240,
				TurnRate:      8,
				HitboxScale:   0.9,
				StartingLives: 3,
				RespawnGrace:  2.0,
			},
			Enemies: EnemyProfile{
				HitboxScale:        0.92,
				PredatorAggression: 0.5,
				ApexAggression:     0.6,
			},
			Spawn: SpawnProfile{
				Prey:     SpawnRule{Rate: 1.2, Cap: 12},
				Predator: SpawnRule{Rate: 0.5, Cap: 6},
				Hazard:   SpawnRule{Rate: 0.18, Cap: 4},
				Apex:     SpawnRule{Rate: 0.03, Cap: 1},
			},
			Apex: ApexProfile{
				MaxHealth:    8,
				TailLeniency: 0.15,
			},
			Scoring: ScoringProfile{
				Multiplier:    1.0,
				ExtraLifeStep: 8000,
			},
		},
		PresetHard: {
			Name: PresetHard,
			Player: PlayerProfile{
				Speed:         225,
				TurnRate:      7,
				HitboxScale:   0.95,
				StartingLives: 2,
				RespawnGrace:  1.5,
			},
			Enemies: EnemyProfile{
				HitboxScale:        1.0,
				PredatorAggression: 0.7,
				ApexAggression:     0.8,
			},
			Spawn: SpawnProfile{
				Prey:     SpawnRule{Rate: 1.0, Cap: 10},
				Predator: SpawnRule{Rate: 0.7, Cap: 8},
				Hazard:   SpawnRule{Rate: 0.25, Cap: 5},
				Apex:     SpawnRule{Rate: 0.045, Cap: 2},
			},
			Apex: ApexProfile{
				MaxHealth:    10,
				TailLeniency: 0.08,
			},
			Scoring: ScoringProfile{
				Multiplier:    1.25,
				ExtraLifeStep: 10000,
			},
		},
	}
}

// DefaultYAML returns the embedded default profile file.
func DefaultYAML() []byte {
	return defaultProfilesYAML
}
