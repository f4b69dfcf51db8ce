// Package sharkshark adapts the food-chain simulation to the arcade platform.
// One variant is registered per difficulty preset.
package sharkshark

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
	"github.com/gulati8/SharkShark/internal/registry"
	"github.com/gulati8/SharkShark/internal/replay"
)

// Variant IDs.
const (
	IDNormal = "sharkshark"
	IDEasy   = "sharkshark_easy"
	IDHard   = "sharkshark_hard"
)

var configPath string

// SetConfigPath sets the profile file used by subsequent Resets.
// Empty selects the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// ConfigPath returns the profile file set by SetConfigPath.
func ConfigPath() string {
	return configPath
}

// IDForPreset returns the variant ID for a difficulty preset. Profiles
// outside the built-in three get their own "sharkshark_<name>" ID so their
// scores stay separate.
func IDForPreset(preset string) string {
	switch preset {
	case "", config.PresetNormal:
		return IDNormal
	default:
		return IDNormal + "_" + preset
	}
}

// PresetForID returns the difficulty preset of a variant ID.
func PresetForID(id string) string {
	if name, ok := strings.CutPrefix(id, IDNormal+"_"); ok && name != "" {
		return name
	}
	return config.PresetNormal
}

// Game implements registry.Game on top of sim.World.
type Game struct {
	id     string
	title  string
	preset string

	cfg     core.RuntimeConfig
	rng     *rand.Rand
	world   sim.World
	events  []sim.Event
	hud     HUD
	loadErr error

	recording bool
	recorder  *replay.Recorder
}

// New creates a game for a difficulty preset.
func New(preset string) *Game {
	if preset == "" {
		preset = config.PresetNormal
	}
	id := IDForPreset(preset)
	title := "SharkShark"
	switch preset {
	case config.PresetNormal:
	case config.PresetEasy:
		title = "SharkShark (Easy)"
	case config.PresetHard:
		title = "SharkShark (Hard)"
	default:
		title = fmt.Sprintf("SharkShark (%s)", preset)
	}
	return &Game{id: id, title: title, preset: preset}
}

func init() {
	registry.Register(IDNormal, func() registry.Game {
		return New(config.PresetNormal)
	})
	registry.Register(IDEasy, func() registry.Game {
		return New(config.PresetEasy)
	})
	registry.Register(IDHard, func() registry.Game {
		return New(config.PresetHard)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Preset returns the difficulty preset name.
func (g *Game) Preset() string {
	return g.preset
}

// EnableRecording makes every run started by Reset capture a replay.
func (g *Game) EnableRecording() {
	g.recording = true
}

// Reset loads the profile and starts a new run.
// A broken profile file falls back to the built-in preset (normal for
// custom names); the error is kept for LoadErr.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	profile, err := config.LoadProfile(configPath, g.preset)
	g.loadErr = err
	if err != nil {
		defaults := config.DefaultProfiles()
		if profile, err = defaults.Get(g.preset); err != nil {
			profile = defaults[config.PresetNormal]
		}
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- deterministic game RNG
	g.world = sim.StartRun(sim.NewWorld(profile))
	g.events = nil
	g.hud.Reset(g.world)

	g.recorder = nil
	if g.recording {
		g.recorder = replay.NewRecorder(g.id, cfg.Seed, profile)
	}
}

// SetPreset switches the difficulty between runs and leaves the game at the
// title screen; the next restart plays the new preset under its own ID.
// It reports false during a run or when the preset cannot be loaded.
func (g *Game) SetPreset(preset string) bool {
	if g.world.Alive() {
		return false
	}
	profile, err := config.LoadProfile(configPath, preset)
	if err != nil {
		return false
	}

	next := New(preset)
	g.id, g.title, g.preset = next.id, next.title, next.preset
	g.world = sim.SetDifficulty(g.world, profile)
	g.events = nil
	g.hud.Reset(g.world)
	g.recorder = nil
	return true
}

// LoadErr reports why the configured profile could not be used, if so.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) && !g.world.Alive() {
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	input := sim.Input{
		Move:        in.Vector(),
		TogglePause: in.Has(core.ActionPause),
	}
	if g.recorder != nil && g.world.Alive() {
		g.recorder.Record(input, dt)
	}

	prev := g.world
	g.world, g.events = sim.Step(g.world, input, dt, g.rng)
	g.hud.Consume(g.events, g.world)

	result := core.StepResult{State: g.State()}
	if prev.Mode != sim.ModeGameOver && g.world.Mode == sim.ModeGameOver {
		summary := g.world.Summary()
		result.Finished = &summary
	}
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Run.Score,
		GameOver: g.world.Mode == sim.ModeGameOver,
		Paused:   g.world.Mode == sim.ModePaused,
		Idle:     g.world.Mode == sim.ModeTitle,
	}
}

// World returns the current simulation state.
func (g *Game) World() sim.World {
	return g.world
}

// Events returns the events of the most recent step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Replay returns the recording of the current run, if recording is enabled.
func (g *Game) Replay() (replay.Replay, bool) {
	if g.recorder == nil {
		return replay.Replay{}, false
	}
	return g.recorder.Finish(g.world), true
}
