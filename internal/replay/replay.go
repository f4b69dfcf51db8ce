// Package replay records simulation input and re-runs it deterministically.
// Replays are stored as YAML and carry the full difficulty profile, so they
// verify independently of local config files.
package replay

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

// Version is the replay file format version.
const Version = 1

var (
	// ErrVersion is returned when a file has an unsupported format version.
	ErrVersion = errors.New("replay: unsupported version")

	// ErrDiverged is returned by Verify when playback disagrees with the
	// recorded result.
	ErrDiverged = errors.New("replay: playback diverged")
)

// Replay is a recorded run.
type Replay struct {
	Version int            `yaml:"version"`
	Game    string         `yaml:"game"`
	Seed    int64          `yaml:"seed"`
	Profile config.Profile `yaml:"profile"`
	Frames  []Frame        `yaml:"frames"`
	Result  Result         `yaml:"result"`
}

// Frame is a run of identical consecutive ticks.
type Frame struct {
	Count int     `yaml:"n"`
	DT    float64 `yaml:"dt"`
	MoveX float64 `yaml:"x,omitempty"`
	MoveY float64 `yaml:"y,omitempty"`
	Pause bool    `yaml:"pause,omitempty"`
}

// Result is the run outcome captured at the end of recording.
type Result struct {
	Score int    `yaml:"score"`
	Tier  int    `yaml:"tier"`
	Ticks int    `yaml:"ticks"`
	Mode  string `yaml:"mode"`
}

// Input returns the simulation input encoded by the frame.
func (f Frame) Input() sim.Input {
	return sim.Input{Move: core.V(f.MoveX, f.MoveY), TogglePause: f.Pause}
}

// Ticks returns the total number of recorded ticks.
func (r Replay) Ticks() int {
	n := 0
	for _, f := range r.Frames {
		n += f.Count
	}
	return n
}

// Save writes the replay to path as YAML.
func Save(path string, r Replay) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("replay: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // replay files are not secret
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads a replay file.
func Load(path string) (Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Replay{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes replay YAML and checks the version.
func Parse(data []byte) (Replay, error) {
	var r Replay
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Replay{}, fmt.Errorf("replay: unmarshal: %w", err)
	}
	if r.Version != Version {
		return Replay{}, fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}
	if err := r.Profile.Validate(); err != nil {
		return Replay{}, fmt.Errorf("replay: %w", err)
	}
	return r, nil
}

// Play re-runs the recording from a fresh world and returns the final world
// and every event produced, in order.
func Play(r Replay) (sim.World, []sim.Event) {
	w := sim.StartRun(sim.NewWorld(r.Profile))
	rng := rand.New(rand.NewSource(r.Seed)) //#nosec G404 -- deterministic game RNG
	var all []sim.Event

	for _, f := range r.Frames {
		in := f.Input()
		for range f.Count {
			var events []sim.Event
			w, events = sim.Step(w, in, f.DT, rng)
			all = append(all, events...)
		}
	}
	return w, all
}

// Verify plays the replay and compares the outcome with the recorded result.
func Verify(r Replay) (sim.World, error) {
	w, _ := Play(r)
	got := resultOf(w)
	if got != r.Result {
		return w, fmt.Errorf("%w: recorded %+v, replayed %+v", ErrDiverged, r.Result, got)
	}
	return w, nil
}

func resultOf(w sim.World) Result {
	return Result{
		Score: w.Run.Score,
		Tier:  w.Player.Tier,
		Ticks: w.Run.Ticks,
		Mode:  w.Mode.String(),
	}
}
