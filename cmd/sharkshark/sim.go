package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
	"github.com/gulati8/SharkShark/internal/replay"
)

var (
	flagTicks         int
	flagSimDifficulty string
	flagSimRecord     string
	flagVerbose       bool
	flagIdle          bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI, driven by a simple
autopilot (or no input with --idle), and print an event summary.
The step length is 1/--fps seconds.

Examples:
  sharkshark sim --ticks 3600 --seed 42
  sharkshark sim --difficulty hard --verbose
  sharkshark sim --seed 7 --record run.yaml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", config.PresetNormal, "Difficulty profile")
	simCmd.Flags().StringVar(&flagSimRecord, "record", "", "Save a replay of the run to this file")
	simCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every event")
	simCmd.Flags().BoolVar(&flagIdle, "idle", false, "Send no input instead of the autopilot")
}

// newLogger builds the command-line logger; verbose enables debug events.
func newLogger(prefix string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger("sim", flagVerbose)

	if _, err := config.LoadProfile(flagConfig, flagSimDifficulty); err != nil {
		logger.Error("cannot load profile", "difficulty", flagSimDifficulty, "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := sharkshark.New(flagSimDifficulty)
	if flagSimRecord != "" {
		game.EnableRecording()
	}
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = seed
	game.Reset(cfg)

	dt := cfg.TickSeconds()
	counts := make(map[string]int)
	ticks := simulate(game, flagTicks, dt, !flagIdle, func(tick int, ev sim.Event) {
		counts[sim.EventName(ev)]++
		logger.Debug(sim.EventName(ev), append([]any{"tick", tick}, eventFields(ev)...)...)
	})

	w := game.World()
	logger.Info("run finished", "seed", seed, "ticks", ticks, "mode", w.Mode)
	printSummary(w, counts)

	if flagSimRecord != "" {
		rec, _ := game.Replay()
		if err := replay.Save(flagSimRecord, rec); err != nil {
			logger.Error("cannot save replay", "error", err)
			os.Exit(1)
		}
		logger.Info("replay saved", "path", flagSimRecord, "frames", len(rec.Frames))
	}
}

// simulate steps game for at most maxTicks ticks or until the run ends,
// reporting every event. It returns the number of ticks stepped.
func simulate(game *sharkshark.Game, maxTicks int, dt float64, autopilot bool, onEvent func(int, sim.Event)) int {
	for tick := range maxTicks {
		in := core.NewInputFrame()
		if autopilot {
			in = pilot(game.World())
		}
		res := game.Step(in, dt)
		for _, ev := range game.Events() {
			onEvent(tick, ev)
		}
		if res.Finished != nil {
			return tick + 1
		}
	}
	return maxTicks
}

// eventFields flattens an event into log key/value pairs.
func eventFields(ev sim.Event) []any {
	switch e := ev.(type) {
	case sim.ScoreEvent:
		return []any{"amount", e.Amount, "total", e.Total}
	case sim.EatEvent:
		return []any{"id", e.EntityID, "kind", e.Kind, "size", e.Size, "points", e.Points}
	case sim.PlayerHitEvent:
		return []any{"lives", e.LivesRemaining}
	case sim.ExtraLifeEvent:
		return []any{"lives", e.Lives}
	case sim.GrowthEvent:
		return []any{"tier", e.Tier}
	case sim.GameOverEvent:
		return []any{"score", e.FinalScore}
	case sim.MilestoneEvent:
		return []any{"milestone", e.Tier}
	case sim.ApexHitEvent:
		return []any{"id", e.EntityID, "damage", e.Damage, "health", fmt.Sprintf("%d/%d", e.Health, e.MaxHealth), "points", e.Points}
	case sim.ApexKilledEvent:
		return []any{"id", e.EntityID, "points", e.Points}
	case sim.ApexIntensityEvent:
		return []any{"intensity", fmt.Sprintf("%.2f", e.Intensity)}
	}
	return nil
}

func printSummary(w sim.World, counts map[string]int) {
	sum := w.Summary()
	fmt.Printf("Difficulty:  %s\n", w.Profile.Name)
	fmt.Printf("Mode:        %s\n", w.Mode)
	fmt.Printf("Score:       %d\n", sum.Score)
	fmt.Printf("Size:        %d/%d\n", sum.Tier, sim.MaxTier)
	fmt.Printf("Lives:       %d\n", w.Player.Lives)
	fmt.Printf("Fish eaten:  %d\n", sum.PreyEaten)
	fmt.Printf("Apex kills:  %d\n", sum.ApexKills)
	fmt.Printf("Time:        %.1fs\n", sum.Seconds)

	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Println("Events:")
	for _, name := range names {
		fmt.Printf("  %-15s %d\n", name, counts[name])
	}
}
