package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
	"github.com/gulati8/SharkShark/internal/replay"
)

var flagReplayVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded replay",
	Long: `Re-run a replay file through the simulation and check that it
reaches the recorded score, size, tick count and mode. Replays carry
their own difficulty profile, so local config files do not matter.

Examples:
  sharkshark replay run.yaml
  sharkshark replay ~/replays/sharkshark_hard_20260101_120000.yaml --verbose`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayVerbose, "verbose", false, "Log every replayed event")
}

func runReplay(_ *cobra.Command, args []string) {
	logger := newLogger("replay", flagReplayVerbose)

	rec, err := replay.Load(args[0])
	if err != nil {
		if errors.Is(err, replay.ErrVersion) {
			logger.Error("replay was written by an incompatible version", "file", args[0])
		} else {
			logger.Error("cannot load replay", "error", err)
		}
		os.Exit(1)
	}
	logger.Info("loaded replay",
		"game", rec.Game,
		"difficulty", rec.Profile.Name,
		"seed", rec.Seed,
		"ticks", rec.Ticks(),
	)

	if flagReplayVerbose {
		_, events := replay.Play(rec)
		for i, ev := range events {
			logger.Debug(sim.EventName(ev), append([]any{"n", i}, eventFields(ev)...)...)
		}
	}

	w, err := replay.Verify(rec)
	if err != nil {
		logger.Error("verification failed", "error", err)
		os.Exit(1)
	}

	logger.Info("replay verified", "score", w.Run.Score, "tier", w.Player.Tier, "mode", w.Mode)
	fmt.Printf("OK %s: score %d, size %d, %d ticks\n", rec.Game, w.Run.Score, w.Player.Tier, w.Run.Ticks)
}
