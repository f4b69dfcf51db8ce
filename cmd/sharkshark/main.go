// sharkshark is a terminal food-chain arcade game: eat smaller fish, dodge
// bigger ones, and take down the apex shark by biting its tail.
//
// Usage:
//
//	sharkshark list               - List difficulties and profiles
//	sharkshark play               - Pick a difficulty and play
//	sharkshark scores [variant]   - Show high scores and run stats
//	sharkshark sim                - Run a headless simulation
//	sharkshark replay <file>      - Verify a recorded replay
//	sharkshark serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.sharkshark/scores.db)
//	--config <path>   - Load difficulty profiles from a YAML or TOML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/games/sharkshark"
	"github.com/gulati8/SharkShark/internal/registry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sharkshark",
	Short: "SharkShark - an underwater food chain in your terminal",
	Long: `SharkShark is a terminal arcade game. You are a small fish: eat
anything smaller than you, avoid anything bigger, grow through five sizes
and hunt the apex shark by biting its tail.

Available commands:
  list     - Show difficulties and their profiles
  play     - Play (difficulty menu unless --difficulty is given)
  scores   - View high scores and run statistics
  sim      - Run a headless simulation
  replay   - Verify a recorded replay
  serve    - Start SSH server for remote play

Examples:
  sharkshark play
  sharkshark play --difficulty hard
  sharkshark sim --ticks 3600 --seed 42 --verbose
  sharkshark serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		sharkshark.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sharkshark/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a difficulty profile file (.yaml or .toml)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}

// variantArg resolves a variant ID or a bare preset name.
func variantArg(arg string) (string, error) {
	switch {
	case arg == "":
		return sharkshark.IDNormal, nil
	case registry.Exists(arg):
		return arg, nil
	case arg == config.PresetEasy, arg == config.PresetNormal, arg == config.PresetHard:
		return sharkshark.IDForPreset(arg), nil
	}
	return "", fmt.Errorf("unknown variant %q (run 'sharkshark list')", arg)
}
