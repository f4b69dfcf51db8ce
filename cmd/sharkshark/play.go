package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark"
	"github.com/gulati8/SharkShark/internal/platform/tui"
	"github.com/gulati8/SharkShark/internal/registry"
	"github.com/gulati8/SharkShark/internal/storage"
)

var (
	flagDifficulty string
	flagRecordDir  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play SharkShark",
	Long: `Start playing. Without --difficulty a menu lets you pick the
difficulty and browse the scoreboard; after a run you return to it.

Controls:
  Arrows/WASD  - Swim
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back to menu (paused or game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Examples:
  sharkshark play
  sharkshark play --difficulty easy
  sharkshark play --difficulty zen --config ./profiles.toml
  sharkshark play --record ./replays`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty profile: easy, normal, hard or a custom name")
	playCmd.Flags().StringVar(&flagRecordDir, "record", "", "Directory to save a replay of every finished run")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if flagDifficulty != "" {
		if err := playDirect(store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if store != nil {
				store.Close()
			}
			os.Exit(1)
		}
		return
	}

	menuLoop(store, cfg)
}

// playDirect plays one difficulty without the menu.
func playDirect(store *storage.Store, cfg core.RuntimeConfig) error {
	if _, err := config.LoadProfile(flagConfig, flagDifficulty); err != nil {
		return err
	}

	game := sharkshark.New(flagDifficulty)
	if err := tui.Run(game, store, cfg, flagRecordDir); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// menuLoop alternates between the difficulty menu, the scoreboard and games.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig) {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, runCfg, flagRecordDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
