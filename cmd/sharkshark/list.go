package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties and profiles",
	Long: `Shows the registered game variants and the difficulty profiles that
drive them. Profiles come from --config, ~/.sharkshark/profiles.yaml,
./configs/profiles.yaml or the built-in defaults, in that order.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Variants:")
	fmt.Println()
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	profiles, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError loading profiles: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Profiles:")
	fmt.Println()
	fmt.Printf("  %-8s  %5s  %5s  %6s  %7s  %9s  %5s\n", "Name", "Lives", "Speed", "Apex", "Score", "Extra", "Prey")
	fmt.Printf("  %-8s  %5s  %5s  %6s  %7s  %9s  %5s\n", "----", "-----", "-----", "----", "-----", "-----", "----")
	for _, name := range profiles.Names() {
		p := profiles[name]
		fmt.Printf("  %-8s  %5d  %5.0f  %4dhp  x%6.2f  %9d  %5.1f/s\n",
			name, p.Player.StartingLives, p.Player.Speed, p.Apex.MaxHealth,
			p.Scoring.Multiplier, p.Scoring.ExtraLifeStep, p.Spawn.Prey.Rate)
	}

	fmt.Println()
	fmt.Println("Run 'sharkshark play --difficulty <name>' to play.")
}
