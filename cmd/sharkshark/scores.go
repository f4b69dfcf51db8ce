package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gulati8/SharkShark/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and run statistics",
	Long: `Display the top 10 scores and lifetime statistics for a variant.
The variant is an ID from 'sharkshark list' or a preset name; it defaults
to normal.

Examples:
  sharkshark scores
  sharkshark scores hard
  sharkshark scores sharkshark_easy --recent
  sharkshark scores hard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the 10 most recent runs instead of the top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := variantArg(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	if flagRecent {
		printRecent(store, gameID)
	} else {
		printTop(store, gameID)
	}
	printStats(store, gameID)
}

func printTop(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n\n", gameID)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sharkshark play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printRecent(store *storage.Store, gameID string) {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Recent Runs - %s\n\n", gameID)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-4s  %-5s  %-4s  %s\n", "Date", "Score", "Size", "Eaten", "Apex", "Time")
	fmt.Printf("  %-16s  %-8s  %-4s  %-5s  %-4s  %s\n", "----", "-----", "----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8d  %-4d  %-5d  %-4d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Tier, r.PreyEaten, r.ApexKills,
			secondsDuration(r.Seconds))
	}
}

func printStats(store *storage.Store, gameID string) {
	stats, err := store.GetGameStats(gameID)
	if err != nil || stats.GamesCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if stats.BestTier > 0 {
		fmt.Printf("Max size: %d  Fish eaten: %d  Apex kills: %d  Longest run: %s\n",
			stats.BestTier, stats.TotalPreyEaten, stats.TotalApexKills, secondsDuration(stats.LongestRun))
	}
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}

func secondsDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second)).Round(time.Second)
}
