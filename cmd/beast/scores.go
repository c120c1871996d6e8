package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beast-arcade/internal/registry"
	"github.com/vovakirdan/beast-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagReplays     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores of a mode, or a summary of every mode when
no mode is given.

Examples:
  beast scores
  beast scores beast --limit 20
  beast scores beast_ranked --replays`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagReplays, "replays", false, "List recent replays instead of scores")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'beast list' to see available modes.")
		os.Exit(1)
	}

	if flagReplays {
		printReplays(store, gameID)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'beast play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-20s  %-7s  %-5s  %s\n", "Rank", "Name", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-20s  %-7s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-20s  %-7d  %-5d  %s\n",
			i+1, entry.Name, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-16s  %-5s  %-6s  %-7s  %-5s  %s\n", "Mode", "Games", "Best", "Average", "Level", "Last played")
	fmt.Printf("  %-16s  %-5s  %-6s  %-7s  %-5s  %s\n", "----", "-----", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %-5d  %-6d  %-7.1f  %-5d  %s\n",
			registry.Title(id), s.GamesCount, s.HighScore, s.AvgScore, s.BestLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printReplays(store *storage.Store, gameID string) {
	replays, err := store.RecentReplays(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Replays - %s\n", registry.Title(gameID))
	fmt.Println()
	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		return
	}

	fmt.Printf("  %-36s  %-20s  %-7s  %-8s  %s\n", "ID", "Name", "Score", "Verified", "Date")
	for _, r := range replays {
		verified := "no"
		if r.Verified {
			verified = "yes"
		}
		fmt.Printf("  %-36s  %-20s  %-7d  %-8s  %s\n",
			r.ID, r.Name, r.Score, verified, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
