package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rom100main/pac-minator/internal/storage"
)

var (
	flagLimit int
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display each player's best round. Use --all to list every round.

Examples:
  pacman scores
  pacman scores --all --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every round instead of each player's best")
}

func runScores(cmd *cobra.Command, args []string) error {
	path := flagDBPath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	var records []storage.Record
	if flagAll {
		records, err = store.TopScores(flagLimit)
	} else {
		records, err = store.Leaderboard(flagLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)
	if len(records) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'pacman play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-4s  %s\n", "Rank", "Name", "Score", "Level", "Won", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-4s  %s\n", "----", "----", "-----", "-----", "---", "----")
	for i, r := range records {
		won := ""
		if r.Won {
			won = "yes"
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %-5d  %-4s  %s\n", i+1, r.Name, r.Score, r.Level, won, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
