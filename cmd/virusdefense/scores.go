package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/virus-defense/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagYes    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [top|recent|stats|clear]",
	Short: "Show recorded sessions",
	Long: `Display finished sessions from the session database.

Views:
  top     - Best sessions by score (default)
  recent  - Latest sessions first
  stats   - Totals over every session
  clear   - Delete all recorded sessions (needs --yes)

Examples:
  virusdefense scores
  virusdefense scores recent --limit 20
  virusdefense scores top --player alice
  virusdefense scores clear --yes`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"top", "recent", "stats", "clear"},
	Run:       runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show sessions of this player")
	scoresCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm clearing the database")
}

func runScores(_ *cobra.Command, args []string) {
	view := "top"
	if len(args) == 1 {
		view = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch view {
	case "top", "recent":
		err = printSessions(store, view)
	case "stats":
		err = printStats(store)
	case "clear":
		if !flagYes {
			fmt.Fprintln(os.Stderr, "Refusing to clear without --yes")
			os.Exit(1)
		}
		if err = store.Clear(); err == nil {
			fmt.Println("All sessions deleted.")
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown view %q\n", view)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}
}

func printSessions(store *storage.Store, view string) error {
	var (
		sessions []storage.SessionRecord
		err      error
	)
	switch {
	case flagPlayer != "":
		sessions, err = store.PlayerSessions(flagPlayer, flagLimit)
	case view == "recent":
		sessions, err = store.RecentSessions(flagLimit)
	default:
		sessions, err = store.TopSessions(flagLimit)
	}
	if err != nil {
		return err
	}

	title := "High Scores"
	if view == "recent" {
		title = "Recent Games"
	}
	fmt.Println(title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'virusdefense play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Round", "Quiz", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %-6s  %s\n",
			i+1, s.Player, s.Score, s.Round,
			fmt.Sprintf("%d/%d", s.QuizCorrect, s.QuizAsked),
			s.PlayedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printStats(store *storage.Store) error {
	st, err := store.Stats()
	if err != nil {
		return err
	}
	if st.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("Sessions:       %d\n", st.Sessions)
	fmt.Printf("High score:     %d\n", st.HighScore)
	fmt.Printf("Average score:  %.1f\n", st.AvgScore)
	fmt.Printf("Best round:     %d\n", st.BestRound)
	fmt.Printf("Quiz accuracy:  %.0f%% (%d/%d)\n", st.QuizAccuracy()*100, st.QuizCorrect, st.QuizAsked)
	fmt.Printf("Last played:    %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
