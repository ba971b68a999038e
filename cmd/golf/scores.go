package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-golf/internal/platform/tui"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best sessions for a mode",
	Long: `Display the best sessions for a mode, ranked by tiles reached and
then by fewest shots.

Examples:
  golf scores
  golf scores golf_range
  golf scores --recent
  golf scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse sessions in a table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent sessions across modes")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := modeArg(args)

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'golf list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, mode, width, height, newLogger(os.Stderr, "golf")); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagRecent {
		recent, err := store.RecentSessions(flagLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Recent Sessions")
		fmt.Println()
		printSessions(recent, true)
		return
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sessions, err := store.TopSessions(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Sessions - %s\n", game.Title())
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'golf play %s' to set the first record!\n", mode)
		return
	}

	printSessions(sessions, false)

	fmt.Println()
	if stats, err := store.GetModeStats(mode); err == nil {
		fmt.Printf("Best: %d tiles over %d sessions, %d shots and %d bounces in total\n",
			stats.BestScore, stats.Sessions, stats.TotalShots, stats.TotalBounces)
	}
	if dist, err := store.BestDistance(mode); err == nil {
		fmt.Printf("Longest roll: %.0f units\n", dist)
	}
}

func printSessions(sessions []storage.SessionRecord, withMode bool) {
	if withMode {
		fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-7s  %-8s  %s\n", "Rank", "Mode", "Tiles", "Shots", "Bounces", "Distance", "Date")
		fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %-7s  %-8s  %s\n", "----", "----", "-----", "-----", "-------", "--------", "----")
	} else {
		fmt.Printf("  %-4s  %-5s  %-5s  %-7s  %-8s  %s\n", "Rank", "Tiles", "Shots", "Bounces", "Distance", "Date")
		fmt.Printf("  %-4s  %-5s  %-5s  %-7s  %-8s  %s\n", "----", "-----", "-----", "-------", "--------", "----")
	}

	for i, s := range sessions {
		date := s.CreatedAt.Format("2006-01-02 15:04")
		if withMode {
			fmt.Printf("  %-4d  %-10s  %-5d  %-5d  %-7d  %-8.0f  %s\n", i+1, s.Mode, s.Score, s.Shots, s.Bounces, s.Distance, date)
		} else {
			fmt.Printf("  %-4d  %-5d  %-5d  %-7d  %-8.0f  %s\n", i+1, s.Score, s.Shots, s.Bounces, s.Distance, date)
		}
	}
}
