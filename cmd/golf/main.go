// golf is a top-down slingshot mini-golf playground for the terminal.
//
// Usage:
//
//	golf list                - List available modes
//	golf play [mode]         - Play a mode (default: golf)
//	golf serve               - Start SSH server for remote play
//	golf scores [mode]       - Show best sessions for a mode
//	golf simulate [mode]     - Run shots headless and print the stats
//	golf config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--db <path>           - Set database path (default: ~/.golf/sessions.db)
//	--config <path>       - Use a custom golf.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/games/golf"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "golf",
	Short: "TUI Golf - slingshot mini-golf in your terminal",
	Long: `TUI Golf is a top-down mini-golf playground. Drag the ball with the
mouse, release to shoot, and bounce it through an endless corridor of
walls or around the practice range.

Available commands:
  list      - Show all available modes
  play      - Play a mode
  serve     - Start SSH server for remote play
  scores    - View best sessions
  simulate  - Run shots without a terminal UI
  config    - Print the effective configuration

Examples:
  golf play
  golf play golf_range --difficulty easy
  golf serve --ssh :2222
  golf scores golf --interactive
  golf simulate --seed 42 --shots 5`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		golf.SetConfigPath(flagConfig)
		golf.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.golf/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom golf.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level level. Unknown levels fall
// back to info with a warning.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// modeArg returns the mode named in args or the endless default.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return golf.IDEndless
}
