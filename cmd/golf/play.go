package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf"
	"github.com/vovakirdan/tui-golf/internal/platform/tui"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a golf session. The mode defaults to the endless corridor.

Controls:
  Mouse drag - Pull back from the ball, release to shoot
  P/Esc      - Pause
  C          - Recenter the camera on the ball
  R          - Restart with a new level
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wide corridor, gentle turns
  normal - Default corridor, progresses with distance
  hard   - Narrow corridor, sharp turns
  fixed  - No progression, stays at config's initial level

Examples:
  golf play
  golf play golf_range
  golf play --difficulty hard --seed 42
  golf play --config ./my-golf.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.golf/golf.log", "Log file (the terminal is taken by the game)")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := modeArg(args)

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'golf list' to see available modes.")
		os.Exit(1)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "golf")
	if _, err := golf.LoadConfig(); err != nil {
		logger.Warn("config not loaded, using defaults", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: config not loaded, using defaults: %v\n", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	created, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, err := tui.AsGame(created)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	logger.Info("starting session", "mode", mode, "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS)
	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
