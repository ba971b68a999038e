package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var (
	flagShots   int
	flagSteps   int
	flagMinPull float64
	flagMaxPull float64
	flagSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run shots headless and print the stats",
	Long: `Play a session without a terminal UI. Each shot aims in a random
direction with a random pull, then the ball rolls until it stops or
--steps ticks pass. The same --seed always gives the same result.

Examples:
  golf simulate --seed 42
  golf simulate golf_range --shots 20 --log-level debug
  golf simulate --seed 7 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagShots, "shots", 10, "Number of shots to play")
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 3000, "Max ticks per shot")
	simulateCmd.Flags().Float64Var(&flagMinPull, "min-pull", 40, "Shortest pull in world units")
	simulateCmd.Flags().Float64Var(&flagMaxPull, "max-pull", 160, "Longest pull in world units")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store the session in the database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "golf-sim")

	var game *golf.Game
	switch mode := modeArg(args); mode {
	case golf.IDEndless:
		game = golf.New()
	case golf.IDRange:
		game = golf.NewRange()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if flagFPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be positive")
		os.Exit(1)
	}

	cfg, err := golf.LoadConfig()
	if err != nil {
		logger.Warn("config not loaded, using defaults", "error", err)
	}
	game.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed}, cfg)
	logger.Info("simulation started", "mode", game.ID(), "seed", seed, "obstacles", len(game.World().Obstacles()))

	aim := rand.New(rand.NewSource(seed + 2))
	start := time.Now()
	for i := 0; i < flagShots; i++ {
		dir := core.FromAngle(aim.Float64() * 2 * math.Pi)
		pull := flagMinPull + aim.Float64()*(flagMaxPull-flagMinPull)
		if !game.Shoot(dir, pull) {
			logger.Warn("shot not taken", "shot", i+1)
			continue
		}
		ticks := game.Settle(flagSteps)
		ball := game.World().Ball()
		logger.Debug("shot",
			"n", i+1,
			"pull", fmt.Sprintf("%.0f", pull),
			"ticks", ticks,
			"x", fmt.Sprintf("%.1f", ball.Position().X),
			"y", fmt.Sprintf("%.1f", ball.Position().Y),
			"bounces", game.World().Stats().Bounces,
		)
		if !ball.Velocity().IsZero() {
			logger.Warn("ball still rolling after max steps", "shot", i+1, "steps", flagSteps)
		}
	}

	s := game.Summary()
	fmt.Printf("Mode:      %s\n", s.Mode)
	fmt.Printf("Seed:      %d\n", s.Seed)
	fmt.Printf("Shots:     %d\n", s.Stats.Shots)
	fmt.Printf("Bounces:   %d\n", s.Stats.Bounces)
	fmt.Printf("Distance:  %.1f\n", s.Stats.Distance)
	fmt.Printf("Furthest:  %.1f (%d tiles)\n", s.Stats.Furthest, s.Score)
	fmt.Printf("Max speed: %.1f\n", s.Stats.MaxSpeed)
	fmt.Printf("Ticks:     %d\n", s.Stats.Ticks)
	fmt.Printf("Obstacles: %d\n", s.Obstacles)

	if !flagSave || s.Stats.Shots == 0 {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open sessions database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveSession(storage.SessionRecord{
		Mode:      s.Mode,
		Seed:      s.Seed,
		Score:     s.Score,
		Shots:     s.Stats.Shots,
		Bounces:   s.Stats.Bounces,
		Distance:  s.Stats.Distance,
		MaxSpeed:  s.Stats.MaxSpeed,
		Obstacles: s.Obstacles,
		Duration:  int(time.Since(start).Seconds()),
	})
	if err != nil {
		logger.Error("could not save session", "error", err)
		return
	}
	logger.Info("session saved", "id", id)
}
