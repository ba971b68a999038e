// Package golf implements a top-down mini-golf playground: a slingshot
// ball bouncing off rotated walls, either in an endless generated corridor
// or inside a walled practice range.
package golf

import (
	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/registry"
)

// Mode selects the level layout.
type Mode int

const (
	ModeEndless Mode = iota // Corridor generated ahead of the ball
	ModeRange               // Fixed walled range, no generator
)

// Game IDs used by the registry, the CLI and score storage.
const (
	IDEndless = "golf"
	IDRange   = "golf_range"
)

const (
	hudRows       = 1
	trailInterval = 0.05 // Seconds between trail bursts
	minScreenW    = 30
	minScreenH    = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig returns the effective configuration: the loaded file with the
// CLI difficulty preset applied. Load errors fall back to the defaults.
func LoadConfig() (config.GolfConfig, error) {
	cfg, err := config.LoadGolf(configPath)
	if err != nil {
		cfg = config.DefaultGolfConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGolfPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// BallParamsFromConfig maps the config sections onto ball tunables.
func BallParamsFromConfig(cfg config.GolfConfig) BallParams {
	return BallParams{
		Radius:          cfg.Ball.Radius,
		Friction:        cfg.Ball.Friction,
		LaunchFactor:    cfg.Ball.LaunchFactor,
		StopSpeed:       cfg.Ball.StopSpeed,
		Restitution:     cfg.Collision.Restitution,
		ImpactThreshold: cfg.Collision.ImpactThreshold,
		ReferenceDT:     cfg.Ball.ReferenceDT,
	}
}

// GeneratorParamsFromConfig maps the generator section onto generator tunables.
func GeneratorParamsFromConfig(g config.GeneratorConfig) GeneratorParams {
	return GeneratorParams{
		GenerationDistance:  g.GenerationDistance,
		MinObstacleDistance: g.MinObstacleDistance,
		MaxObstacleCount:    g.MaxObstacleCount,
		MaxTurnAngle:        g.MaxTurnAngle,
		MinSegmentLength:    g.MinSegmentLength,
		MaxSegmentLength:    g.MaxSegmentLength,
		MinPathWidth:        g.MinPathWidth,
		MaxPathWidth:        g.MaxPathWidth,
		WallThickness:       g.WallThickness,
		SegmentsPerBatch:    g.SegmentsPerBatch,
		SeedOffset:          g.SeedOffset,
		Padding:             g.Padding,
		Overlap:             ParseOverlapMode(g.Overlap),
	}
}

// Summary describes a finished or running session for persistence.
type Summary struct {
	Mode      string
	Seed      int64
	Stats     Stats
	Obstacles int
	Score     int
}

// Game adapts the World to the registry: input frames in, screen cells out.
type Game struct {
	mode Mode

	world      *World
	particles  *ParticleSystem
	camera     core.Camera
	difficulty *config.DifficultyManager
	level      float64

	score      int
	paused     bool
	trailTimer float64

	screenTooSmall bool

	runtime core.RuntimeConfig
	cfg     config.GolfConfig
}

// New creates a new golf game in endless corridor mode.
func New() *Game {
	return &Game{mode: ModeEndless}
}

// NewRange creates a new golf game on the walled practice range.
func NewRange() *Game {
	return &Game{mode: ModeRange}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRange {
		return IDRange
	}
	return IDEndless
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRange {
		return "Golf (Practice Range)"
	}
	return "Golf (Endless)"
}

// Reset initializes or restarts the game. A config that fails to load falls
// back to defaults here; front ends report the error from LoadConfig.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := LoadConfig()
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the game with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.GolfConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.score = 0
	g.paused = false
	g.trailTimer = 0
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.level = g.difficulty.Level(0, 0)

	start := core.V2(cfg.Ball.StartX, cfg.Ball.StartY)
	if g.mode == ModeRange {
		start = core.V2(cfg.Range.Width/2, cfg.Range.Height/2)
	}
	ball, err := NewBall(start, BallParamsFromConfig(cfg))
	if err != nil {
		ball, _ = NewBall(start, DefaultBallParams())
	}

	var gen *Generator
	if g.mode == ModeEndless {
		gen = NewGenerator(GeneratorParamsFromConfig(cfg.Generator), runtime.Seed)
		gen.SetDifficulty(g.level)
	}
	g.world = NewWorld(ball, gen)
	if g.mode == ModeRange {
		BuildRange(g.world, cfg.Range, runtime.Seed)
	}

	// Effects get their own stream so they never shift the level layout.
	g.particles = NewParticleSystem(runtime.Seed+1, cfg.Effects.MaxParticles)
	if cfg.Effects.Enabled {
		g.world.OnCollision(g.particles.EmitCollision)
		g.world.OnLaunch(g.particles.EmitLaunch)
	}

	g.world.Prime()

	g.camera = core.NewCamera(runtime.ScreenW, runtime.ScreenH-hudRows, cfg.Camera.UnitsPerCellX, cfg.Camera.UnitsPerCellY)
	g.camera.Center = start
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRecenter) {
		g.camera.Center = g.world.Ball().Position()
	}

	for _, ev := range in.Pointers {
		g.HandlePointer(ev)
	}

	dt := g.runtime.DeltaTime()
	stats := g.world.Stats()
	g.level = g.difficulty.Level(g.score, stats.Ticks)
	if gen := g.world.Generator(); gen != nil {
		gen.SetDifficulty(g.level)
	}

	g.world.Step(dt)
	g.emitTrail(dt)
	g.particles.Update(dt)
	g.camera.Follow(g.world.Ball().Position(), g.cfg.Camera.Smoothing)

	g.score = g.scoreFor(g.world.Stats())
	return core.StepResult{State: g.State()}
}

// HandlePointer routes a pointer event in screen cells to the world.
// Returns whether the ball consumed it.
func (g *Game) HandlePointer(ev core.PointerEvent) bool {
	p := g.camera.ScreenToWorld(ev.X, ev.Y-hudRows)
	switch ev.Kind {
	case core.PointerDown:
		return g.world.PointerDown(p)
	case core.PointerMove:
		return g.world.PointerMove(p)
	case core.PointerUp:
		return g.world.PointerUp(p)
	}
	return false
}

// Resize adapts the viewport to a new terminal size without touching the
// simulation.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
	center := g.camera.Center
	g.camera = core.NewCamera(width, height-hudRows, g.cfg.Camera.UnitsPerCellX, g.cfg.Camera.UnitsPerCellY)
	g.camera.Center = center
}

func (g *Game) emitTrail(dt float64) {
	if !g.cfg.Effects.Enabled || !g.cfg.Effects.Trail {
		return
	}
	v := g.world.Ball().Velocity()
	if v.IsZero() {
		g.trailTimer = 0
		return
	}
	g.trailTimer += dt
	if g.trailTimer < trailInterval {
		return
	}
	g.trailTimer = 0
	g.particles.EmitTrail(g.world.Ball().Position(), v.Normalize(), v.Len())
}

// scoreFor converts the furthest distance reached into whole tiles.
func (g *Game) scoreFor(s Stats) int {
	tile := g.cfg.Camera.TileSize
	if tile <= 0 {
		tile = 50
	}
	return int(s.Furthest / tile)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var shots int
	if g.world != nil {
		shots = g.world.Stats().Shots
	}
	return core.GameState{
		Score:  g.score,
		Paused: g.paused,
		Shots:  shots,
	}
}

// World exposes the simulation for headless drivers.
func (g *Game) World() *World {
	return g.world
}

// Particles exposes the effect system.
func (g *Game) Particles() *ParticleSystem {
	return g.particles
}

// Camera returns the current camera.
func (g *Game) Camera() core.Camera {
	return g.camera
}

// Config returns the configuration the game was reset with.
func (g *Game) Config() config.GolfConfig {
	return g.cfg
}

// Level returns the current difficulty level.
func (g *Game) Level() float64 {
	return g.level
}

// Summary returns the session numbers for persistence.
func (g *Game) Summary() Summary {
	s := Summary{Mode: g.ID(), Seed: g.runtime.Seed, Score: g.score}
	if g.world != nil {
		s.Stats = g.world.Stats()
		s.Obstacles = len(g.world.Obstacles())
	}
	return s
}

// Register both modes with the registry
func init() {
	registry.Register(IDEndless, func() registry.Game {
		return New()
	})
	registry.Register(IDRange, func() registry.Game {
		return NewRange()
	})
}
