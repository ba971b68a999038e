package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

// Game is a registry game that can follow terminal resizes and report its
// session for storage.
type Game interface {
	registry.Game
	Resize(width, height int)
	Summary() golf.Summary
}

// AsGame checks that a registry game can run in the terminal model.
func AsGame(g registry.Game) (Game, error) {
	tg, ok := g.(Game)
	if !ok {
		return nil, fmt.Errorf("tui: game %q does not support sessions", g.ID())
	}
	return tg, nil
}

// Model is the Bubble Tea model for a golf session.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "mode", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize follows the terminal size. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveSession()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.started = time.Now()
		m.keys.Reset()
		m.inputFrame.Clear()
		m.logger.Debug("session restarted", "mode", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSession stores the current session once at least one shot was taken.
func (m *Model) saveSession() {
	if m.store == nil {
		return
	}
	s := m.game.Summary()
	if s.Stats.Shots == 0 {
		return
	}

	id, err := m.store.SaveSession(sessionRecord(s, time.Since(m.started)))
	if err != nil {
		m.logger.Warn("could not save session", "mode", s.Mode, "error", err)
		return
	}
	m.logger.Info("session saved", "id", id, "mode", s.Mode, "score", s.Score, "shots", s.Stats.Shots)
}

// sessionRecord converts a game summary into a storage row.
func sessionRecord(s golf.Summary, elapsed time.Duration) storage.SessionRecord {
	return storage.SessionRecord{
		Mode:      s.Mode,
		Seed:      s.Seed,
		Score:     s.Score,
		Shots:     s.Stats.Shots,
		Bounces:   s.Stats.Bounces,
		Distance:  s.Stats.Distance,
		MaxSpeed:  s.Stats.MaxSpeed,
		Obstacles: s.Obstacles,
		Duration:  int(elapsed.Seconds()),
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".golf", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
