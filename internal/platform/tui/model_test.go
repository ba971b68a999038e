package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(golf.New(), store, cfg, log.New(io.Discard))
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

// shoot drags from the ball (center of the play area) to the left and
// runs one tick.
func shoot(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionRelease})
	return update(t, m, TickMsg(time.Now()))
}

func TestModelMouseShot(t *testing.T) {
	m, _ := newTestModel(t)
	m = shoot(t, m)

	if m.gameState.Shots != 1 {
		t.Errorf("Shots = %d, expected 1", m.gameState.Shots)
	}
	if len(m.inputFrame.Pointers) != 0 {
		t.Error("input frame not cleared after tick")
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	m, store := newTestModel(t)
	m = shoot(t, m)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quit")
	}

	sessions, err := store.TopSessions(golf.IDEndless, 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("stored %d sessions, expected 1", len(sessions))
	}
	if sessions[0].Shots != 1 || sessions[0].Seed != 7 {
		t.Errorf("stored session = %+v", sessions[0])
	}
}

func TestModelQuitWithoutShotsSavesNothing(t *testing.T) {
	m, store := newTestModel(t)
	update(t, m, runeKey("q"))

	if recent, _ := store.RecentSessions(10); len(recent) != 0 {
		t.Errorf("stored %d sessions, expected none", len(recent))
	}
}

func TestModelRestartSavesAndResets(t *testing.T) {
	m, store := newTestModel(t)
	m = shoot(t, m)

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg(time.Now()))

	if m.gameState.Shots != 0 {
		t.Errorf("Shots = %d after restart, expected 0", m.gameState.Shots)
	}
	if recent, _ := store.RecentSessions(10); len(recent) != 1 {
		t.Errorf("stored %d sessions, expected 1", len(recent))
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, _ := newTestModel(t)
	m = shoot(t, m)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.game.State().Shots != 1 {
		t.Error("resize reset the session")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "Shots: 1") {
		t.Error("HUD missing from view")
	}
}

func TestSessionRecord(t *testing.T) {
	s := golf.Summary{
		Mode:      golf.IDRange,
		Seed:      3,
		Score:     4,
		Obstacles: 9,
		Stats:     golf.Stats{Shots: 2, Bounces: 5, Distance: 410, MaxSpeed: 250},
	}
	rec := sessionRecord(s, 90*time.Second)

	expected := storage.SessionRecord{
		Mode: golf.IDRange, Seed: 3, Score: 4, Shots: 2, Bounces: 5,
		Distance: 410, MaxSpeed: 250, Obstacles: 9, Duration: 90,
	}
	if rec != expected {
		t.Errorf("sessionRecord() = %+v, expected %+v", rec, expected)
	}
}

func TestAsGame(t *testing.T) {
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", info.ID, err)
		}
		if _, err := AsGame(g); err != nil {
			t.Errorf("AsGame(%s) error = %v", info.ID, err)
		}
	}
}
