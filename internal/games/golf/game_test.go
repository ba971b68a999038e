package golf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/registry"
)

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}, config.DefaultGolfConfig())
	return g
}

// The ball starts in the middle of the play area: cell (40, 12) on an
// 80x24 screen with one HUD row.
func dragFrame(toX int, release bool) core.InputFrame {
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerDown, X: 40, Y: 12})
	if release {
		in.AddPointer(core.PointerEvent{Kind: core.PointerUp, X: toX, Y: 12})
	} else {
		in.AddPointer(core.PointerEvent{Kind: core.PointerMove, X: toX, Y: 12})
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDEndless, IDRange} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %s, expected %s", g.ID(), id)
		}
	}
}

func TestResetModes(t *testing.T) {
	endless := newTestGame(t, New(), 42)
	if len(endless.World().Obstacles()) == 0 {
		t.Error("endless mode should start with a primed corridor")
	}
	if endless.World().Generator() == nil {
		t.Error("endless mode should have a generator")
	}

	practice := newTestGame(t, NewRange(), 42)
	if practice.World().Generator() != nil {
		t.Error("range mode should not have a generator")
	}
	if len(practice.World().Obstacles()) < 4 {
		t.Errorf("range mode has %d obstacles, expected the four walls at least", len(practice.World().Obstacles()))
	}
	if practice.World().Ball().Position() != core.V2(300, 300) {
		t.Errorf("range ball at %v, expected the field center", practice.World().Ball().Position())
	}
}

func TestPointerLaunchThroughCamera(t *testing.T) {
	g := newTestGame(t, New(), 1)

	res := g.Step(dragFrame(30, true))

	if res.State.Shots != 1 {
		t.Errorf("Shots = %d, expected 1", res.State.Shots)
	}
	if v := g.World().Ball().Velocity(); v.X <= 0 || !approx(v.Y, 0) {
		t.Errorf("Velocity() = %v, expected a launch to the right", v)
	}
}

func TestPointerMissesBall(t *testing.T) {
	g := newTestGame(t, New(), 1)
	if g.HandlePointer(core.PointerEvent{Kind: core.PointerDown, X: 5, Y: 3}) {
		t.Error("press far from the ball should not be consumed")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, New(), 1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	if !g.Step(pause).State.Paused {
		t.Fatal("expected paused after P")
	}
	g.Step(core.NewInputFrame())
	if g.World().Stats().Ticks != 0 {
		t.Errorf("Ticks = %d while paused, expected 0", g.World().Stats().Ticks)
	}

	if g.Step(pause).State.Paused {
		t.Error("expected unpaused after second P")
	}
	if g.World().Stats().Ticks != 1 {
		t.Errorf("Ticks = %d after resume, expected 1", g.World().Stats().Ticks)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.Step(dragFrame(20, true))

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	if res.State.Shots != 0 || res.State.Score != 0 {
		t.Errorf("state after restart = %+v, expected fresh", res.State)
	}
	if !g.World().Ball().Velocity().IsZero() {
		t.Error("ball should be at rest after restart")
	}
}

func TestRangeKeepsBallInside(t *testing.T) {
	g := newTestGame(t, NewRange(), 3)
	g.Step(dragFrame(0, true))

	empty := core.NewInputFrame()
	for i := 0; i < 900; i++ {
		g.Step(empty)
		p := g.World().Ball().Position()
		if p.X < 0 || p.X > 600 || p.Y < 0 || p.Y > 600 {
			t.Fatalf("tick %d: ball escaped to %v", i, p)
		}
	}
	if g.World().Stats().Bounces == 0 {
		t.Error("expected at least one bounce off the range walls")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Summary {
		g := newTestGame(t, New(), 12345)
		g.Step(dragFrame(25, true))
		empty := core.NewInputFrame()
		for i := 0; i < 300; i++ {
			g.Step(empty)
		}
		return g.Summary()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("summaries differ: %+v vs %+v", a, b)
	}
}

func TestScoreCountsTiles(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.World().Ball().SetVelocity(core.V2(-6000, 0))
	g.Step(core.NewInputFrame())

	// 5940 units/s for one frame is 99 units: one whole 50-unit tile.
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Shots: 0") {
		t.Errorf("HUD = %q, expected shot counter", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), BallChar) {
		t.Error("ball not drawn")
	}
	if screen.GetCell(40, 12).Rune != BallChar {
		t.Errorf("cell (40,12) = %q, expected the ball", screen.GetCell(40, 12).Rune)
	}

	g.Step(dragFrame(30, false))
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), AimChar) {
		t.Error("aim indicator not drawn while dragging")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.Step(dragFrame(30, true))
	pos := g.World().Ball().Position()

	g.Resize(120, 40)
	if g.World().Stats().Shots != 1 {
		t.Errorf("Shots = %d after resize, expected 1", g.World().Stats().Shots)
	}
	if g.World().Ball().Position() != pos {
		t.Errorf("ball moved on resize: %v -> %v", pos, g.World().Ball().Position())
	}
	if g.Camera().ScreenW != 120 || g.Camera().ScreenH != 39 {
		t.Errorf("camera = %dx%d, expected 120x39", g.Camera().ScreenW, g.Camera().ScreenH)
	}

	g.Resize(20, 8)
	g.Step(core.NewInputFrame())
	if g.World().Stats().Ticks != 1 {
		t.Errorf("Ticks = %d, expected the simulation to halt on a tiny screen", g.World().Stats().Ticks)
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1}, config.DefaultGolfConfig())
	g.World().Ball().SetVelocity(core.V2(100, 0))
	g.Step(core.NewInputFrame())
	if g.World().Stats().Ticks != 0 {
		t.Error("simulation should not run on a too-small screen")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Need") {
		t.Error("expected a size warning")
	}
}

func TestRangeHoldsHardShot(t *testing.T) {
	g := newTestGame(t, NewRange(), 3)
	if !g.Shoot(core.V2(1, 0), 980) {
		t.Fatal("Shoot() not taken")
	}

	empty := core.NewInputFrame()
	for i := 0; i < 3000 && !g.World().Ball().Velocity().IsZero(); i++ {
		g.Step(empty)
		p := g.World().Ball().Position()
		if p.X < 0 || p.X > 600 || p.Y < 0 || p.Y > 600 {
			t.Fatalf("tick %d: ball escaped to %v", i, p)
		}
	}
}

func TestLoadConfigReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golf.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  friction: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("LoadConfig() expected an error for an invalid file")
	}
	if cfg != config.DefaultGolfConfig() {
		t.Errorf("LoadConfig() = %+v, expected the defaults", cfg)
	}

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if got := g.World().Ball().Params().Friction; got != 0.99 {
		t.Errorf("Friction after Reset() = %v, expected the default 0.99", got)
	}
}
