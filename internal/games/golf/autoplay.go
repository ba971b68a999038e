package golf

import "github.com/vovakirdan/tui-golf/internal/core"

// Shoot plays one shot without a pointer device: a press on the ball and a
// release pull units behind it, so the ball leaves along dir.
// Returns false when the ball did not take the shot.
func (g *Game) Shoot(dir core.Vec2, pull float64) bool {
	pos := g.world.Ball().Position()
	if !g.world.PointerDown(pos) {
		return false
	}
	release := pos.Sub(dir.NormalizeOr(core.DefaultDirection).Scale(pull))
	return g.world.PointerUp(release)
}

// Settle steps the game with no input until the ball comes to rest or
// maxTicks pass. Returns the number of ticks run.
func (g *Game) Settle(maxTicks int) int {
	empty := core.NewInputFrame()
	for i := 0; i < maxTicks; i++ {
		if g.world.Ball().Velocity().IsZero() {
			return i
		}
		g.Step(empty)
	}
	return maxTicks
}
