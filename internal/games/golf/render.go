package golf

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-golf/internal/core"
)

// Visual characters for rendering
const (
	TileChar     = '·'
	WallChar     = '█'
	BallChar     = '●'
	AimChar      = '•'
	BandChar     = '·'
	CursorChar   = '×'
	SparkChar    = '*'
	EmberChar    = '.'
	aimDots      = 10
	aimPreviewDT = 0.6 // Seconds of flight shown by the aim indicator
)

// EntityKind tags the drawable things in the world.
type EntityKind int

const (
	EntityObstacle EntityKind = iota
	EntityParticle
	EntityBall
)

// Entity is a drawable world object. Exactly one payload matches Kind.
type Entity struct {
	Kind     EntityKind
	Obstacle *Obstacle
	Particle Particle
	Ball     BallSnapshot
}

// Entities returns everything drawable in draw order: obstacles, particles, ball.
func (g *Game) Entities() []Entity {
	snap := g.world.Snapshot()
	parts := g.particles.Particles()

	out := make([]Entity, 0, len(snap.Obstacles)+len(parts)+1)
	for _, o := range snap.Obstacles {
		out = append(out, Entity{Kind: EntityObstacle, Obstacle: o})
	}
	for _, p := range parts {
		out = append(out, Entity{Kind: EntityParticle, Particle: p})
	}
	return append(out, Entity{Kind: EntityBall, Ball: snap.Ball})
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.drawTiles(dst)

	view := g.camera.Visible()
	for _, e := range g.Entities() {
		switch e.Kind {
		case EntityObstacle:
			if e.Obstacle.Bounds().Intersects(view) {
				g.drawObstacle(dst, e.Obstacle)
			}
		case EntityParticle:
			g.drawParticle(dst, e.Particle)
		case EntityBall:
			g.drawBall(dst, e.Ball)
		}
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// toScreen maps a world point to a screen cell below the HUD.
func (g *Game) toScreen(p core.Vec2) (int, int) {
	x, y := g.camera.WorldToScreen(p)
	return x, y + hudRows
}

// cellCenter returns the world point at the center of screen cell (x, y).
func (g *Game) cellCenter(x, y int) core.Vec2 {
	return g.camera.ScreenToWorld(x, y-hudRows)
}

// drawTiles paints the checkerboard lawn.
func (g *Game) drawTiles(dst *core.Screen) {
	tile := g.cfg.Camera.TileSize
	if tile <= 0 {
		return
	}
	for y := hudRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			p := g.cellCenter(x, y)
			ix := int(math.Floor(p.X / tile))
			iy := int(math.Floor(p.Y / tile))
			if (ix+iy)%2 == 0 {
				dst.SetColored(x, y, TileChar, core.ColorDarkGreen)
			}
		}
	}
}

// drawObstacle fills every cell whose center lies in or near the rectangle.
func (g *Game) drawObstacle(dst *core.Screen, o *Obstacle) {
	b := o.Bounds()
	x0, y0 := g.toScreen(core.V2(b.MinX, b.MinY))
	x1, y1 := g.toScreen(core.V2(b.MaxX, b.MaxY))
	x0, y0 = core.Max(x0, 0), core.Max(y0, hudRows)
	x1, y1 = core.Min(x1, dst.Width()-1), core.Min(y1, dst.Height()-1)

	// Thin walls can fall between cell centers; a half-cell reach keeps them solid.
	reach := math.Min(g.camera.UnitsX, g.camera.UnitsY) / 2
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := g.cellCenter(x, y)
			if o.Contains(c) {
				dst.SetColored(x, y, WallChar, o.Color())
				continue
			}
			if _, hit := o.CheckCircleCollision(c, reach); hit {
				dst.SetColored(x, y, WallChar, o.Color())
			}
		}
	}
}

func (g *Game) drawParticle(dst *core.Screen, p Particle) {
	x, y := g.toScreen(p.Pos)
	if y < hudRows {
		return
	}
	ch := EmberChar
	if p.Fade() > 0.5 {
		ch = SparkChar
	}
	dst.SetColored(x, y, ch, p.Color)
}

// drawBall rasterizes the ball as a disc and, while dragging, the rubber
// band to the cursor and the predicted flight as a dotted line.
func (g *Game) drawBall(dst *core.Screen, b BallSnapshot) {
	if b.State == BallDragging {
		bx, by := g.toScreen(b.Position)
		cx, cy := g.toScreen(b.Cursor)
		if cy >= hudRows && cx >= 0 && cx < dst.Width() && cy < dst.Height() {
			dst.DrawLine(bx, by, cx, cy, BandChar, core.ColorGray)
			dst.SetColored(cx, cy, CursorChar, core.ColorRed)
		}

		for i := 1; i <= aimDots; i++ {
			t := float64(i) / aimDots * aimPreviewDT
			x, y := g.toScreen(b.Position.Add(b.Aim.Scale(t)))
			if y >= hudRows {
				dst.SetColored(x, y, AimChar, core.ColorYellow)
			}
		}
	}

	bounds := core.BoundsFromCenter(b.Position, core.V2(b.Radius*2, b.Radius*2))
	x0, y0 := g.toScreen(core.V2(bounds.MinX, bounds.MinY))
	x1, y1 := g.toScreen(core.V2(bounds.MaxX, bounds.MaxY))
	drawn := false
	for y := core.Max(y0, hudRows); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.cellCenter(x, y).Dist(b.Position) <= b.Radius {
				dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := g.toScreen(b.Position)
		if y >= hudRows {
			dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
		}
	}
}

// drawHUD renders the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.world.Stats()
	speed := g.world.Ball().Velocity().Len()
	hud := fmt.Sprintf(" %s  Dist: %d  Shots: %d  Bounces: %d  Speed: %.0f  Walls: %d ",
		g.Title(), g.score, s.Shots, s.Bounces, speed, len(g.world.Obstacles()))
	if g.world.Generator() != nil {
		hud += fmt.Sprintf(" Lvl: %.0f%% ", g.level*100)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorYellow)

	if s.Shots == 0 && !g.world.Ball().IsDragging() {
		dst.DrawTextCentered(dst.Height()-1, " Drag from the ball and release to shoot ")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
