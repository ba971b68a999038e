package golf

import (
	"math/rand"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
)

// Bumper dimensions for the practice range.
const (
	bumperWidth    = 80.0
	bumperHeight   = 30.0
	bumperAttempts = 20
)

// RangeWalls returns the four walls enclosing a width x height field whose
// top-left corner is the origin. Walls sit just outside the field.
func RangeWalls(width, height, thickness float64) []*Obstacle {
	half := thickness / 2
	// top, bottom, left, right
	specs := []struct {
		center, size core.Vec2
	}{
		{core.V2(width/2, -half), core.V2(width+2*thickness, thickness)},
		{core.V2(width/2, height+half), core.V2(width+2*thickness, thickness)},
		{core.V2(-half, height/2), core.V2(thickness, height)},
		{core.V2(width+half, height/2), core.V2(thickness, height)},
	}

	walls := make([]*Obstacle, 0, len(specs))
	for _, s := range specs {
		o, err := NewObstacle(s.center, s.size, core.ColorGray, 0)
		if err != nil {
			continue
		}
		walls = append(walls, o)
	}
	return walls
}

// BuildRange populates w with the practice range: an enclosing box and a
// few rotated bumpers that keep clear of the ball and of each other.
func BuildRange(w *World, cfg config.RangeConfig, seed int64) {
	for _, o := range RangeWalls(cfg.Width, cfg.Height, cfg.WallThickness) {
		w.AddObstacle(o)
	}

	rng := rand.New(rand.NewSource(seed))
	ball := w.Ball()
	clearance := ball.Radius()*3 + bumperWidth/2
	margin := 2 * bumperWidth

	for i := 0; i < cfg.Bumpers; i++ {
		for attempt := 0; attempt < bumperAttempts; attempt++ {
			center := core.V2(
				margin+rng.Float64()*(cfg.Width-2*margin),
				margin+rng.Float64()*(cfg.Height-2*margin),
			)
			if center.Dist(ball.Position()) < clearance {
				continue
			}
			o, err := NewObstacle(center, core.V2(bumperWidth, bumperHeight), wallColors[rng.Intn(len(wallColors))], rng.Float64()*180)
			if err != nil || overlapsAny(o, w.Obstacles(), ball.Radius()*2) {
				continue
			}
			w.AddObstacle(o)
			break
		}
	}
}

// overlapsAny reports whether o's box, grown by gap, touches any of others.
func overlapsAny(o *Obstacle, others []*Obstacle, gap float64) bool {
	b := o.Bounds().Expand(gap)
	for _, other := range others {
		if b.Intersects(other.Bounds()) {
			return true
		}
	}
	return false
}
