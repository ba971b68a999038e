package golf

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-golf/internal/core"
)

// OverlapMode selects how candidate walls are tested against existing obstacles.
type OverlapMode int

const (
	// OverlapPadded rejects candidates whose AABB intersects an existing
	// obstacle's AABB grown by Padding. Exact; the default.
	OverlapPadded OverlapMode = iota
	// OverlapCenterDistance rejects candidates whose center is closer to an
	// existing center than the pair's average half-size plus Padding.
	// Looser, but does not grow with rotated bounding boxes.
	OverlapCenterDistance
)

// String returns the config name of the mode.
func (m OverlapMode) String() string {
	if m == OverlapCenterDistance {
		return "center"
	}
	return "padded"
}

// ParseOverlapMode maps a config name to a mode. Unknown names give OverlapPadded.
func ParseOverlapMode(s string) OverlapMode {
	if s == "center" {
		return OverlapCenterDistance
	}
	return OverlapPadded
}

// GeneratorParams holds the tunables of the corridor generator.
type GeneratorParams struct {
	GenerationDistance  float64 // Ball travel between generation passes
	MinObstacleDistance float64 // Clearance kept around the ball (plus its radius)
	MaxObstacleCount    int     // Hard cap on the total obstacle count
	MaxTurnAngle        float64 // Degrees a segment may turn from the previous heading
	MinSegmentLength    float64
	MaxSegmentLength    float64
	MinPathWidth        float64
	MaxPathWidth        float64
	WallThickness       float64
	SegmentsPerBatch    int
	SeedOffset          float64 // Distance ahead of the ball where the path starts
	Padding             float64 // Margin used by the overlap test
	Overlap             OverlapMode
}

// DefaultGeneratorParams returns the standard corridor tuning.
func DefaultGeneratorParams() GeneratorParams {
	return GeneratorParams{
		GenerationDistance:  400,
		MinObstacleDistance: 100,
		MaxObstacleCount:    100,
		MaxTurnAngle:        45,
		MinSegmentLength:    250,
		MaxSegmentLength:    450,
		MinPathWidth:        180,
		MaxPathWidth:        250,
		WallThickness:       20,
		SegmentsPerBatch:    3,
		SeedOffset:          150,
		Padding:             20,
		Overlap:             OverlapPadded,
	}
}

// Limits applied by SetDifficulty at level 1.
const (
	hardestTurnAngle  = 75.0
	hardestWidthScale = 0.75
)

// initialHeading is the direction of the first segment.
var initialHeading = core.V2(1, 0)

var wallColors = []core.Color{core.ColorLightBrown, core.ColorDarkBrown, core.ColorGray}

// PathSegment is one leg of the corridor. It lives only long enough to
// be turned into its two walls.
type PathSegment struct {
	Start, End core.Vec2
	Width      float64
}

// Direction returns the unit heading of the segment.
func (s PathSegment) Direction() core.Vec2 {
	return s.End.Sub(s.Start).NormalizeOr(initialHeading)
}

// Length returns the segment length.
func (s PathSegment) Length() float64 {
	return s.Start.Dist(s.End)
}

// wallSpec is a candidate wall before validation.
type wallSpec struct {
	center   core.Vec2
	size     core.Vec2
	rotation float64
}

// walls returns the left and right wall of the segment: thin rectangles
// spanning its length, offset by half the width along the perpendicular.
func (s PathSegment) walls(thickness float64) [2]wallSpec {
	dir := s.Direction()
	mid := s.Start.Add(s.End).Scale(0.5)
	offset := dir.Perp().Scale(s.Width / 2)
	size := core.V2(s.Length(), thickness)
	rot := core.RadToDeg(dir.Angle())

	return [2]wallSpec{
		{center: mid.Sub(offset), size: size, rotation: rot},
		{center: mid.Add(offset), size: size, rotation: rot},
	}
}

// Generator extends a corridor of wall obstacles ahead of the ball.
// It owns its RNG; it is not safe for concurrent use.
type Generator struct {
	params GeneratorParams
	rng    *rand.Rand
	level  float64

	initialized            bool
	lastGenerationPosition core.Vec2
	pathEnd                core.Vec2
	pathDirection          core.Vec2
	pathWidth              float64
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(params GeneratorParams, seed int64) *Generator {
	return &Generator{
		params:        params,
		rng:           rand.New(rand.NewSource(seed)),
		pathDirection: initialHeading,
		pathWidth:     (params.MinPathWidth + params.MaxPathWidth) / 2,
	}
}

// Params returns the generator tunables.
func (g *Generator) Params() GeneratorParams { return g.params }

// Initialized reports whether the path has been seeded.
func (g *Generator) Initialized() bool { return g.initialized }

// LastGenerationPosition returns the ball position of the last pass.
func (g *Generator) LastGenerationPosition() core.Vec2 { return g.lastGenerationPosition }

// PathEnd returns where the next segment will start.
func (g *Generator) PathEnd() core.Vec2 { return g.pathEnd }

// PathDirection returns the heading of the last segment.
func (g *Generator) PathDirection() core.Vec2 { return g.pathDirection }

// PathWidth returns the width of the last segment.
func (g *Generator) PathWidth() float64 { return g.pathWidth }

// SetDifficulty scales the corridor for a difficulty level in [0, 1]:
// higher levels narrow the corridor and allow sharper turns.
func (g *Generator) SetDifficulty(level float64) {
	g.level = core.ClampF(level, 0, 1)
}

// Seed places the path start and the reference position explicitly.
// Used when the first pass should not wait for the ball to travel.
func (g *Generator) Seed(ballPos core.Vec2) {
	g.initialized = true
	g.lastGenerationPosition = ballPos
	g.pathEnd = ballPos.Add(initialHeading.Scale(g.params.SeedOffset))
	g.pathDirection = initialHeading
}

// ShouldGenerate reports whether the ball has moved far enough since the last pass.
func (g *Generator) ShouldGenerate(ballPos core.Vec2) bool {
	return ballPos.Dist(g.lastGenerationPosition) > g.params.GenerationDistance
}

// Generate extends the corridor by one batch of segments and returns the
// obstacles that passed validation. existing is only read; the caller
// appends the result. Once existing reaches the cap this is a no-op.
func (g *Generator) Generate(ballPos core.Vec2, ballRadius float64, existing []*Obstacle) []*Obstacle {
	if !g.initialized {
		g.Seed(ballPos)
	}
	g.lastGenerationPosition = ballPos

	if len(existing) >= g.params.MaxObstacleCount {
		return nil
	}

	all := make([]*Obstacle, len(existing), len(existing)+2*g.params.SegmentsPerBatch)
	copy(all, existing)
	var placed []*Obstacle

	for i := 0; i < g.params.SegmentsPerBatch; i++ {
		seg := g.nextSegment()
		for _, w := range seg.walls(g.params.WallThickness) {
			if len(all) >= g.params.MaxObstacleCount {
				return placed
			}
			if !g.IsValidPosition(w.center, w.size, w.rotation, ballPos, ballRadius, all) {
				continue
			}
			o, err := NewObstacle(w.center, w.size, wallColors[g.rng.Intn(len(wallColors))], w.rotation)
			if err != nil {
				continue
			}
			all = append(all, o)
			placed = append(placed, o)
		}
	}
	return placed
}

// nextSegment advances the directed random walk by one leg.
func (g *Generator) nextSegment() PathSegment {
	maxTurn := g.params.MaxTurnAngle
	if g.level > 0 {
		maxTurn += (hardestTurnAngle - maxTurn) * g.level
		maxTurn = math.Max(maxTurn, g.params.MaxTurnAngle)
	}
	turn := (g.rng.Float64()*2 - 1) * maxTurn

	length := g.uniform(g.params.MinSegmentLength, g.params.MaxSegmentLength)

	widthScale := 1 - (1-hardestWidthScale)*g.level
	width := g.uniform(g.params.MinPathWidth, g.params.MaxPathWidth) * widthScale

	dir := g.pathDirection.Rotate(core.DegToRad(turn)).NormalizeOr(initialHeading)
	seg := PathSegment{
		Start: g.pathEnd,
		End:   g.pathEnd.Add(dir.Scale(length)),
		Width: width,
	}

	g.pathEnd = seg.End
	g.pathDirection = dir
	g.pathWidth = width
	return seg
}

func (g *Generator) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

// IsValidPosition reports whether a wall with the given center, size and
// rotation keeps clear of the ball and of every existing obstacle.
func (g *Generator) IsValidPosition(pos, size core.Vec2, rotationDeg float64, ballPos core.Vec2, ballRadius float64, existing []*Obstacle) bool {
	if pos.Dist(ballPos) < g.params.MinObstacleDistance+ballRadius {
		return false
	}

	switch g.params.Overlap {
	case OverlapCenterDistance:
		candidateHalf := (size.X + size.Y) / 4
		for _, o := range existing {
			s := o.Size()
			threshold := candidateHalf + (s.X+s.Y)/4 + g.params.Padding
			if pos.Dist(o.Position()) < threshold {
				return false
			}
		}
	default:
		corners := core.RotatedRectCorners(pos, size, rotationDeg)
		candidate := core.BoundsFromPoints(corners[:]...)
		for _, o := range existing {
			if o.Bounds().Expand(g.params.Padding).Intersects(candidate) {
				return false
			}
		}
	}
	return true
}
