package core

import "math"

// Camera maps world coordinates to screen cells and back.
// Terminal cells are roughly twice as tall as they are wide, so the
// vertical scale is usually double the horizontal one.
type Camera struct {
	Center  Vec2    // World point shown in the middle of the screen
	UnitsX  float64 // World units per cell horizontally
	UnitsY  float64 // World units per cell vertically
	ScreenW int
	ScreenH int
}

// NewCamera creates a camera for the given screen size.
// Non-positive scales fall back to 10x20 units per cell.
func NewCamera(screenW, screenH int, unitsX, unitsY float64) Camera {
	if unitsX <= 0 {
		unitsX = 10
	}
	if unitsY <= 0 {
		unitsY = 20
	}
	return Camera{UnitsX: unitsX, UnitsY: unitsY, ScreenW: screenW, ScreenH: screenH}
}

// WorldToScreen returns the cell containing world point p.
func (c Camera) WorldToScreen(p Vec2) (int, int) {
	x := (p.X-c.Center.X)/c.UnitsX + float64(c.ScreenW)/2
	y := (p.Y-c.Center.Y)/c.UnitsY + float64(c.ScreenH)/2
	return int(math.Floor(x)), int(math.Floor(y))
}

// ScreenToWorld returns the world point at the center of cell (x, y).
func (c Camera) ScreenToWorld(x, y int) Vec2 {
	return Vec2{
		X: (float64(x)+0.5-float64(c.ScreenW)/2)*c.UnitsX + c.Center.X,
		Y: (float64(y)+0.5-float64(c.ScreenH)/2)*c.UnitsY + c.Center.Y,
	}
}

// Visible returns the world-space area covered by the screen.
func (c Camera) Visible() Bounds {
	hw := float64(c.ScreenW) / 2 * c.UnitsX
	hh := float64(c.ScreenH) / 2 * c.UnitsY
	return Bounds{MinX: c.Center.X - hw, MinY: c.Center.Y - hh, MaxX: c.Center.X + hw, MaxY: c.Center.Y + hh}
}

// Follow moves the camera toward target. A smoothing factor of 1 snaps
// immediately; smaller values ease in over several frames.
func (c *Camera) Follow(target Vec2, smoothing float64) {
	smoothing = ClampF(smoothing, 0, 1)
	if smoothing == 0 {
		smoothing = 1
	}
	c.Center = c.Center.Add(target.Sub(c.Center).Scale(smoothing))
}
