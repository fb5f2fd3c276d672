package domain

import "math"

// Camera is the viewport offset, recomputed from the player every frame.
type Camera struct {
	X, Y      float64
	Width     int
	Height    int
	MapWidth  int
	MapHeight int
}

func NewCamera(width, height, mapWidth, mapHeight int) *Camera {
	return &Camera{Width: width, Height: height, MapWidth: mapWidth, MapHeight: mapHeight}
}

// Follow centres the viewport on the target box, clamped to the map.
func (c *Camera) Follow(target Rect) {
	cx, cy := target.Center()
	x := math.Floor(cx) - float64(c.Width/2)
	y := math.Floor(cy) - float64(c.Height/2)
	c.X = math.Max(0, math.Min(x, float64(c.MapWidth-c.Width)))
	c.Y = math.Max(0, math.Min(y, float64(c.MapHeight-c.Height)))
}

// Apply converts world coordinates to screen coordinates.
func (c *Camera) Apply(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// Visible reports whether a box at (x, y) of size (w, h) overlaps the viewport
// widened by margin on every side.
func (c *Camera) Visible(x, y, w, h, margin float64) bool {
	return x+w >= c.X-margin && x <= c.X+float64(c.Width)+margin &&
		y+h >= c.Y-margin && y <= c.Y+float64(c.Height)+margin
}
