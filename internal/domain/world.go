package domain

import "math"

// Cell is the absolute pixel coordinate of a tile's top-left corner.
type Cell struct {
	X, Y int
}

// CellAt returns the cell containing the pixel (x, y).
func CellAt(x, y int) Cell {
	return Cell{X: floorDiv(x, CellSize) * CellSize, Y: floorDiv(y, CellSize) * CellSize}
}

type DecorationKind uint8

const (
	DecorFlower DecorationKind = iota
	DecorRock
)

func (d DecorationKind) String() string {
	if d == DecorRock {
		return "rock"
	}
	return "flower"
}

// GameWorld is the tile grid. Generated once, read-only afterwards.
type GameWorld struct {
	// Tiles: true means blocking. Missing cells are open.
	Tiles       map[Cell]bool
	Decorations map[Cell]DecorationKind
	Width       int
	Height      int
}

func NewGameWorld(width, height int) *GameWorld {
	return &GameWorld{
		Tiles:       make(map[Cell]bool),
		Decorations: make(map[Cell]DecorationKind),
		Width:       width,
		Height:      height,
	}
}

func (w *GameWorld) SetWall(c Cell, blocking bool) {
	w.Tiles[c] = blocking
}

func (w *GameWorld) IsWallCell(c Cell) bool {
	return w.Tiles[c]
}

// IsBlocking reports whether the box (x, y, width, height) touches the wall zone
// of any blocking tile it overlaps. Only the top WallZoneFactor of a wall tile
// collides, so entities may overlap the lower part of a wall visually.
func (w *GameWorld) IsBlocking(x, y float64, width, height int) bool {
	ix, iy := int(x), int(y)

	left := floorDiv(ix, CellSize)
	right := floorDiv(ix+width, CellSize)
	top := floorDiv(iy, CellSize)
	bottom := floorDiv(iy+height, CellSize)

	for cy := top; cy <= bottom; cy++ {
		for cx := left; cx <= right; cx++ {
			c := Cell{X: cx * CellSize, Y: cy * CellSize}
			if !w.Tiles[c] {
				continue
			}
			wallZone := float64(c.Y) + CellSize*WallZoneFactor
			if iy+height > c.Y && float64(iy) < wallZone {
				return true
			}
		}
	}
	return false
}

// InBounds reports whether (x, y) lies on the map, edges included.
func (w *GameWorld) InBounds(x, y float64) bool {
	return x >= 0 && x <= float64(w.Width) && y >= 0 && y <= float64(w.Height)
}

// ClampBox keeps a box of the given size fully inside the map.
func (w *GameWorld) ClampBox(x, y float64, width, height int) (float64, float64) {
	x = math.Max(0, math.Min(float64(w.Width-width), x))
	y = math.Max(0, math.Min(float64(w.Height-height), y))
	return x, y
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
