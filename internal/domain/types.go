package domain

import "math/rand"

// Direction is the facing of a player, slime or bullet.
type Direction uint8

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

var allDirections = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}

// Angle returns the facing in degrees, counter-clockwise from +x with y pointing up.
func (d Direction) Angle() float64 {
	switch d {
	case DirRight:
		return 0
	case DirUp:
		return 90
	case DirLeft:
		return 180
	default:
		return 270
	}
}

// Delta returns the unit axis step in screen coordinates (y grows downwards).
func (d Direction) Delta() (float64, float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// RandomDirection picks one of the four facings uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return allDirections[rng.Intn(len(allDirections))]
}

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Intersects uses strict inequalities: touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
