// Package hud holds screen-space geometry shared by drawing and mouse hit-testing.
package hud

import "github.com/1icebest1/shooter/internal/domain"

const (
	HeartSize = 30
	HeartStep = 35

	SlotSize = 50
	SlotGap  = 10
	// PanelPad surrounds the slot row with a dark backing panel.
	PanelPad = 20

	WeaponIconSize = 40
	ItemIconSize   = 30

	GameOverBoxW = 400
	GameOverBoxH = 200
)

// Layout positions HUD elements for a given screen size.
type Layout struct {
	ScreenW int
	ScreenH int

	// InventoryX, InventoryY is the top-left corner of slot 0.
	InventoryX int
	InventoryY int
}

func NewLayout(screenW, screenH int) Layout {
	return Layout{
		ScreenW:    screenW,
		ScreenH:    screenH,
		InventoryX: 50,
		InventoryY: 80,
	}
}

// Heart returns the box of the i-th player heart, top-left of the screen.
func (l Layout) Heart(i int) domain.Rect {
	return domain.Rect{X: float64(10 + i*HeartStep), Y: 10, W: HeartSize, H: HeartSize}
}

func (l Layout) Slot(i int) domain.Rect {
	return domain.Rect{
		X: float64(l.InventoryX + i*(SlotSize+SlotGap)),
		Y: float64(l.InventoryY),
		W: SlotSize,
		H: SlotSize,
	}
}

// Panel is the backing rectangle behind all slots.
func (l Layout) Panel() domain.Rect {
	w := domain.InventorySlots*(SlotSize+SlotGap) - SlotGap
	return domain.Rect{
		X: float64(l.InventoryX - PanelPad),
		Y: float64(l.InventoryY - PanelPad),
		W: float64(w + 2*PanelPad),
		H: float64(SlotSize + 2*PanelPad),
	}
}

// SlotAt returns the slot under the screen point, or -1. Edges count as inside.
func (l Layout) SlotAt(x, y int) int {
	for i := 0; i < domain.InventorySlots; i++ {
		if contains(l.Slot(i), float64(x), float64(y)) {
			return i
		}
	}
	return -1
}

// GameOverBox is centred on screen.
func (l Layout) GameOverBox() domain.Rect {
	return domain.Rect{
		X: float64(l.ScreenW/2 - GameOverBoxW/2),
		Y: float64(l.ScreenH/2 - GameOverBoxH/2),
		W: GameOverBoxW,
		H: GameOverBoxH,
	}
}

// FeedOrigin is where the message feed starts, under the inventory panel.
func (l Layout) FeedOrigin() (int, int) {
	p := l.Panel()
	return int(p.X), int(p.Y+p.H) + 10
}

func contains(r domain.Rect, x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
