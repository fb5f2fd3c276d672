package render

import (
	"github.com/1icebest1/shooter/internal/engine"
	"github.com/1icebest1/shooter/internal/hud"
	"github.com/1icebest1/shooter/internal/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var slotKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// pollInput turns this tick's keyboard and mouse state into an engine.Input.
// Movement and fire are level-triggered, everything else fires on press.
func pollInput(layout hud.Layout) engine.Input {
	in := engine.Input{
		Move: systems.MoveIntent{
			Left:  ebiten.IsKeyPressed(ebiten.KeyA),
			Right: ebiten.IsKeyPressed(ebiten.KeyD),
			Up:    ebiten.IsKeyPressed(ebiten.KeyW),
			Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		},
		Fire: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if slot := layout.SlotAt(ebiten.CursorPosition()); slot >= 0 {
			in.Actions = append(in.Actions, engine.Action{Type: engine.ActionSelectSlot, Slot: slot})
		}
	}
	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Actions = append(in.Actions, engine.Action{Type: engine.ActionSelectSlot, Slot: i})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Actions = append(in.Actions, engine.Action{Type: engine.ActionReload})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		in.Actions = append(in.Actions, engine.Action{Type: engine.ActionPickup})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Actions = append(in.Actions, engine.Action{Type: engine.ActionDrop})
	}
	return in
}

func quitRequested() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
