package engine

import (
	"fmt"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/internal/systems"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ActionType - дискретная команда игрока, срабатывает по нажатию.
type ActionType uint8

const (
	ActionSelectSlot ActionType = iota + 1
	ActionReload
	ActionPickup
	ActionDrop
)

func (a ActionType) String() string {
	switch a {
	case ActionSelectSlot:
		return "SELECT_SLOT"
	case ActionReload:
		return "RELOAD"
	case ActionPickup:
		return "PICKUP"
	case ActionDrop:
		return "DROP"
	default:
		return "UNKNOWN"
	}
}

// Action - одна команда на кадр. Slot нужен только для ActionSelectSlot.
type Action struct {
	Type ActionType
	Slot int
}

// Input - всё, что игрок сделал за кадр.
type Input struct {
	Move    systems.MoveIntent
	Fire    bool // зажата левая кнопка
	Actions []Action
}

// Result - ответ хендлера. Пустой Msg ничего не пишет в ленту.
type Result struct {
	Msg     string
	MsgType string
}

// HandlerFunc выполняет одно действие. Хендлеры меняют состояние напрямую.
type HandlerFunc func(g *Game, a Action) Result

func defaultHandlers() map[ActionType]HandlerFunc {
	return map[ActionType]HandlerFunc{
		ActionSelectSlot: handleSelectSlot,
		ActionReload:     handleReload,
		ActionPickup:     handlePickup,
		ActionDrop:       handleDrop,
	}
}

func (g *Game) dispatch(a Action) {
	h, ok := g.handlers[a.Type]
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    a.Type.String(),
		}).Warn("No handler for action.")
		return
	}
	if res := h(g, a); res.Msg != "" {
		g.AddLog(res.Msg, res.MsgType)
	}
}

func handleSelectSlot(g *Game, a Action) Result {
	g.Player.Inventory.Select(a.Slot)
	return Result{}
}

func handleReload(g *Game, _ Action) Result {
	if !systems.TryReload(g.Player) {
		return Result{}
	}
	w := g.Player.Inventory.SelectedWeapon()
	return Result{Msg: fmt.Sprintf("%s reloaded (%d/%d)", w.Config.Name, w.CurrentAmmo, w.MaxAmmo), MsgType: LogInfo}
}

func handlePickup(g *Game, _ Action) Result {
	var it *domain.Item
	g.Items, it = systems.TryPickup(g.Player, g.Items)
	if it == nil {
		return Result{}
	}
	return Result{Msg: "Picked up " + it.Name(), MsgType: LogLoot}
}

func handleDrop(g *Game, _ Action) Result {
	var it *domain.Item
	g.Items, it = systems.TryDrop(g.Player, g.Items)
	if it == nil {
		return Result{}
	}
	return Result{Msg: "Dropped " + it.Name(), MsgType: LogLoot}
}
