package domain

import "github.com/1icebest1/shooter/pkg/utils"

// ItemKind tags what an Item carries.
type ItemKind uint8

const (
	ItemGeneric ItemKind = iota
	ItemWeapon
	ItemAmmo
)

func (k ItemKind) String() string {
	switch k {
	case ItemWeapon:
		return "weapon"
	case ItemAmmo:
		return "ammo"
	default:
		return "generic"
	}
}

// Item is either lying on the ground (X, Y set) or sitting in an inventory slot.
// Payload depends on Kind: Weapon for ItemWeapon, Amount for ItemAmmo.
type Item struct {
	ID      string
	Kind    ItemKind
	X, Y    float64
	Width   int
	Height  int
	Texture string

	Weapon *Weapon
	Amount int
}

func NewWeaponItem(x, y float64, w *Weapon) *Item {
	return &Item{
		ID: utils.GenerateID(), Kind: ItemWeapon,
		X: x, Y: y, Width: ItemSize, Height: ItemSize,
		Texture: w.Config.Texture,
		Weapon:  w,
	}
}

func NewAmmoItem(x, y float64) *Item {
	return &Item{
		ID: utils.GenerateID(), Kind: ItemAmmo,
		X: x, Y: y, Width: ItemSize, Height: ItemSize,
		Texture: "ammo",
		Amount:  AmmoRefill,
	}
}

func NewGenericItem(x, y float64, texture string) *Item {
	return &Item{
		ID: utils.GenerateID(), Kind: ItemGeneric,
		X: x, Y: y, Width: ItemSize, Height: ItemSize,
		Texture: texture,
	}
}

func (it *Item) Bounds() Rect {
	return Rect{X: it.X, Y: it.Y, W: float64(it.Width), H: float64(it.Height)}
}

// Name is used for logging.
func (it *Item) Name() string {
	if it.Kind == ItemWeapon && it.Weapon != nil {
		return it.Weapon.Config.Name
	}
	return it.Texture
}
