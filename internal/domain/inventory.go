package domain

// Inventory is a fixed row of slots with an optional selection (-1 = none).
type Inventory struct {
	Slots    [InventorySlots]*Item
	Selected int
}

func NewInventory() *Inventory {
	return &Inventory{Selected: -1}
}

// AddItem stores item in the first free slot. Ammo never takes a slot: it
// refills the first weapon found and fails if there is none.
func (inv *Inventory) AddItem(item *Item) bool {
	if inv == nil || item == nil {
		return false
	}

	switch item.Kind {
	case ItemAmmo:
		for _, slot := range inv.Slots {
			if slot != nil && slot.Kind == ItemWeapon && slot.Weapon != nil {
				slot.Weapon.AddAmmo(item.Amount)
				return true
			}
		}
		return false
	default:
		for i := range inv.Slots {
			if inv.Slots[i] == nil {
				inv.Slots[i] = item
				return true
			}
		}
		return false
	}
}

// RemoveItem empties a slot and returns what it held, nil for a bad index.
func (inv *Inventory) RemoveItem(slot int) *Item {
	if inv == nil || slot < 0 || slot >= len(inv.Slots) {
		return nil
	}
	removed := inv.Slots[slot]
	inv.Slots[slot] = nil
	return removed
}

// Select ignores out-of-range indices.
func (inv *Inventory) Select(slot int) {
	if slot < 0 || slot >= len(inv.Slots) {
		return
	}
	inv.Selected = slot
}

func (inv *Inventory) SelectedItem() *Item {
	if inv.Selected < 0 || inv.Selected >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[inv.Selected]
}

// SelectedWeapon returns nil unless the selected slot holds a weapon.
func (inv *Inventory) SelectedWeapon() *Weapon {
	it := inv.SelectedItem()
	if it == nil || it.Kind != ItemWeapon {
		return nil
	}
	return it.Weapon
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	n := 0
	for _, s := range inv.Slots {
		if s != nil {
			n++
		}
	}
	return n
}
