package systems

import (
	"testing"

	"github.com/1icebest1/shooter/internal/domain"
)

// playerAt returns a player whose centre is at (cx, cy).
func playerAt(cx, cy float64) *domain.Player {
	p := domain.NewPlayer(domain.MapSize, domain.MapSize)
	p.X = cx - float64(p.Width/2)
	p.Y = cy - float64(p.Height/2)
	return p
}

// itemAt moves it so that its centre is at (cx, cy).
func itemAt(it *domain.Item, cx, cy float64) *domain.Item {
	it.X = cx - float64(it.Width/2)
	it.Y = cy - float64(it.Height/2)
	return it
}

func TestTryPickup_Weapon(t *testing.T) {
	p := playerAt(1000, 1000)
	weapon := itemAt(domain.NewWeaponItem(0, 0, domain.NewWeapon(domain.AK47)), 1030, 1000)
	far := itemAt(domain.NewAmmoItem(0, 0), 1200, 1000)
	ground := []*domain.Item{far, weapon}

	ground, picked := TryPickup(p, ground)
	if picked != weapon {
		t.Fatalf("picked = %v, want the nearby weapon", picked)
	}
	if len(ground) != 1 || ground[0] != far {
		t.Errorf("ground = %v, want only the far ammo", ground)
	}
	if p.Inventory.Slots[0] != weapon {
		t.Error("weapon not stored in first slot")
	}
}

func TestTryPickup_AmmoWithoutWeaponStaysOnGround(t *testing.T) {
	p := playerAt(1000, 1000)
	ammo := itemAt(domain.NewAmmoItem(0, 0), 1010, 1010)
	ground := []*domain.Item{ammo}

	ground, picked := TryPickup(p, ground)
	if picked != nil {
		t.Error("ammo consumed without a weapon")
	}
	if len(ground) != 1 || ground[0] != ammo {
		t.Error("ammo should remain on the ground untouched")
	}

	pistol := domain.NewWeapon(domain.Pistol)
	p.Inventory.AddItem(domain.NewWeaponItem(0, 0, pistol))

	ground, picked = TryPickup(p, ground)
	if picked != ammo || len(ground) != 0 {
		t.Fatalf("picked=%v ground=%d", picked, len(ground))
	}
	if pistol.CurrentAmmo != 12+domain.AmmoRefill {
		t.Errorf("pistol ammo = %d", pistol.CurrentAmmo)
	}
	if p.Inventory.Count() != 1 {
		t.Error("ammo must not occupy a slot")
	}
}

func TestTryPickup_SkipsRefusedItem(t *testing.T) {
	p := playerAt(1000, 1000)
	ammo := itemAt(domain.NewAmmoItem(0, 0), 1000, 1000)
	orb := itemAt(domain.NewGenericItem(0, 0, "red_orb"), 1020, 1000)

	ground, picked := TryPickup(p, []*domain.Item{ammo, orb})
	if picked != orb {
		t.Errorf("picked = %v, want the orb behind the refused ammo", picked)
	}
	if len(ground) != 1 || ground[0] != ammo {
		t.Error("refused ammo should stay")
	}
}

func TestTryPickup_OutOfRange(t *testing.T) {
	p := playerAt(1000, 1000)
	it := itemAt(domain.NewGenericItem(0, 0, "red_orb"), 1050, 1000)

	if _, picked := TryPickup(p, []*domain.Item{it}); picked != nil {
		t.Error("item exactly at pickup radius should be out of reach")
	}
}

func TestTryDrop(t *testing.T) {
	p := playerAt(1000, 1000)
	weapon := domain.NewWeaponItem(0, 0, domain.NewWeapon(domain.Pistol))
	p.Inventory.AddItem(weapon)

	ground, dropped := TryDrop(p, nil)
	if dropped != nil || len(ground) != 0 {
		t.Fatal("drop without selection should do nothing")
	}

	p.Inventory.Select(0)
	ground, dropped = TryDrop(p, ground)
	if dropped != weapon || len(ground) != 1 {
		t.Fatalf("dropped=%v ground=%d", dropped, len(ground))
	}
	if weapon.X != 985 || weapon.Y != 985 {
		t.Errorf("dropped at (%v, %v), want (985, 985)", weapon.X, weapon.Y)
	}
	if p.Inventory.Slots[0] != nil {
		t.Error("slot not emptied")
	}

	// Empty selected slot: no-op.
	ground, dropped = TryDrop(p, ground)
	if dropped != nil || len(ground) != 1 {
		t.Error("dropping an empty slot should do nothing")
	}

	// Round trip: the dropped weapon keeps its ammo.
	weapon.Weapon.CurrentAmmo = 3
	_, picked := TryPickup(p, ground)
	if picked != weapon || p.Inventory.SelectedWeapon().CurrentAmmo != 3 {
		t.Error("picked-up weapon should keep its ammo")
	}
}

func TestTryReload(t *testing.T) {
	p := playerAt(1000, 1000)
	ak := domain.NewWeapon(domain.AK47)
	ak.CurrentAmmo = 0
	p.Inventory.AddItem(domain.NewWeaponItem(0, 0, domain.NewWeapon(domain.Pistol)))
	p.Inventory.AddItem(domain.NewWeaponItem(0, 0, ak))

	if TryReload(p) {
		t.Error("reload with nothing selected")
	}

	p.Inventory.Select(0)
	if TryReload(p) {
		t.Error("pistol reloaded")
	}

	p.Inventory.Select(1)
	if !TryReload(p) || ak.CurrentAmmo != domain.AK47.AmmoCapacity {
		t.Errorf("ak ammo = %d after reload", ak.CurrentAmmo)
	}
}

func TestTryPickup_ClearsVacatedTail(t *testing.T) {
	p := playerAt(1000, 1000)
	near := itemAt(domain.NewWeaponItem(0, 0, domain.NewWeapon(domain.Pistol)), 1000, 1000)
	far := itemAt(domain.NewAmmoItem(0, 0), 3000, 3000)
	backing := []*domain.Item{near, far}

	ground, picked := TryPickup(p, backing)
	if picked != near {
		t.Fatalf("picked = %v, want the nearby pistol", picked)
	}
	if len(ground) != 1 || ground[0] != far {
		t.Fatalf("ground = %v, want only the far ammo", ground)
	}
	if backing[1] != nil {
		t.Error("vacated slot of the backing array still references an item")
	}
}
