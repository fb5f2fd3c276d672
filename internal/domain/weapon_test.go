package domain

import (
	"testing"
	"time"
)

func TestWeapon_PistolFireRate(t *testing.T) {
	w := NewWeapon(Pistol)
	if w.CurrentAmmo != 12 || w.MaxAmmo != 60 {
		t.Fatalf("pistol ammo = %d/%d, want 12/60", w.CurrentAmmo, w.MaxAmmo)
	}

	start := 3 * time.Second
	fired := 0
	if w.Shoot(start) {
		fired++
	}
	if w.Shoot(start + 400*time.Millisecond) {
		fired++
	}

	if fired != 1 {
		t.Errorf("shots fired = %d, want 1", fired)
	}
	if w.CurrentAmmo != 11 {
		t.Errorf("ammo = %d, want 11", w.CurrentAmmo)
	}

	if !w.CanShoot(start + 501*time.Millisecond) {
		t.Error("pistol should be ready 501ms after a shot")
	}
}

func TestWeapon_EmptyDoesNotFire(t *testing.T) {
	w := NewWeapon(AK47)
	w.CurrentAmmo = 0

	if w.Shoot(time.Second) {
		t.Error("empty weapon fired")
	}
	// A dry trigger pull must not start the cooldown.
	w.CurrentAmmo = 1
	if !w.Shoot(time.Second + time.Millisecond) {
		t.Error("reloaded weapon should fire immediately")
	}
}

func TestWeapon_AddAmmoClamps(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *WeaponConfig
		start int
		add   int
		want  int
	}{
		{"pistol partial", Pistol, 12, 10, 22},
		{"pistol clamp", Pistol, 55, 10, 60},
		{"ak clamp", AK47, 149, 10, 150},
		{"ak from zero", AK47, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWeapon(tt.cfg)
			w.CurrentAmmo = tt.start
			w.AddAmmo(tt.add)
			if w.CurrentAmmo != tt.want {
				t.Errorf("ammo = %d, want %d", w.CurrentAmmo, tt.want)
			}
			if w.CurrentAmmo > tt.cfg.AmmoCapacity*5 {
				t.Errorf("ammo %d exceeds capacity x5", w.CurrentAmmo)
			}
		})
	}
}

func TestWeapon_Reload(t *testing.T) {
	ak := NewWeapon(AK47)
	ak.CurrentAmmo = 3
	if !ak.Reload() || ak.CurrentAmmo != 30 {
		t.Errorf("AK reload: ammo = %d, want 30", ak.CurrentAmmo)
	}

	ak.CurrentAmmo = 80
	if ak.Reload() || ak.CurrentAmmo != 80 {
		t.Errorf("reload above one clip should be a no-op, ammo = %d", ak.CurrentAmmo)
	}

	p := NewWeapon(Pistol)
	p.CurrentAmmo = 1
	if p.Reload() || p.CurrentAmmo != 1 {
		t.Error("pistol must not reload")
	}
}

func TestWeaponCatalog_Keys(t *testing.T) {
	keys := DefaultCatalog().Keys()
	if len(keys) != 2 || keys[0] != "ak47" || keys[1] != "pistol" {
		t.Errorf("Keys() = %v", keys)
	}
}
