package domain

import (
	"image/color"
	"sort"
	"time"
)

// WeaponConfig is the immutable template shared by every Weapon of its type.
type WeaponConfig struct {
	Name         string
	Texture      string
	Damage       int
	FireRate     float64 // shots per second
	BulletSpeed  float64
	BulletSize   float64
	BulletColor  color.RGBA
	AmmoCapacity int
	Spread       float64
	// Reloadable weapons refill to AmmoCapacity on demand. The pistol is not.
	Reloadable bool
}

// ShotInterval is the minimum time between two shots.
func (c *WeaponConfig) ShotInterval() time.Duration {
	if c.FireRate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.FireRate)
}

var (
	Pistol = &WeaponConfig{
		Name: "Pistol", Texture: "pistol",
		Damage: 2, FireRate: 2, BulletSpeed: 15, BulletSize: 4,
		BulletColor:  color.RGBA{R: 255, G: 60, B: 60, A: 255},
		AmmoCapacity: 12, Spread: 0.1,
	}
	AK47 = &WeaponConfig{
		Name: "AK-47", Texture: "ak47",
		Damage: 1, FireRate: 10, BulletSpeed: 20, BulletSize: 3,
		BulletColor:  color.RGBA{R: 255, G: 165, B: 0, A: 255},
		AmmoCapacity: 30, Spread: 0.3,
		Reloadable: true,
	}
)

// WeaponCatalog maps texture keys to templates.
type WeaponCatalog map[string]*WeaponConfig

func DefaultCatalog() WeaponCatalog {
	return WeaponCatalog{
		Pistol.Texture: Pistol,
		AK47.Texture:   AK47,
	}
}

// Keys returns catalog keys in a stable order so seeded generation is reproducible.
func (c WeaponCatalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Weapon is a mutable instance: ammo and shot timer.
type Weapon struct {
	Config      *WeaponConfig
	CurrentAmmo int
	MaxAmmo     int

	lastShot time.Duration
	fired    bool
}

func NewWeapon(cfg *WeaponConfig) *Weapon {
	return &Weapon{
		Config:      cfg,
		CurrentAmmo: cfg.AmmoCapacity,
		MaxAmmo:     cfg.AmmoCapacity * AmmoPerClip,
	}
}

// CanShoot reports whether the fire-rate cooldown has elapsed at game time now.
func (w *Weapon) CanShoot(now time.Duration) bool {
	return !w.fired || now-w.lastShot > w.Config.ShotInterval()
}

// Shoot consumes one round if there is ammo and the cooldown elapsed.
func (w *Weapon) Shoot(now time.Duration) bool {
	if w.CurrentAmmo <= 0 || !w.CanShoot(now) {
		return false
	}
	w.CurrentAmmo--
	w.lastShot = now
	w.fired = true
	return true
}

// AddAmmo never exceeds MaxAmmo.
func (w *Weapon) AddAmmo(amount int) {
	w.CurrentAmmo += amount
	if w.CurrentAmmo > w.MaxAmmo {
		w.CurrentAmmo = w.MaxAmmo
	}
}

// Reload tops a reloadable weapon up to one clip. Returns false if nothing changed.
func (w *Weapon) Reload() bool {
	if !w.Config.Reloadable || w.CurrentAmmo >= w.Config.AmmoCapacity {
		return false
	}
	w.CurrentAmmo = w.Config.AmmoCapacity
	return true
}
