package domain

import "time"

// HealthSystem is the heart counter shared by the player and slimes.
// Hits arriving within the damage cooldown of the last accepted hit are ignored.
type HealthSystem struct {
	MaxHearts     int
	CurrentHearts int

	lastDamage time.Duration
	damaged    bool
}

func NewHealthSystem(hearts int) HealthSystem {
	return HealthSystem{MaxHearts: hearts, CurrentHearts: hearts}
}

// TakeDamage applies amount at game time now unless the previous accepted hit
// is within cooldown. Rejected hits do not reset the cooldown clock.
// Returns true if the damage was applied.
func (h *HealthSystem) TakeDamage(amount int, now, cooldown time.Duration) bool {
	if h.damaged && now-h.lastDamage <= cooldown {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	h.CurrentHearts -= amount
	if h.CurrentHearts < 0 {
		h.CurrentHearts = 0
	}
	h.lastDamage = now
	h.damaged = true
	return true
}

// IsDead is polled by callers; there is no death callback.
func (h *HealthSystem) IsDead() bool {
	return h.CurrentHearts <= 0
}

// LastDamage returns the time of the last accepted hit and whether there was one.
func (h *HealthSystem) LastDamage() (time.Duration, bool) {
	return h.lastDamage, h.damaged
}
