package domain

import (
	"testing"
	"time"
)

func TestHealthSystem_TakeDamage(t *testing.T) {
	const cooldown = time.Second

	h := NewHealthSystem(3)

	if !h.TakeDamage(1, 0, cooldown) {
		t.Fatal("first hit should always land")
	}
	if h.CurrentHearts != 2 {
		t.Fatalf("hearts = %d, want 2", h.CurrentHearts)
	}

	// Inside the window: ignored and the clock is not reset.
	if h.TakeDamage(1, 500*time.Millisecond, cooldown) {
		t.Error("hit inside cooldown was applied")
	}
	if h.TakeDamage(1, time.Second, cooldown) {
		t.Error("hit exactly at cooldown boundary was applied")
	}
	if h.CurrentHearts != 2 {
		t.Errorf("hearts = %d after rejected hits, want 2", h.CurrentHearts)
	}

	// 1001ms after the first accepted hit, not after the rejected ones.
	if !h.TakeDamage(1, 1001*time.Millisecond, cooldown) {
		t.Error("hit after cooldown was rejected")
	}
	if last, ok := h.LastDamage(); !ok || last != 1001*time.Millisecond {
		t.Errorf("LastDamage = %v, %v", last, ok)
	}
}

func TestHealthSystem_ClampsAtZero(t *testing.T) {
	h := NewHealthSystem(2)
	h.TakeDamage(10, 0, time.Second)

	if h.CurrentHearts != 0 {
		t.Errorf("hearts = %d, want 0", h.CurrentHearts)
	}
	if !h.IsDead() {
		t.Error("IsDead should be true at zero hearts")
	}
}

func TestHealthSystem_LastHeartWithinCooldown(t *testing.T) {
	h := NewHealthSystem(PlayerHearts)
	h.CurrentHearts = 1

	h.TakeDamage(1, 2*time.Second, DefaultDamageCooldown)
	h.TakeDamage(1, 2*time.Second+300*time.Millisecond, DefaultDamageCooldown)

	if h.CurrentHearts != 0 {
		t.Errorf("hearts = %d, want 0", h.CurrentHearts)
	}
	if !h.IsDead() {
		t.Error("expected dead")
	}
}

func TestHealthSystem_Property(t *testing.T) {
	for before := 0; before <= 4; before++ {
		for n := 0; n <= 5; n++ {
			h := NewHealthSystem(4)
			h.CurrentHearts = before
			h.TakeDamage(n, 0, time.Second)

			want := before - n
			if want < 0 {
				want = 0
			}
			if h.CurrentHearts != want {
				t.Errorf("before=%d n=%d: hearts = %d, want %d", before, n, h.CurrentHearts, want)
			}
		}
	}
}
