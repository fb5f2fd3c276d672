package systems

import (
	"time"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ApplyContactDamage наносит игроку урон за каждого касающегося слизня с учётом
// кулдауна урона. Возвращает число прошедших ударов.
func ApplyContactDamage(p *domain.Player, slimes []*domain.Slime, now, cooldown time.Duration) int {
	landed := 0
	box := p.Bounds()

	for _, s := range slimes {
		if !box.Intersects(s.Bounds()) {
			continue
		}

		before := p.Health.CurrentHearts
		if !p.Health.TakeDamage(domain.ContactDamage, now, cooldown) {
			continue
		}
		landed++

		logger.Log.WithFields(logrus.Fields{
			"component":   "combat_system",
			"slime_id":    s.ID,
			"hp_before":   before,
			"hp_after":    p.Health.CurrentHearts,
			"player_died": p.Health.IsDead(),
		}).Info("Player hit.")
	}
	return landed
}
