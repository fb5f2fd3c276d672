package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// FireWeapon жмёт на спуск w. При выстреле возвращает пулю, вылетающую из центра
// игрока на MuzzleOffset px по направлению взгляда, с разбросом оружия.
// Возвращает nil, если оружие на кулдауне или пустое.
func FireWeapon(p *domain.Player, w *domain.Weapon, now time.Duration, rng *rand.Rand) *domain.Bullet {
	if w == nil || !w.Shoot(now) {
		return nil
	}

	rad := (p.Direction.Angle() + w.Config.Spread*domain.SpreadAimScale) * math.Pi / 180
	cx := p.X + float64(p.Width/2)
	cy := p.Y + float64(p.Height/2)
	bx := cx + math.Cos(rad)*domain.MuzzleOffset
	by := cy - math.Sin(rad)*domain.MuzzleOffset

	return domain.NewBullet(bx, by, p.Direction, w.Config, rng)
}

// AdvanceBullet двигает b на один кадр: полная скорость вдоль оси плюс небольшой
// снос от угла разброса, зафиксированного при создании.
func AdvanceBullet(b *domain.Bullet) {
	ux, uy := b.Direction.Delta()
	dx := ux * b.Speed
	dy := uy * b.Speed

	rad := b.Spread * math.Pi / 180
	dx += math.Cos(rad) * b.Speed * domain.SpreadWobble
	dy += math.Sin(rad) * b.Speed * domain.SpreadWobble

	b.X += dx
	b.Y += dy
}

// BulletResult - итог одного прохода по пулям.
type BulletResult struct {
	Bullets []*domain.Bullet
	Slimes  []*domain.Slime
	Kills   int
	Hits    int
}

// UpdateBullets двигает все пули, засчитывает не больше одного попадания на пулю
// (первый слизень по порядку) и убирает пули за пределами карты.
// Оба слайса ужимаются на месте после прохода.
func UpdateBullets(bullets []*domain.Bullet, slimes []*domain.Slime, w *domain.GameWorld, now, cooldown time.Duration) BulletResult {
	res := BulletResult{}
	deadSlimes := make(map[*domain.Slime]bool)

	keep := bullets[:0]
	for _, b := range bullets {
		AdvanceBullet(b)

		if hitSlime(b, slimes, deadSlimes, now, cooldown, &res) {
			continue
		}
		if !w.InBounds(b.X, b.Y) {
			continue
		}
		keep = append(keep, b)
	}
	for i := len(keep); i < len(bullets); i++ {
		bullets[i] = nil
	}
	res.Bullets = keep

	res.Slimes = slimes
	if len(deadSlimes) > 0 {
		res.Slimes = compactSlimes(slimes, deadSlimes)
	}
	return res
}

func hitSlime(b *domain.Bullet, slimes []*domain.Slime, dead map[*domain.Slime]bool, now, cooldown time.Duration, res *BulletResult) bool {
	box := b.Bounds()
	for _, s := range slimes {
		if dead[s] || !box.Intersects(s.Bounds()) {
			continue
		}

		res.Hits++
		s.Health.TakeDamage(b.Damage, now, cooldown)
		if s.Health.IsDead() {
			dead[s] = true
			res.Kills++
			logger.Log.WithFields(logrus.Fields{
				"component": "projectile_system",
				"slime_id":  s.ID,
				"x":         int(s.X),
				"y":         int(s.Y),
			}).Debug("Slime killed.")
		}
		return true
	}
	return false
}

func compactSlimes(slimes []*domain.Slime, dead map[*domain.Slime]bool) []*domain.Slime {
	keep := slimes[:0]
	for _, s := range slimes {
		if !dead[s] {
			keep = append(keep, s)
		}
	}
	for i := len(keep); i < len(slimes); i++ {
		slimes[i] = nil
	}
	return keep
}
