package systems

import (
	"math/rand"
	"time"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// spawnAttempts ограничивает поиск точки вне стен.
const spawnAttempts = 8

// Spawner добавляет слизней вокруг игрока с текущим интервалом спавна.
type Spawner struct {
	MaxSlimes int
	Radius    int

	lastSpawn time.Duration
	spawned   bool
}

func NewSpawner(maxSlimes, radius int) *Spawner {
	return &Spawner{MaxSlimes: maxSlimes, Radius: radius}
}

// Tick спавнит не больше одного слизня, если популяция ниже лимита и с прошлого
// спавна прошёл интервал. Первый вызов спавнит сразу.
func (sp *Spawner) Tick(now, interval time.Duration, p *domain.Player, w *domain.GameWorld, slimes []*domain.Slime, rng *rand.Rand) []*domain.Slime {
	if len(slimes) >= sp.MaxSlimes {
		return slimes
	}
	if sp.spawned && now-sp.lastSpawn <= interval {
		return slimes
	}

	x, y := sp.pickSpot(p, w, rng)
	s := domain.NewSlime(x, y, rng)
	sp.lastSpawn = now
	sp.spawned = true

	logger.Log.WithFields(logrus.Fields{
		"component":  "spawner",
		"slime_id":   s.ID,
		"x":          int(x),
		"y":          int(y),
		"population": len(slimes) + 1,
	}).Debug("Slime spawned.")

	return append(slimes, s)
}

// pickSpot выбирает целую точку в квадрате со стороной 2*Radius вокруг игрока,
// обрезанном картой. Если все попытки попали в стену, берёт последнюю.
func (sp *Spawner) pickSpot(p *domain.Player, w *domain.GameWorld, rng *rand.Rand) (float64, float64) {
	px, py := int(p.X), int(p.Y)
	minX, maxX := max(0, px-sp.Radius), min(w.Width, px+sp.Radius)
	minY, maxY := max(0, py-sp.Radius), min(w.Height, py+sp.Radius)

	var x, y int
	for i := 0; i < spawnAttempts; i++ {
		x = randRange(rng, minX, maxX)
		y = randRange(rng, minY, maxY)
		if !w.IsBlocking(float64(x), float64(y), domain.SlimeWidth, domain.SlimeHeight) {
			break
		}
	}
	return float64(x), float64(y)
}

func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return rng.Intn(hi-lo+1) + lo
}
