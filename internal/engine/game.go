package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/internal/systems"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ErrSessionOver возвращается из Update, когда экран конца игры отображён положенное время.
var ErrSessionOver = errors.New("session over")

// Game владеет всей симуляцией. Работает в одной горутине.
type Game struct {
	cfg   Config
	clock Clock
	rng   *rand.Rand

	World   *domain.GameWorld
	Player  *domain.Player
	Camera  *domain.Camera
	Items   []*domain.Item
	Slimes  []*domain.Slime
	Bullets []*domain.Bullet

	Difficulty *Difficulty
	Spawner    *systems.Spawner

	Kills int
	Frame int

	Logs   []LogEntry
	logSeq int

	handlers map[ActionType]HandlerFunc

	over   bool
	overAt time.Duration
}

// Summary - то, что показывает экран конца игры.
type Summary struct {
	Survived time.Duration
	Kills    int
}

// NewGame собирает сессию поверх уже сгенерированного мира. Игрок получает
// пистолет в слот 0 и АК-47 в слот 1, ничего не выбрано.
func NewGame(cfg Config, world *domain.GameWorld, items []*domain.Item, clock Clock, rng *rand.Rand) *Game {
	p := domain.NewPlayer(world.Width, world.Height)
	clearSpawn(world, p)
	p.Inventory.AddItem(domain.NewWeaponItem(0, 0, domain.NewWeapon(domain.Pistol)))
	p.Inventory.AddItem(domain.NewWeaponItem(0, 0, domain.NewWeapon(domain.AK47)))

	cam := domain.NewCamera(cfg.Window.Width, cfg.Window.Height, world.Width, world.Height)
	cam.Follow(p.Bounds())

	g := &Game{
		cfg:        cfg,
		clock:      clock,
		rng:        rng,
		World:      world,
		Player:     p,
		Camera:     cam,
		Items:      items,
		Difficulty: NewDifficulty(cfg.SpawnInterval(), cfg.DamageCooldown(), DefaultCheckpoints),
		Spawner:    systems.NewSpawner(cfg.Spawn.MaxSlimes, cfg.Spawn.Radius),
		handlers:   defaultHandlers(),
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      cfg.Seed,
		"items":     len(items),
		"player_x":  p.X,
		"player_y":  p.Y,
	}).Info("Session started.")
	return g
}

// clearSpawn убирает стены под стартовым прямоугольником игрока.
func clearSpawn(w *domain.GameWorld, p *domain.Player) {
	from := domain.CellAt(int(p.X), int(p.Y))
	to := domain.CellAt(int(p.X)+p.Width, int(p.Y)+p.Height)
	for y := from.Y; y <= to.Y; y += domain.CellSize {
		for x := from.X; x <= to.X; x += domain.CellSize {
			w.SetWall(domain.Cell{X: x, Y: y}, false)
		}
	}
}

// Update продвигает симуляцию на один кадр.
func (g *Game) Update(in Input) error {
	now := g.clock.Now()

	if g.over {
		if g.Finished() {
			return ErrSessionOver
		}
		return nil
	}

	start := time.Now()
	var spawned, shots, hitsTaken int

	// 1. Сложность
	g.Difficulty.Advance(now)

	// 2. Дискретные действия
	for _, a := range in.Actions {
		g.dispatch(a)
	}

	// 3. Спавн
	before := len(g.Slimes)
	g.Slimes = g.Spawner.Tick(now, g.Difficulty.SpawnInterval, g.Player, g.World, g.Slimes, g.rng)
	spawned = len(g.Slimes) - before

	// 4. Движение игрока
	systems.MovePlayer(g.Player, in.Move, g.World)
	g.Player.AdvanceAnimation(now)

	// 5. Стрельба
	if in.Fire {
		if w := g.Player.Inventory.SelectedWeapon(); w != nil {
			if b := systems.FireWeapon(g.Player, w, now, g.rng); b != nil {
				g.Bullets = append(g.Bullets, b)
				shots++
			}
		}
	}

	// 6. Камера
	g.Camera.Follow(g.Player.Bounds())

	// 7. Пули
	res := systems.UpdateBullets(g.Bullets, g.Slimes, g.World, now, g.Difficulty.DamageCooldown)
	g.Bullets, g.Slimes = res.Bullets, res.Slimes
	if res.Kills > 0 {
		g.Kills += res.Kills
		g.AddLog(fmt.Sprintf("Kills: %d", g.Kills), LogCombat)
	}

	// 8. ИИ слизней, цель - левый верхний угол игрока
	for _, s := range g.Slimes {
		systems.UpdateSlime(s, g.Player.X, g.Player.Y, g.World, g.rng)
	}

	// 9. Контактный урон
	hitsTaken = systems.ApplyContactDamage(g.Player, g.Slimes, now, g.Difficulty.DamageCooldown)
	if hitsTaken > 0 {
		g.AddLog(fmt.Sprintf("Hit! %d hearts left", g.Player.Health.CurrentHearts), LogCombat)
	}

	// 10. Конец игры
	if g.Player.Health.IsDead() {
		g.over = true
		g.overAt = now
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"survived":  now.Round(time.Millisecond).String(),
			"kills":     g.Kills,
			"frames":    g.Frame,
		}).Info("Game over.")
	}

	g.recordFrame(start, spawned, shots, hitsTaken, res.Kills)
	g.Frame++
	return nil
}

// Over сообщает, погиб ли игрок.
func (g *Game) Over() bool {
	return g.over
}

// Finished сообщает, что экран конца игры провисел полный срок.
func (g *Game) Finished() bool {
	return g.over && g.clock.Now()-g.overAt >= domain.GameOverDisplay
}

// Elapsed - время выживания, замороженное в момент смерти.
func (g *Game) Elapsed() time.Duration {
	if g.over {
		return g.overAt
	}
	return g.clock.Now()
}

func (g *Game) Summary() Summary {
	return Summary{Survived: g.Elapsed(), Kills: g.Kills}
}

// FormatSurvival форматирует длительность как m:ss.
func FormatSurvival(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
