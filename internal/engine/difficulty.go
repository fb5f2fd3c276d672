package engine

import (
	"time"

	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Checkpoint - одноразовый шаг сложности.
type Checkpoint struct {
	At          time.Duration
	SpawnDelta  time.Duration
	DamageDelta time.Duration
}

// DefaultCheckpoints: за первую минуту интервал спавна 2000 -> 50ms, кулдаун урона 1000 -> 200ms.
var DefaultCheckpoints = []Checkpoint{
	{At: 5 * time.Second, SpawnDelta: 500 * time.Millisecond},
	{At: 20 * time.Second, SpawnDelta: 500 * time.Millisecond, DamageDelta: 100 * time.Millisecond},
	{At: 30 * time.Second, SpawnDelta: 500 * time.Millisecond, DamageDelta: 300 * time.Millisecond},
	{At: 60 * time.Second, SpawnDelta: 450 * time.Millisecond, DamageDelta: 400 * time.Millisecond},
}

// Difficulty хранит текущий интервал спавна и кулдаун урона.
// Каждый чекпоинт срабатывает один раз, на первом Advance в его время или позже,
// поэтому медленный кадр не может его пропустить.
type Difficulty struct {
	SpawnInterval  time.Duration
	DamageCooldown time.Duration

	checkpoints []Checkpoint
	fired       []bool
}

func NewDifficulty(spawn, damage time.Duration, checkpoints []Checkpoint) *Difficulty {
	return &Difficulty{
		SpawnInterval:  spawn,
		DamageCooldown: damage,
		checkpoints:    checkpoints,
		fired:          make([]bool, len(checkpoints)),
	}
}

// Advance применяет все наступившие чекпоинты и возвращает, сколько сработало.
func (d *Difficulty) Advance(elapsed time.Duration) int {
	n := 0
	for i, cp := range d.checkpoints {
		if d.fired[i] || elapsed < cp.At {
			continue
		}
		d.fired[i] = true
		n++

		d.SpawnInterval = nonNegative(d.SpawnInterval - cp.SpawnDelta)
		d.DamageCooldown = nonNegative(d.DamageCooldown - cp.DamageDelta)

		logger.Log.WithFields(logrus.Fields{
			"component":       "difficulty",
			"checkpoint":      cp.At.String(),
			"elapsed":         elapsed.Round(time.Millisecond).String(),
			"spawn_interval":  d.SpawnInterval.String(),
			"damage_cooldown": d.DamageCooldown.String(),
		}).Info("Difficulty increased.")
	}
	return n
}

// Pending возвращает число ещё не сработавших чекпоинтов.
func (d *Difficulty) Pending() int {
	n := 0
	for _, f := range d.fired {
		if !f {
			n++
		}
	}
	return n
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
