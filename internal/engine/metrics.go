package engine

import (
	"time"

	"github.com/armon/go-metrics"
)

var (
	keyFrameTime = []string{"engine", "frame_time"}
	keySpawned   = []string{"slimes", "spawned"}
	keyKilled    = []string{"slimes", "killed"}
	keyAlive     = []string{"slimes", "alive"}
	keyShots     = []string{"player", "shots"}
	keyHitsTaken = []string{"player", "hits_taken"}
	keyBullets   = []string{"bullets", "live"}
)

// recordFrame publishes per-frame counters. With no sink configured the
// global go-metrics instance discards everything.
func (g *Game) recordFrame(start time.Time, spawned, shots, hitsTaken, kills int) {
	metrics.MeasureSince(keyFrameTime, start)
	if spawned > 0 {
		metrics.IncrCounter(keySpawned, float32(spawned))
	}
	if kills > 0 {
		metrics.IncrCounter(keyKilled, float32(kills))
	}
	if shots > 0 {
		metrics.IncrCounter(keyShots, float32(shots))
	}
	if hitsTaken > 0 {
		metrics.IncrCounter(keyHitsTaken, float32(hitsTaken))
	}
	metrics.SetGauge(keyAlive, float32(len(g.Slimes)))
	metrics.SetGauge(keyBullets, float32(len(g.Bullets)))
}
