package domain

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/1icebest1/shooter/pkg/utils"
)

// Player is the controlled character. It owns its inventory.
type Player struct {
	X, Y      float64
	Width     int
	Height    int
	Speed     float64
	Direction Direction
	Moving    bool

	AnimFrame int
	lastAnim  time.Duration

	Health    HealthSystem
	Inventory *Inventory
}

// NewPlayer places the player in the middle of a map of the given size.
func NewPlayer(mapWidth, mapHeight int) *Player {
	return &Player{
		X:         float64(mapWidth/2 - PlayerWidth/2),
		Y:         float64(mapHeight/2 - PlayerHeight/2),
		Width:     PlayerWidth,
		Height:    PlayerHeight,
		Speed:     PlayerSpeed,
		Direction: DirDown,
		Health:    NewHealthSystem(PlayerHearts),
		Inventory: NewInventory(),
	}
}

func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: float64(p.Width), H: float64(p.Height)}
}

// AdvanceAnimation steps the walk cycle while moving.
func (p *Player) AdvanceAnimation(now time.Duration) {
	if p.Moving && now-p.lastAnim > PlayerAnimInterval {
		p.AnimFrame = (p.AnimFrame + 1) % AnimFramesPerDir
		p.lastAnim = now
	}
}

// Slime is the only enemy type. IsChasing is the WANDER/CHASE state.
type Slime struct {
	ID        string
	X, Y      float64
	Width     int
	Height    int
	Speed     float64
	Direction Direction

	MoveCounter int
	AnimCounter int
	AnimFrame   int

	Health    HealthSystem
	IsChasing bool
}

func NewSlime(x, y float64, rng *rand.Rand) *Slime {
	return &Slime{
		ID:        utils.GenerateID(),
		X:         x,
		Y:         y,
		Width:     SlimeWidth,
		Height:    SlimeHeight,
		Speed:     SlimeSpeed,
		Direction: RandomDirection(rng),
		Health:    NewHealthSystem(SlimeHearts),
	}
}

func (s *Slime) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, W: float64(s.Width), H: float64(s.Height)}
}

// Bullet copies its stats from the firing weapon at creation.
type Bullet struct {
	X, Y      float64
	Direction Direction
	// Spread is rolled once per shot in [-cfg.Spread, cfg.Spread] and reused every frame.
	Spread float64
	Speed  float64
	Radius float64
	Color  color.RGBA
	Damage int
}

func NewBullet(x, y float64, dir Direction, cfg *WeaponConfig, rng *rand.Rand) *Bullet {
	spread := 0.0
	if cfg.Spread > 0 {
		spread = (rng.Float64()*2 - 1) * cfg.Spread
	}
	return &Bullet{
		X: x, Y: y,
		Direction: dir,
		Spread:    spread,
		Speed:     cfg.BulletSpeed,
		Radius:    cfg.BulletSize,
		Color:     cfg.BulletColor,
		Damage:    cfg.Damage,
	}
}

func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X - b.Radius, Y: b.Y - b.Radius, W: b.Radius * 2, H: b.Radius * 2}
}
