package domain

import "time"

// World geometry, in pixels unless noted.
const (
	CellSize       = 100
	ChunkCells     = 10 // cells per chunk side
	ChunkSize      = ChunkCells * CellSize
	ChunksPerSide  = 10
	MapSize        = ChunksPerSide * ChunkSize
	WallZoneFactor = 0.3 // blocking band is the top 30% of a wall tile
)

// Screen
const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	TicksPerSec  = 60
)

// Player
const (
	PlayerWidth  = 60
	PlayerHeight = 80
	PlayerSpeed  = 5
	PlayerHearts = 5

	PlayerAnimInterval = 150 * time.Millisecond
)

// Slime
const (
	SlimeWidth  = 60
	SlimeHeight = 80
	SlimeSpeed  = 2
	SlimeHearts = 3

	DetectionRadius  = 3 * ChunkSize
	ChaseStopRadius  = 50
	WanderTurnTicks  = 100
	WanderStepTicks  = 5
	SlimeAnimTicks   = 15
	AnimFramesPerDir = 4
)

// Items & inventory
const (
	InventorySlots = 5
	ItemSize       = 30
	AmmoRefill     = 10
	PickupRadius   = 50
	AmmoPerClip    = 5 // MaxAmmo = AmmoCapacity * AmmoPerClip
)

// Combat
const (
	MuzzleOffset   = 20
	ContactDamage  = 1
	SpreadWobble   = 0.1 // fraction of bullet speed applied as per-frame spread drift
	SpreadAimScale = 10  // degrees of muzzle rotation per unit of weapon spread
)

// Difficulty defaults
const (
	DefaultSpawnInterval  = 2000 * time.Millisecond
	DefaultDamageCooldown = 1000 * time.Millisecond
	DefaultMaxSlimes      = 100
	DefaultSpawnRadius    = 500
	GameOverDisplay       = 5 * time.Second
)
