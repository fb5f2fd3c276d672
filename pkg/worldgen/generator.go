package worldgen

import (
	"math/rand"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Config holds generation weights. Zero value is not useful; start from DefaultConfig.
type Config struct {
	Chunks     int // chunks per map side
	ChunkCells int // cells per chunk side
	CellSize   int

	// Chunk type weights.
	SparseWeight int
	DenseWeight  int

	// Open-tile weight out of 100 for each chunk type.
	SparseOpen int
	DenseOpen  int

	// Per open tile, evaluated in order; the first two share one roll.
	WeaponChance float64
	AmmoChance   float64
	DecorChance  float64
}

func DefaultConfig() Config {
	return Config{
		Chunks:       domain.ChunksPerSide,
		ChunkCells:   domain.ChunkCells,
		CellSize:     domain.CellSize,
		SparseWeight: 95,
		DenseWeight:  5,
		SparseOpen:   95,
		DenseOpen:    1,
		WeaponChance: 0.005,
		AmmoChance:   0.03,
		DecorChance:  0.1,
	}
}

// Result is everything created at startup.
type Result struct {
	World *domain.GameWorld
	Items []*domain.Item
}

// ChunkKind is the density class of a chunk.
type ChunkKind uint8

const (
	ChunkSparse ChunkKind = iota
	ChunkDense
)

// Generate fills the map chunk by chunk. Pickups are centred in their tile.
func Generate(cfg Config, catalog domain.WeaponCatalog, rng *rand.Rand) *Result {
	side := cfg.Chunks * cfg.ChunkCells * cfg.CellSize
	world := domain.NewGameWorld(side, side)
	weaponKeys := catalog.Keys()

	var items []*domain.Item
	var dense, walls, weapons, ammo int

	for chunkX := 0; chunkX < cfg.Chunks; chunkX++ {
		for chunkY := 0; chunkY < cfg.Chunks; chunkY++ {
			kind := rollChunk(cfg, rng)
			openWeight := cfg.SparseOpen
			if kind == ChunkDense {
				openWeight = cfg.DenseOpen
				dense++
			}

			for cx := 0; cx < cfg.ChunkCells; cx++ {
				for cy := 0; cy < cfg.ChunkCells; cy++ {
					cell := domain.Cell{
						X: (chunkX*cfg.ChunkCells + cx) * cfg.CellSize,
						Y: (chunkY*cfg.ChunkCells + cy) * cfg.CellSize,
					}
					blocking := rng.Intn(100) >= openWeight
					world.SetWall(cell, blocking)
					if blocking {
						walls++
						continue
					}

					x := float64(cell.X + cfg.CellSize/2)
					y := float64(cell.Y + cfg.CellSize/2)

					roll := rng.Float64()
					switch {
					case roll < cfg.WeaponChance && len(weaponKeys) > 0:
						key := weaponKeys[rng.Intn(len(weaponKeys))]
						items = append(items, domain.NewWeaponItem(x, y, domain.NewWeapon(catalog[key])))
						weapons++
					case roll < cfg.AmmoChance:
						items = append(items, domain.NewAmmoItem(x, y))
						ammo++
					case rng.Float64() < cfg.DecorChance:
						world.Decorations[cell] = domain.DecorationKind(rng.Intn(2))
					}
				}
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":    "worldgen",
		"size_px":      side,
		"dense_chunks": dense,
		"walls":        walls,
		"weapons":      weapons,
		"ammo":         ammo,
		"decorations":  len(world.Decorations),
	}).Info("World generated.")

	return &Result{World: world, Items: items}
}

func rollChunk(cfg Config, rng *rand.Rand) ChunkKind {
	total := cfg.SparseWeight + cfg.DenseWeight
	if total <= 0 || rng.Intn(total) < cfg.SparseWeight {
		return ChunkSparse
	}
	return ChunkDense
}
