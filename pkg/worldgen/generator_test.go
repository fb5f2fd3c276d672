package worldgen

import (
	"math/rand"
	"os"
	"testing"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("error", "")
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	res := Generate(DefaultConfig(), domain.DefaultCatalog(), rand.New(rand.NewSource(42)))
	world := res.World

	if world.Width != domain.MapSize || world.Height != domain.MapSize {
		t.Errorf("map size %dx%d, want %dx%d", world.Width, world.Height, domain.MapSize, domain.MapSize)
	}

	wantTiles := domain.ChunksPerSide * domain.ChunksPerSide * domain.ChunkCells * domain.ChunkCells
	if len(world.Tiles) != wantTiles {
		t.Errorf("tiles = %d, want %d", len(world.Tiles), wantTiles)
	}

	for _, it := range res.Items {
		cell := domain.CellAt(int(it.X), int(it.Y))
		if world.IsWallCell(cell) {
			t.Errorf("item %s placed on wall %v", it.Kind, cell)
		}
		if int(it.X)-cell.X != domain.CellSize/2 || int(it.Y)-cell.Y != domain.CellSize/2 {
			t.Errorf("item at (%v, %v) not centred in %v", it.X, it.Y, cell)
		}
		if it.Kind == domain.ItemWeapon && it.Weapon == nil {
			t.Error("weapon pickup without weapon payload")
		}
	}

	for cell := range world.Decorations {
		if world.IsWallCell(cell) {
			t.Errorf("decoration on wall %v", cell)
		}
	}
}

func TestGenerate_ItemsAndDecorExclusive(t *testing.T) {
	res := Generate(DefaultConfig(), domain.DefaultCatalog(), rand.New(rand.NewSource(7)))

	for _, it := range res.Items {
		cell := domain.CellAt(int(it.X), int(it.Y))
		if _, ok := res.World.Decorations[cell]; ok {
			t.Errorf("cell %v has both an item and a decoration", cell)
		}
	}
}

func TestGenerate_ChunkDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SparseWeight, cfg.DenseWeight = 0, 1
	cfg.DenseOpen = 0

	res := Generate(cfg, domain.DefaultCatalog(), rand.New(rand.NewSource(1)))
	for cell, wall := range res.World.Tiles {
		if !wall {
			t.Fatalf("cell %v open in an all-dense map with zero open weight", cell)
		}
	}
	if len(res.Items) != 0 || len(res.World.Decorations) != 0 {
		t.Error("nothing should spawn on walls")
	}

	cfg.SparseWeight, cfg.DenseWeight = 1, 0
	cfg.SparseOpen = 100
	res = Generate(cfg, domain.DefaultCatalog(), rand.New(rand.NewSource(1)))
	for cell, wall := range res.World.Tiles {
		if wall {
			t.Fatalf("cell %v blocking in an all-open map", cell)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(DefaultConfig(), domain.DefaultCatalog(), rand.New(rand.NewSource(99)))
	b := Generate(DefaultConfig(), domain.DefaultCatalog(), rand.New(rand.NewSource(99)))

	if len(a.Items) != len(b.Items) || len(a.World.Decorations) != len(b.World.Decorations) {
		t.Fatal("same seed produced different worlds")
	}
	for cell, wall := range a.World.Tiles {
		if b.World.Tiles[cell] != wall {
			t.Fatalf("tile %v differs between runs", cell)
		}
	}
}
