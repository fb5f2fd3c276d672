package systems

import (
	"testing"

	"github.com/1icebest1/shooter/internal/domain"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name    string
		intent  MoveIntent
		wantDX  float64
		wantDY  float64
		wantDir domain.Direction
	}{
		{"right", MoveIntent{Right: true}, 5, 0, domain.DirRight},
		{"left", MoveIntent{Left: true}, -5, 0, domain.DirLeft},
		{"up", MoveIntent{Up: true}, 0, -5, domain.DirUp},
		{"diagonal facing follows vertical", MoveIntent{Right: true, Down: true}, 5, 5, domain.DirDown},
		{"opposite keys cancel", MoveIntent{Left: true, Right: true}, 0, 0, domain.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := openWorld()
			p := playerAt(2000, 2000)
			x0, y0 := p.X, p.Y

			res := MovePlayer(p, tt.intent, w)

			if !res.HasMoved || res.IsWall {
				t.Errorf("result = %+v", res)
			}
			if p.X-x0 != tt.wantDX || p.Y-y0 != tt.wantDY {
				t.Errorf("delta = (%v, %v), want (%v, %v)", p.X-x0, p.Y-y0, tt.wantDX, tt.wantDY)
			}
			if p.Direction != tt.wantDir {
				t.Errorf("direction = %v, want %v", p.Direction, tt.wantDir)
			}
		})
	}
}

func TestMovePlayer_WallRollback(t *testing.T) {
	w := openWorld()
	w.SetWall(domain.Cell{X: 0, Y: 0}, true)

	p := domain.NewPlayer(domain.MapSize, domain.MapSize)
	p.X, p.Y = 10, 31 // just below the wall zone of cell (0,0)

	res := MovePlayer(p, MoveIntent{Up: true}, w)
	if !res.IsWall {
		t.Error("expected wall hit")
	}
	if p.X != 10 || p.Y != 31 {
		t.Errorf("player at (%v, %v), want rollback to (10, 31)", p.X, p.Y)
	}

	p.Y = 40
	MovePlayer(p, MoveIntent{Up: true}, w)
	if p.Y != 35 {
		t.Errorf("y = %v, want 35 (lower part of wall tile is walkable)", p.Y)
	}
}

func TestMovePlayer_ClampedToMap(t *testing.T) {
	w := openWorld()
	p := domain.NewPlayer(domain.MapSize, domain.MapSize)
	p.X, p.Y = 2, float64(domain.MapSize-p.Height-1)

	MovePlayer(p, MoveIntent{Left: true, Down: true}, w)
	if p.X != 0 || p.Y != float64(domain.MapSize-p.Height) {
		t.Errorf("player at (%v, %v), want clamped to map edge", p.X, p.Y)
	}

	res := MovePlayer(p, MoveIntent{}, w)
	if res.HasMoved || p.Moving {
		t.Error("idle frame reported movement")
	}
}
