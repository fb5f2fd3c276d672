package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/internal/engine"
	"github.com/1icebest1/shooter/internal/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	debugCharW = 6
	debugLineH = 16

	slimeHeartSize = 18
	slimeHeartStep = 20

	feedMaxAge = 4 * time.Second
)

var (
	skyColor      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	panelColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	slotColor     = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	selectedColor = color.RGBA{R: 200, G: 200, B: 0, A: 255}
	dimColor      = color.RGBA{A: 128}
	boxColor      = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	boxBorder     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

func (a *App) drawTiles(screen *ebiten.Image) {
	cam := a.game.Camera
	w := a.game.World

	x0 := max(0, int(math.Floor(cam.X/domain.CellSize))*domain.CellSize)
	y0 := max(0, int(math.Floor(cam.Y/domain.CellSize))*domain.CellSize)
	x1 := min(w.Width, int(cam.X)+cam.Width+domain.CellSize)
	y1 := min(w.Height, int(cam.Y)+cam.Height+domain.CellSize)

	for y := y0; y < y1; y += domain.CellSize {
		for x := x0; x < x1; x += domain.CellSize {
			c := domain.Cell{X: x, Y: y}
			key := "grass1"
			if w.IsWallCell(c) {
				key = "grass2"
			}
			sx, sy := cam.Apply(float64(x), float64(y))
			drawScaled(screen, a.tex.Get(key, domain.CellSize, domain.CellSize), sx, sy, domain.CellSize, domain.CellSize)

			if d, ok := w.Decorations[c]; ok {
				dw, dh := decorSize(d)
				dx, dy := cam.Apply(float64(x+domain.CellSize/2-15), float64(y+domain.CellSize-40))
				drawScaled(screen, a.tex.Get(d.String(), dw, dh), dx, dy, float64(dw), float64(dh))
			}
		}
	}
}

func decorSize(d domain.DecorationKind) (int, int) {
	if d == domain.DecorRock {
		return 50, 50
	}
	return 40, 30
}

func (a *App) drawItems(screen *ebiten.Image) {
	cam := a.game.Camera
	for _, it := range a.game.Items {
		if !cam.Visible(it.X, it.Y, float64(it.Width), float64(it.Height), 0) {
			continue
		}
		sx, sy := cam.Apply(it.X, it.Y)
		drawScaled(screen, a.tex.Get(it.Texture, it.Width, it.Height), sx, sy, float64(it.Width), float64(it.Height))
	}
}

func (a *App) drawBullets(screen *ebiten.Image) {
	cam := a.game.Camera
	for _, b := range a.game.Bullets {
		sx, sy := cam.Apply(math.Trunc(b.X), math.Trunc(b.Y))
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(b.Radius), b.Color, true)
	}
}

func (a *App) drawSlimes(screen *ebiten.Image) {
	cam := a.game.Camera
	heart := a.tex.Get("heart", hud.HeartSize, hud.HeartSize)
	for _, s := range a.game.Slimes {
		if !cam.Visible(s.X, s.Y, float64(s.Width), float64(s.Height), domain.CellSize) {
			continue
		}
		key := fmt.Sprintf("slime_%s_%d", s.Direction, s.AnimFrame)
		sx, sy := cam.Apply(s.X, s.Y)
		drawScaled(screen, a.tex.Get(key, s.Width, s.Height), sx, sy, float64(s.Width), float64(s.Height))

		for i := 0; i < s.Health.CurrentHearts; i++ {
			hx, hy := cam.Apply(s.X+float64(i*slimeHeartStep)-15, s.Y-30)
			drawScaled(screen, heart, hx, hy, slimeHeartSize, slimeHeartSize)
		}
	}
}

func (a *App) drawPlayer(screen *ebiten.Image) {
	p := a.game.Player
	key := fmt.Sprintf("player_%s_%d", p.Direction, p.AnimFrame)
	sx, sy := a.game.Camera.Apply(p.X, p.Y)
	drawScaled(screen, a.tex.Get(key, p.Width, p.Height), sx, sy, float64(p.Width), float64(p.Height))
}

func (a *App) drawHUD(screen *ebiten.Image) {
	l := a.layout
	p := a.game.Player

	heart := a.tex.Get("heart", hud.HeartSize, hud.HeartSize)
	for i := 0; i < p.Health.CurrentHearts; i++ {
		r := l.Heart(i)
		drawScaled(screen, heart, r.X, r.Y, r.W, r.H)
	}

	fillRect(screen, l.Panel(), panelColor)
	inv := p.Inventory
	for i, it := range inv.Slots {
		r := l.Slot(i)
		c := slotColor
		if i == inv.Selected {
			c = selectedColor
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, c, false)
		if it == nil {
			continue
		}

		if it.Kind == domain.ItemWeapon && it.Weapon != nil {
			pad := float64(hud.SlotSize-hud.WeaponIconSize) / 2
			drawScaled(screen, a.tex.Get(it.Texture, hud.WeaponIconSize, hud.WeaponIconSize),
				r.X+pad, r.Y+pad, hud.WeaponIconSize, hud.WeaponIconSize)
			ebitenutil.DebugPrintAt(screen, fmt.Sprint(it.Weapon.CurrentAmmo), int(r.X)+30, int(r.Y)+34)
			continue
		}
		pad := float64(hud.SlotSize-hud.ItemIconSize) / 2
		drawScaled(screen, a.tex.Get(it.Texture, hud.ItemIconSize, hud.ItemIconSize),
			r.X+pad, r.Y+pad, hud.ItemIconSize, hud.ItemIconSize)
	}

	status := fmt.Sprintf("%s  Kills: %d", engine.FormatSurvival(a.game.Elapsed()), a.game.Kills)
	ebitenutil.DebugPrintAt(screen, status, l.ScreenW-len(status)*debugCharW-10, 10)
}

func (a *App) drawFeed(screen *ebiten.Image) {
	x, y := a.layout.FeedOrigin()
	for _, e := range a.game.RecentLogs(feedMaxAge) {
		ebitenutil.DebugPrintAt(screen, e.Text, x, y)
		y += debugLineH
	}
}

func (a *App) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(a.layout.ScreenW), float32(a.layout.ScreenH), dimColor, false)

	box := a.layout.GameOverBox()
	fillRect(screen, box, boxColor)
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 3, boxBorder, false)

	sum := a.game.Summary()
	lines := []string{
		"Game Over! Player has died.",
		"Time Survived: " + engine.FormatSurvival(sum.Survived),
		fmt.Sprintf("Slimes Killed: %d", sum.Kills),
	}
	y := int(box.Y) + (int(box.H)-len(lines)*debugLineH)/2
	for _, line := range lines {
		x := int(box.X) + (int(box.W)-len(line)*debugCharW)/2
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += debugLineH
	}
}

func fillRect(dst *ebiten.Image, r domain.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
