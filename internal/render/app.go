// Package render draws a running engine.Game with ebiten and feeds it input.
package render

import (
	"errors"
	"fmt"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/internal/engine"
	"github.com/1icebest1/shooter/internal/hud"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// App adapts engine.Game to ebiten.Game.
type App struct {
	game   *engine.Game
	tex    *Textures
	layout hud.Layout
}

func NewApp(game *engine.Game, tex *Textures, width, height int) *App {
	return &App{
		game:   game,
		tex:    tex,
		layout: hud.NewLayout(width, height),
	}
}

func (a *App) Update() error {
	if quitRequested() {
		logger.Log.WithField("component", "render").Info("Quit requested.")
		return ebiten.Termination
	}

	err := a.game.Update(pollInput(a.layout))
	if errors.Is(err, engine.ErrSessionOver) {
		sum := a.game.Summary()
		logger.Log.WithFields(logrus.Fields{
			"component": "render",
			"survived":  engine.FormatSurvival(sum.Survived),
			"kills":     sum.Kills,
		}).Info("Session ended.")
		return ebiten.Termination
	}
	return err
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	a.drawTiles(screen)
	a.drawItems(screen)
	a.drawBullets(screen)
	if !a.game.Over() {
		a.drawSlimes(screen)
		a.drawPlayer(screen)
	}
	a.drawHUD(screen)
	a.drawFeed(screen)

	if a.game.Over() {
		a.drawGameOver(screen)
	}
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.layout.ScreenW, a.layout.ScreenH
}

// Run opens the window and blocks until the session ends or the window closes.
func Run(cfg engine.Config, game *engine.Game) error {
	ebiten.SetTPS(domain.TicksPerSec)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowClosingHandled(true)

	app := NewApp(game, NewTextures(cfg.AssetsDir), cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
