package game

import (
	"gridshot/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

// minFPS is the frame rate below which a performance warning is logged
const minFPS = 30

// Update implements ebiten.Game. The first-person view is rendered here,
// into an offscreen image, because combat needs the frame's depth buffer
// before enemies move.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	frameTimer := g.monitor.StartFrame()
	defer frameTimer.EndFrame()

	if g.view == nil {
		g.view = ebiten.NewImage(g.config.GetScreenWidth(), g.config.GetScreenHeight())
		g.screen = graphics.NewScreen(g.view)
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.Step(dt, g.input.Read(), g.screen)
	if g.feedback != nil {
		g.feedback.Update()
	}
	g.checkPerformance()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	best, hasBest := g.records.Best()
	switch g.gameState {
	case StateMenu:
		g.hud.DrawTitle(screen, best, hasBest)
	case StatePlaying:
		screen.DrawImage(g.view, nil)
		g.hud.Draw(screen, g.hudView())
	case StateVictory:
		g.hud.DrawVictory(screen, g.elapsed, g.Kills(), g.lastRank, best, hasBest)
	case StateDead:
		screen.DrawImage(g.view, nil)
		g.hud.DrawDeath(screen, g.elapsed, g.Kills())
	}
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

func (g *Game) hudView() hudView {
	return hudView{
		Player:      g.player,
		Grid:        g.level.Grid,
		Elapsed:     g.elapsed,
		EnemiesLeft: g.level.EnemiesLeft(),
		Kills:       g.Kills(),
		Metrics:     g.monitor.GetCurrentMetrics(),
	}
}
