package main

import (
	"errors"

	"gridshot/internal/audio"
	"gridshot/internal/config"
	"gridshot/internal/game"
	"gridshot/internal/graphics"
	"gridshot/internal/world"
	"gridshot/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger.Init()

	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	md, err := world.NewMapLoader().LoadMap(cfg.Assets.MapFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load map")
	}

	textures := graphics.NewLoader().Load(cfg.Assets)
	feedback := audio.NewFeedback(cfg.Audio)

	records, err := game.OpenRecordStore("gridshot")
	if err != nil {
		logger.Log.WithError(err).Warn("records will not be saved")
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)

	g := game.NewGame(cfg, md, game.Options{
		Textures: textures,
		Feedback: feedback,
		Records:  records,
	})
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("game exited with error")
	}
}
