package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"gridshot/internal/config"
	"gridshot/internal/render"
	"gridshot/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const placeholderSize = 64

// Loader decodes image files into textures and caches them by path.
type Loader struct {
	cache map[string]*Texture
	log   *logrus.Entry
}

func NewLoader() *Loader {
	return &Loader{
		cache: make(map[string]*Texture),
		log:   logger.Component("graphics"),
	}
}

// LoadTexture decodes the image at path.
func (l *Loader) LoadTexture(path string) (*Texture, error) {
	if t, ok := l.cache[path]; ok {
		return t, nil
	}
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	t := NewTexture(ebiten.NewImageFromImage(img))
	l.cache[path] = t
	return t, nil
}

// Load builds the render lookup tables from the asset config. Wall textures
// that fail to load are replaced with a generated placeholder so wall ids
// keep their slot; when none load the table stays empty and walls draw flat.
// Sprite textures that fail to load are left out and draw as flat colors.
func (l *Loader) Load(assets config.AssetsConfig) render.Textures {
	var tex render.Textures

	loaded := 0
	walls := make([]render.Texture, len(assets.WallTextures))
	for i, path := range assets.WallTextures {
		t, err := l.LoadTexture(path)
		if err != nil {
			l.log.WithError(err).WithField("path", path).Warn("wall texture missing, using placeholder")
			walls[i] = NewTexture(ebiten.NewImageFromImage(placeholderImage(i + 1)))
			continue
		}
		walls[i] = t
		loaded++
	}
	if loaded > 0 {
		tex.Walls = walls
	}

	tex.Enemy.Alive = l.optional(assets.EnemyAlive)
	for _, path := range assets.EnemyDeath {
		if t := l.optional(path); t != nil {
			tex.Enemy.DeathFrames = append(tex.Enemy.DeathFrames, t)
		}
	}

	tex.Pickups = make(map[string]render.Texture, len(assets.Pickups))
	for key, path := range assets.Pickups {
		if t := l.optional(path); t != nil {
			tex.Pickups[key] = t
		}
	}

	tex.Chest.Closed = l.optional(assets.ChestClosed)
	tex.Chest.Opened = l.optional(assets.ChestOpened)

	l.log.WithFields(logrus.Fields{
		"walls":   loaded,
		"pickups": len(tex.Pickups),
		"death":   len(tex.Enemy.DeathFrames),
	}).Info("textures loaded")
	return tex
}

// optional loads a sprite texture, returning a nil interface when the path is
// empty or unreadable.
func (l *Loader) optional(path string) render.Texture {
	if path == "" {
		return nil
	}
	t, err := l.LoadTexture(path)
	if err != nil {
		l.log.WithError(err).WithField("path", path).Debug("sprite texture missing, drawing flat")
		return nil
	}
	return t
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return img, nil
}

// placeholderImage is a two-tone checkerboard tinted per wall id, with a
// darker mortar line along the top and left edges of each tile.
func placeholderImage(id int) *image.RGBA {
	base := WallColor(id)
	dark := color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255}
	mortar := color.RGBA{base.R / 4, base.G / 4, base.B / 4, 255}

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	const tile = placeholderSize / 4
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			c := base
			if (x/tile+y/tile)%2 == 1 {
				c = dark
			}
			if x%tile == 0 || y%tile == 0 {
				c = mortar
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var placeholderPalette = []color.RGBA{
	{180, 90, 70, 255},
	{140, 140, 150, 255},
	{90, 130, 170, 255},
	{150, 120, 60, 255},
	{90, 150, 90, 255},
}

// WallColor is the flat color standing in for wall id when no texture is loaded.
func WallColor(id int) color.RGBA {
	if id < 1 {
		id = 1
	}
	return placeholderPalette[(id-1)%len(placeholderPalette)]
}
