// Package render draws the first-person view: per-column wall raycasting
// followed by depth-sorted billboard compositing. It is backend agnostic and
// talks to the screen only through Surface.
package render

import (
	"image/color"
	"math"

	"gridshot/internal/items"
	"gridshot/internal/monster"
	"gridshot/internal/world"
)

// Texture is an immutable image handle owned by the texture provider.
type Texture interface {
	Size() (w, h int)
}

// Surface is the drawing target for one frame.
type Surface interface {
	// FillRect fills a w×h rectangle with its top-left corner at (x,y).
	FillRect(x, y, w, h int, c color.RGBA)
	// VLine draws a one pixel wide column from y0 to y1 inclusive.
	VLine(x, y0, y1 int, c color.RGBA)
	// TexColumn stretches the 1×srcH texture strip at (srcX,srcY) onto the
	// one pixel wide column at dstX spanning dstH pixels from dstY,
	// multiplying it by tint.
	TexColumn(tex Texture, srcX, srcY, srcH float64, dstX, dstY, dstH int, tint color.RGBA)
}

// Colors used by the pipeline when no texture is available.
var (
	White     = color.RGBA{255, 255, 255, 255}
	Gray      = color.RGBA{130, 130, 130, 255}
	Brown     = color.RGBA{127, 106, 79, 255}
	LightGray = color.RGBA{200, 200, 200, 255}
	Yellow    = color.RGBA{253, 249, 0, 255}
	Gold      = color.RGBA{255, 203, 0, 255}
	FlashGlow = color.RGBA{255, 255, 0, 140}
)

// VisualKind tags the variant held by a Visual.
type VisualKind int

const (
	VisualColor VisualKind = iota
	VisualTexture
)

// Visual is either a flat color or a texture.
type Visual struct {
	Kind    VisualKind
	Color   color.RGBA
	Texture Texture
}

func Flat(c color.RGBA) Visual { return Visual{Kind: VisualColor, Color: c} }

func Textured(t Texture) Visual { return Visual{Kind: VisualTexture, Texture: t} }

// textureOr picks the texture when one is loaded and the flat color otherwise.
func textureOr(t Texture, c color.RGBA) Visual {
	if t == nil {
		return Flat(c)
	}
	return Textured(t)
}

// Viewer is the camera pose for a frame.
type Viewer struct {
	X, Y     float64
	Angle    float64
	FOV      float64 // radians
	ProjDist float64 // distance to the projection plane, in pixels
}

// NewViewer derives the projection distance from the field of view and the
// screen width.
func NewViewer(x, y, angle, fov float64, screenW int) Viewer {
	return Viewer{
		X:        x,
		Y:        y,
		Angle:    angle,
		FOV:      fov,
		ProjDist: (float64(screenW) / 2) / math.Tan(fov/2),
	}
}

// EnemyTextures holds the alive sprite and the death animation.
type EnemyTextures struct {
	Alive          Texture
	DeathFrames    []Texture
	DeathFrameTime float64
}

type ChestTextures struct {
	Closed Texture
	Opened Texture
}

// Textures are the lookup tables the pipeline draws with. Any entry may be
// missing; the pipeline falls back to flat colors.
type Textures struct {
	Walls   []Texture // wall id N uses Walls[N-1]
	Enemy   EnemyTextures
	Pickups map[string]Texture // keyed by items.Pickup.TextureKey
	Chest   ChestTextures
}

// Scene is the snapshot of the level drawn in one frame.
type Scene struct {
	Grid        world.Grid
	Viewer      Viewer
	Enemies     []*monster.Enemy
	Pickups     []items.Pickup
	Decorations []world.Decoration
	Chests      []world.Chest
}

// VisibleRange is the screen column span and depth of a living enemy's
// billboard this frame. Index refers to Scene.Enemies.
type VisibleRange struct {
	Index  int
	StartX int
	EndX   int
	Depth  float64
}

// Covers reports whether column x falls inside the range.
func (v VisibleRange) Covers(x int) bool {
	return v.StartX <= x && x <= v.EndX
}

// Frame is what the render pass hands to combat resolution. Its slices are
// owned by the Renderer and are only valid until the next Render call.
type Frame struct {
	Depth   []float64
	Visible []VisibleRange
}

// Center returns the crosshair column.
func (f Frame) Center() int {
	return len(f.Depth) / 2
}

// WallDepth returns the depth buffer value at column x, or +Inf outside the
// screen.
func (f Frame) WallDepth(x int) float64 {
	if x < 0 || x >= len(f.Depth) {
		return math.Inf(1)
	}
	return f.Depth[x]
}
