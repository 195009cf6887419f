package game

import (
	"image/color"
	"math"

	"gridshot/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const minimapMargin = 10

var (
	minimapSmall = [2]int{180, 140}
	minimapLarge = [2]int{420, 320}

	minimapBorder = color.RGBA{130, 130, 130, 255}
	minimapBack   = color.RGBA{0, 0, 0, 180}
	minimapWall   = color.RGBA{200, 200, 200, 255}
	minimapArrow  = color.RGBA{253, 249, 0, 255}
)

// Minimap is the top-right overview of the wall grid with the player arrow.
type Minimap struct {
	Expanded bool
	screenW  int
}

func NewMinimap(screenW int) Minimap {
	return Minimap{screenW: screenW}
}

func (m *Minimap) Toggle() { m.Expanded = !m.Expanded }

// Bounds returns the panel rectangle for the current size.
func (m Minimap) Bounds() (x, y, w, h int) {
	size := minimapSmall
	if m.Expanded {
		size = minimapLarge
	}
	return m.screenW - minimapMargin - size[0], minimapMargin, size[0], size[1]
}

// layout fits a gw×gh grid into the panel keeping square cells, centered.
func (m Minimap) layout(gw, gh int) (tile, ox, oy float64) {
	x, y, w, h := m.Bounds()
	if gw <= 0 || gh <= 0 {
		return 0, float64(x), float64(y)
	}
	tile = math.Min(float64(w)/float64(gw), float64(h)/float64(gh))
	ox = float64(x) + (float64(w)-tile*float64(gw))/2
	oy = float64(y) + (float64(h)-tile*float64(gh))/2
	return tile, ox, oy
}

func (m Minimap) Draw(dst *ebiten.Image, g world.Grid, px, py, angle float64) {
	x, y, w, h := m.Bounds()
	vector.DrawFilledRect(dst, float32(x-2), float32(y-2), float32(w+4), float32(h+4), minimapBorder, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), minimapBack, false)

	tile, ox, oy := m.layout(g.Width(), g.Height())
	if tile <= 0 {
		return
	}
	cell := float32(math.Max(tile, 1))
	for my := 0; my < g.Height(); my++ {
		for mx := 0; mx < g.Width(); mx++ {
			if world.IsSolid(g, mx, my) {
				vector.DrawFilledRect(dst, float32(ox+float64(mx)*tile), float32(oy+float64(my)*tile), cell, cell, minimapWall, false)
			}
		}
	}

	cx := ox + px*tile
	cy := oy + py*tile
	head := clampFloat(tile*0.8, 6, 18)
	half := clampFloat(tile*0.35, 3, 10)
	back := clampFloat(tile*0.35, 3, 10)
	dx, dy := math.Cos(angle), math.Sin(angle)
	nx, ny := -dy, dx

	tipX, tipY := cx+dx*head, cy+dy*head
	bx, by := cx-dx*back, cy-dy*back
	p1x, p1y := bx+nx*half, by+ny*half
	p2x, p2y := bx-nx*half, by-ny*half
	vector.StrokeLine(dst, float32(p1x), float32(p1y), float32(tipX), float32(tipY), 2, minimapArrow, true)
	vector.StrokeLine(dst, float32(p2x), float32(p2y), float32(tipX), float32(tipY), 2, minimapArrow, true)
	vector.StrokeLine(dst, float32(p1x), float32(p1y), float32(p2x), float32(p2y), 2, minimapArrow, true)

	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, color.White, false)
	label := "M: expand"
	if m.Expanded {
		label = "M: shrink"
	}
	drawText(dst, label, x+8, y+18, 1, color.White)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
