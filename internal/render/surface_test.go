package render

import (
	"image/color"

	"gridshot/internal/config"
	"gridshot/internal/world"
)

// fakeTexture is a sized stand-in for a GPU texture.
type fakeTexture struct {
	name string
	w, h int
}

func (f *fakeTexture) Size() (int, int) { return f.w, f.h }

type lineOp struct {
	x, y0, y1 int
	c         color.RGBA
}

type texOp struct {
	tex              Texture
	srcX, srcY, srcH float64
	x, y, h          int
	tint             color.RGBA
}

// recordingSurface captures every draw call in order.
type recordingSurface struct {
	rects int
	ops   []any
}

func (s *recordingSurface) FillRect(x, y, w, h int, c color.RGBA) { s.rects++ }

func (s *recordingSurface) VLine(x, y0, y1 int, c color.RGBA) {
	s.ops = append(s.ops, lineOp{x, y0, y1, c})
}

func (s *recordingSurface) TexColumn(tex Texture, srcX, srcY, srcH float64, dstX, dstY, dstH int, tint color.RGBA) {
	s.ops = append(s.ops, texOp{tex, srcX, srcY, srcH, dstX, dstY, dstH, tint})
}

func (s *recordingSurface) linesOf(c color.RGBA) []lineOp {
	var out []lineOp
	for _, op := range s.ops {
		if l, ok := op.(lineOp); ok && l.c == c {
			out = append(out, l)
		}
	}
	return out
}

func (s *recordingSurface) texOpsOf(tex Texture) []texOp {
	var out []texOp
	for _, op := range s.ops {
		if t, ok := op.(texOp); ok && t.tex == tex {
			out = append(out, t)
		}
	}
	return out
}

// openGrid is an unbounded empty world, used to exercise the step bound.
type openGrid struct{ w, h int }

func (g openGrid) Width() int      { return g.w }
func (g openGrid) Height() int     { return g.h }
func (g openGrid) At(x, y int) int { return 0 }

// roomGrid builds a w×h room with border walls plus the given interior cells.
func roomGrid(w, h int, walls map[[2]int]int) *world.TileGrid {
	cells := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[y*w+x] = 1
			}
		}
	}
	for k, id := range walls {
		cells[k[1]*w+k[0]] = id
	}
	return world.NewGrid(w, h, cells)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Display.ScreenWidth = 320
	cfg.Display.ScreenHeight = 200
	return cfg
}
