// Package graphics is the ebiten backend for the render core: a Surface over
// *ebiten.Image and a texture loader.
package graphics

import (
	"image"
	"image/color"
	"math"

	"gridshot/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Texture is a GPU image handle usable by the render core.
type Texture struct {
	img  *ebiten.Image
	w, h int
}

func NewTexture(img *ebiten.Image) *Texture {
	b := img.Bounds()
	return &Texture{img: img, w: b.Dx(), h: b.Dy()}
}

func (t *Texture) Size() (int, int) { return t.w, t.h }

func (t *Texture) Image() *ebiten.Image { return t.img }

// Screen implements render.Surface on top of an ebiten image. The draw
// options are reused across calls.
type Screen struct {
	dst *ebiten.Image
	op  ebiten.DrawImageOptions
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

// Reset retargets the screen, typically at the start of Draw.
func (s *Screen) Reset(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Screen) VLine(x, y0, y1 int, c color.RGBA) {
	if y1 < y0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y0), 1, float32(y1-y0+1), c, false)
}

func (s *Screen) TexColumn(tex render.Texture, srcX, srcY, srcH float64, dstX, dstY, dstH int, tint color.RGBA) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || dstH <= 0 || srcH <= 0 {
		return
	}
	r, ok := columnRect(t.w, t.h, srcX, srcY, srcH)
	if !ok {
		return
	}
	sub := t.img.SubImage(r).(*ebiten.Image)

	scale := float64(dstH) / srcH
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(0, float64(r.Min.Y)-srcY)
	s.op.GeoM.Scale(1, scale)
	s.op.GeoM.Translate(float64(dstX), float64(dstY))
	s.op.ColorScale.Reset()
	s.op.ColorScale.ScaleWithColor(tint)
	s.dst.DrawImage(sub, &s.op)
}

// columnRect returns the whole-texel source rectangle covering the strip
// [srcY, srcY+srcH) of column srcX, clamped to the texture.
func columnRect(w, h int, srcX, srcY, srcH float64) (image.Rectangle, bool) {
	x := int(srcX)
	if x < 0 || x >= w {
		return image.Rectangle{}, false
	}
	y0 := max(int(math.Floor(srcY)), 0)
	y1 := min(int(math.Ceil(srcY+srcH)), h)
	if y1 <= y0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y0, x+1, y1), true
}
