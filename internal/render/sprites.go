package render

import (
	"image/color"
	"math"
	"sort"

	"gridshot/internal/config"
	"gridshot/internal/monster"
	"gridshot/internal/world"
)

// minForward discards billboards at or behind the camera plane.
const minForward = 1e-4

// projectedSprite is a billboard queued for compositing.
type projectedSprite struct {
	StartX, EndX int
	StartY, EndY int
	Depth        float64
	Visual       Visual
	Glow         color.RGBA
	HasGlow      bool
	EnemyIndex   int // -1 unless the sprite is a hit-testable enemy
}

// camera holds the inverse camera transform for one frame.
type camera struct {
	dirX, dirY     float64
	planeX, planeY float64
	invDet         float64
	halfW          float64
	projDist       float64
	w, h           int
}

func newCamera(v Viewer, w, h int) camera {
	dirX, dirY := math.Cos(v.Angle), math.Sin(v.Angle)
	tanHalf := math.Tan(v.FOV / 2)
	c := camera{
		dirX:     dirX,
		dirY:     dirY,
		planeX:   -dirY * tanHalf,
		planeY:   dirX * tanHalf,
		halfW:    float64(w) / 2,
		projDist: v.ProjDist,
		w:        w,
		h:        h,
	}
	c.invDet = 1 / (c.planeX*c.dirY - c.dirX*c.planeY)
	return c
}

// project returns the lateral and forward camera-space coordinates of a
// point given relative to the viewer.
func (c camera) project(relX, relY float64) (lateral, forward float64) {
	lateral = c.invDet * (c.dirY*relX - c.dirX*relY)
	forward = c.invDet * (-c.planeY*relX + c.planeX*relY)
	return lateral, forward
}

func (c camera) screenX(lateral, forward float64) int {
	return int(c.halfW * (1 + lateral/forward))
}

// columns clamps a billboard of width w centered at sx to the screen.
func (c camera) columns(sx, w int) (int, int) {
	return max(sx-w/2, 0), min(sx+w/2, c.w-1)
}

// standing sizes a full-height billboard centered on the horizon.
func (c camera) standing(lateral, forward float64) (sx, ex, sy, ey int) {
	h := int(c.projDist / forward)
	sy = max(c.h/2-h/2, 0)
	ey = min(c.h/2+h/2, c.h-1)
	sx, ex = c.columns(c.screenX(lateral, forward), h)
	return sx, ex, sy, ey
}

// grounded sizes a scaled billboard whose base sits on the floor line at
// its depth.
func (c camera) grounded(lateral, forward float64, sc config.SpriteScale) (sx, ex, sy, ey int) {
	physH := int(c.projDist / forward)
	maxH := int(float64(c.h) * sc.MaxFrac)
	size := clampInt(int(float64(physH)*sc.Scale), 2, maxH)

	base := min(c.h/2+physH/2, c.h-1)
	sy = max(base-size, 0)
	ey = base
	sx, ex = c.columns(c.screenX(lateral, forward), size)
	return sx, ex, sy, ey
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (r *Renderer) push(ps projectedSprite) {
	if ps.EndX >= ps.StartX && ps.EndY > ps.StartY {
		r.queue = append(r.queue, ps)
	}
}

// queueSprites projects every point entity of the scene.
func (r *Renderer) queueSprites(sc *Scene, c camera) {
	v := sc.Viewer

	for i, e := range sc.Enemies {
		lat, fwd := c.project(e.X-v.X, e.Y-v.Y)
		if fwd <= minForward {
			continue
		}
		sx, ex, sy, ey := c.standing(lat, fwd)
		ps := projectedSprite{StartX: sx, EndX: ex, StartY: sy, EndY: ey, Depth: fwd, EnemyIndex: -1}
		ps.Visual, ps.Glow, ps.HasGlow = r.enemyVisual(e)
		if e.Alive() {
			ps.EnemyIndex = i
		}
		r.push(ps)
	}

	for _, p := range sc.Pickups {
		lat, fwd := c.project(p.X-v.X, p.Y-v.Y)
		if fwd <= minForward || fwd < r.sprites.Pickup.MinDepth {
			continue
		}
		sx, ex, sy, ey := c.grounded(lat, fwd, r.sprites.Pickup)
		ps := projectedSprite{StartX: sx, EndX: ex, StartY: sy, EndY: ey, Depth: fwd, EnemyIndex: -1}
		ps.Visual = textureOr(r.textures.Pickups[p.TextureKey()], p.Color())
		ps.Glow, ps.HasGlow = p.Glow()
		r.push(ps)
	}

	for _, d := range sc.Decorations {
		lat, fwd := c.project(d.X-v.X, d.Y-v.Y)
		if fwd <= minForward {
			continue
		}
		scale, col := r.sprites.DecoGhost, LightGray
		if d.Kind == world.DecoBlocking {
			scale, col = r.sprites.DecoBlocking, Brown
		}
		sx, ex, sy, ey := c.grounded(lat, fwd, scale)
		r.push(projectedSprite{StartX: sx, EndX: ex, StartY: sy, EndY: ey, Depth: fwd, Visual: Flat(col), EnemyIndex: -1})
	}

	for _, ch := range sc.Chests {
		lat, fwd := c.project(ch.X-v.X, ch.Y-v.Y)
		if fwd <= minForward {
			continue
		}
		sx, ex, sy, ey := c.grounded(lat, fwd, r.sprites.Chest)
		vis := textureOr(r.textures.Chest.Closed, Gold)
		if ch.Opened {
			vis = textureOr(r.textures.Chest.Opened, Yellow)
		}
		r.push(projectedSprite{StartX: sx, EndX: ex, StartY: sy, EndY: ey, Depth: fwd, Visual: vis, EnemyIndex: -1})
	}
}

// enemyVisual picks the death frame for corpses and the alive sprite (with
// a flash glow after a hit or shot) otherwise.
func (r *Renderer) enemyVisual(e *monster.Enemy) (Visual, color.RGBA, bool) {
	et := r.textures.Enemy
	if e.State == monster.StateDead {
		if len(et.DeathFrames) == 0 {
			return Flat(monster.ColorDead), color.RGBA{}, false
		}
		return Textured(et.DeathFrames[DeathFrame(e.DeathElapsed, et.DeathFrameTime, len(et.DeathFrames))]), color.RGBA{}, false
	}

	vis := textureOr(et.Alive, e.Color())
	if e.FlashTimer > 0 {
		return vis, FlashGlow, true
	}
	return vis, color.RGBA{}, false
}

// DeathFrame returns the animation frame for a corpse that has been dead
// for elapsed seconds. The last frame holds forever.
func DeathFrame(elapsed, frameTime float64, frames int) int {
	if frames <= 0 {
		return 0
	}
	ft := max(frameTime, 1e-4)
	idx := math.Floor(elapsed / ft)
	if idx < 0 {
		return 0
	}
	if idx >= float64(frames-1) {
		return frames - 1
	}
	return int(idx)
}

// composite draws the queued billboards far to near, column by column,
// skipping columns where a wall is closer, then records the visible ranges
// of living enemies.
func (r *Renderer) composite(s Surface) {
	sort.SliceStable(r.queue, func(i, j int) bool {
		return r.queue[i].Depth > r.queue[j].Depth
	})

	for i := range r.queue {
		ps := &r.queue[i]
		switch ps.Visual.Kind {
		case VisualColor:
			for x := ps.StartX; x <= ps.EndX; x++ {
				if x < len(r.depth) && ps.Depth < r.depth[x] {
					s.VLine(x, ps.StartY, ps.EndY, ps.Visual.Color)
				}
			}
		case VisualTexture:
			r.drawTextured(s, ps)
		}
	}

	for _, ps := range r.queue {
		if ps.EnemyIndex >= 0 {
			r.visible = append(r.visible, VisibleRange{
				Index:  ps.EnemyIndex,
				StartX: ps.StartX,
				EndX:   ps.EndX,
				Depth:  ps.Depth,
			})
		}
	}
}

func (r *Renderer) drawTextured(s Surface, ps *projectedSprite) {
	tex := ps.Visual.Texture
	tw, th := tex.Size()
	spriteW := float64(ps.EndX - ps.StartX + 1)
	visibleH := ps.EndY - ps.StartY + 1

	for x := ps.StartX; x <= ps.EndX; x++ {
		if x >= len(r.depth) || !(ps.Depth < r.depth[x]) {
			continue
		}
		if ps.HasGlow {
			s.VLine(x, max(ps.StartY-2, 0), min(ps.EndY+2, r.height-1), ps.Glow)
		}
		u := float64(x-ps.StartX) / spriteW
		texX := min(max(u*float64(tw-1), 0), float64(tw-1))
		s.TexColumn(tex, texX, 0, float64(th), x, ps.StartY, visibleH, White)
	}
}
