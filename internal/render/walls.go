package render

import (
	"image/color"
	"math"

	"gridshot/internal/threading"
	"gridshot/internal/world"
)

// WallHit is the result of casting one screen column's ray.
type WallHit struct {
	Hit     bool
	Perp    float64 // perpendicular distance to the wall face
	ID      int     // wall variant id of the cell that was hit
	Side    int     // 0 when an X boundary was crossed last, 1 for Y
	WallX   float64 // fractional hit position along the wall face, [0,1)
	RayDirX float64
	RayDirY float64
}

// Mirrored reports whether the texture must be flipped horizontally so that
// every face reads left to right from the viewer's side.
func (h WallHit) Mirrored() bool {
	return (h.Side == 0 && h.RayDirX > 0) || (h.Side == 1 && h.RayDirY < 0)
}

// TexX returns the texture column for a texture texW pixels wide.
func (h WallHit) TexX(texW int) int {
	tx := int(h.WallX * float64(texW))
	if h.Mirrored() {
		tx = texW - tx - 1
	}
	return tx
}

// CastRay walks the grid from the viewer along the ray for camera-plane
// offset cameraX in [-1,1] until it enters a wall cell or exceeds the step
// bound of 4*(W+H).
func CastRay(g world.Grid, v Viewer, cameraX float64) WallHit {
	rayAngle := v.Angle + cameraX*(v.FOV/2)
	rdx := math.Cos(rayAngle)
	rdy := math.Sin(rayAngle)

	mapX := int(math.Floor(v.X))
	mapY := int(math.Floor(v.Y))

	deltaX := 1e30
	if math.Abs(rdx) >= 1e-6 {
		deltaX = math.Abs(1 / rdx)
	}
	deltaY := 1e30
	if math.Abs(rdy) >= 1e-6 {
		deltaY = math.Abs(1 / rdy)
	}

	stepX, stepY := 1, 1
	sideX := (float64(mapX) + 1 - v.X) * deltaX
	sideY := (float64(mapY) + 1 - v.Y) * deltaY
	if rdx < 0 {
		stepX = -1
		sideX = (v.X - float64(mapX)) * deltaX
	}
	if rdy < 0 {
		stepY = -1
		sideY = (v.Y - float64(mapY)) * deltaY
	}

	hit := WallHit{RayDirX: rdx, RayDirY: rdy}
	maxSteps := (g.Width() + g.Height()) * 4
	for steps := 1; ; steps++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			hit.Side = 0
		} else {
			sideY += deltaY
			mapY += stepY
			hit.Side = 1
		}
		if id := g.At(mapX, mapY); id > 0 {
			hit.Hit = true
			hit.ID = id
			break
		}
		if steps > maxSteps {
			return hit
		}
	}

	// rd is unit length, so the boundary formula yields the distance along
	// the ray; projecting it onto the view direction removes the fisheye.
	var along float64
	if hit.Side == 0 {
		along = math.Abs((float64(mapX) - v.X + float64(1-stepX)/2) / rdx)
		hit.WallX = v.Y + along*rdy
	} else {
		along = math.Abs((float64(mapY) - v.Y + float64(1-stepY)/2) / rdy)
		hit.WallX = v.X + along*rdx
	}
	hit.WallX -= math.Floor(hit.WallX)
	hit.Perp = along * math.Cos(rayAngle-v.Angle)
	return hit
}

// CastWalls casts one ray per column, storing each hit in hits and its
// perpendicular distance in depth. Columns without a hit keep +Inf.
// hits and depth must both be at least screenW long.
func CastWalls(g world.Grid, v Viewer, screenW int, hits []WallHit, depth []float64) {
	for x := 0; x < screenW; x++ {
		castColumn(g, v, screenW, x, hits, depth)
	}
}

// CastWallsParallel is CastWalls with the columns split across pool. Each
// column writes only its own slot, so the result matches CastWalls exactly.
func CastWallsParallel(pool *threading.WorkerPool, g world.Grid, v Viewer, screenW int, hits []WallHit, depth []float64) {
	pool.ParallelFor(0, screenW, func(x int) {
		castColumn(g, v, screenW, x, hits, depth)
	})
}

func castColumn(g world.Grid, v Viewer, screenW, x int, hits []WallHit, depth []float64) {
	cameraX := 2*float64(x)/float64(screenW) - 1
	h := CastRay(g, v, cameraX)
	hits[x] = h
	if h.Hit {
		depth[x] = h.Perp
	} else {
		depth[x] = math.Inf(1)
	}
}

// wallPalette colors walls by id when no wall textures are loaded.
var wallPalette = []color.RGBA{
	{150, 150, 150, 255},
	{160, 80, 60, 255},
	{70, 110, 160, 255},
	{90, 140, 80, 255},
	{170, 150, 90, 255},
}

func (r *Renderer) wallTexture(id int) Texture {
	if len(r.textures.Walls) == 0 {
		return nil
	}
	if id >= 1 && id <= len(r.textures.Walls) {
		return r.textures.Walls[id-1]
	}
	return r.textures.Walls[0]
}

// drawWalls draws the background and one textured slice per column hit.
func (r *Renderer) drawWalls(s Surface, v Viewer) {
	w, h := r.width, r.height
	s.FillRect(0, 0, w, h/2, r.sky)
	s.FillRect(0, h/2, w, h-h/2, r.floor)

	for x := 0; x < w; x++ {
		hit := r.hits[x]
		if !hit.Hit {
			continue
		}

		lineH := v.ProjDist / hit.Perp
		rawStart := float64(h)/2 - lineH/2
		rawEnd := float64(h)/2 + lineH/2
		visStart := int(max(rawStart, 0))
		visEnd := int(min(rawEnd, float64(h-1)))
		if visEnd < visStart {
			continue
		}

		tint := White
		if hit.Side == 1 {
			tint = Gray
		}

		tex := r.wallTexture(hit.ID)
		if tex == nil {
			c := wallPalette[(max(hit.ID, 1)-1)%len(wallPalette)]
			s.VLine(x, visStart, visEnd, multiply(c, tint))
			continue
		}

		texW, texH := tex.Size()
		texStep := float64(texH) / lineH
		texYStart := 0.0
		if rawStart < 0 {
			texYStart = -rawStart * texStep
		}
		visible := visEnd - visStart + 1
		s.TexColumn(tex, float64(hit.TexX(texW)), texYStart, float64(visible)*texStep, x, visStart, visible, tint)
	}
}

func multiply(c, tint color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(tint.R) / 255),
		G: uint8(uint16(c.G) * uint16(tint.G) / 255),
		B: uint8(uint16(c.B) * uint16(tint.B) / 255),
		A: c.A,
	}
}
