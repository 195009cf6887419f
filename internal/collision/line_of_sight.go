package collision

import (
	"math"

	"gridshot/internal/world"
)

// HasLineOfSight walks the grid from (sx,sy) toward (tx,ty) one cell boundary
// at a time. Two points in the same cell always see each other. Otherwise it
// reports true as soon as the walk enters the target cell and false if it
// enters any wall cell first. The walk is bounded by 4*(W+H)
// steps so degenerate inputs cannot loop forever.
func HasLineOfSight(g world.Grid, sx, sy, tx, ty float64) bool {
	dx := tx - sx
	dy := ty - sy
	dist := math.Max(math.Hypot(dx, dy), 1e-6)
	dirX := dx / dist
	dirY := dy / dist

	mapX := int(math.Floor(sx))
	mapY := int(math.Floor(sy))
	targetX := int(math.Floor(tx))
	targetY := int(math.Floor(ty))
	if mapX == targetX && mapY == targetY {
		return true
	}

	deltaX := math.Inf(1)
	if math.Abs(dirX) >= 1e-6 {
		deltaX = math.Abs(1 / dirX)
	}
	deltaY := math.Inf(1)
	if math.Abs(dirY) >= 1e-6 {
		deltaY = math.Abs(1 / dirY)
	}

	stepX, sideX := 1, (float64(mapX)+1-sx)*deltaX
	if dirX < 0 {
		stepX, sideX = -1, (sx-float64(mapX))*deltaX
	}
	stepY, sideY := 1, (float64(mapY)+1-sy)*deltaY
	if dirY < 0 {
		stepY, sideY = -1, (sy-float64(mapY))*deltaY
	}

	maxSteps := (g.Width() + g.Height()) * 4
	for i := 0; i < maxSteps; i++ {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
		} else {
			sideY += deltaY
			mapY += stepY
		}

		if mapX == targetX && mapY == targetY {
			return true
		}
		if world.IsSolid(g, mapX, mapY) {
			return false
		}
	}
	return false
}
