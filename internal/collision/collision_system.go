package collision

import (
	"math"

	"gridshot/internal/world"
)

// CollisionSystem resolves circle movement against the wall grid and the
// static blockers of a level (blocking decorations and chests).
type CollisionSystem struct {
	grid     world.Grid
	blockers []world.Blocker
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(grid world.Grid, blockers []world.Blocker) *CollisionSystem {
	return &CollisionSystem{grid: grid, blockers: blockers}
}

// UpdateBlockers replaces the static obstacle set (used when a level is rebuilt)
func (cs *CollisionSystem) UpdateBlockers(blockers []world.Blocker) {
	cs.blockers = blockers
}

func (cs *CollisionSystem) Grid() world.Grid { return cs.grid }

func (cs *CollisionSystem) Blockers() []world.Blocker { return cs.blockers }

// Move applies (dx,dy) one axis at a time and returns the committed position.
func (cs *CollisionSystem) Move(x, y, dx, dy, radius float64) (float64, float64) {
	return MoveAxisSeparated(cs.grid, cs.blockers, x, y, dx, dy, radius)
}

// CanMoveX reports whether a circle may move horizontally to nx.
func (cs *CollisionSystem) CanMoveX(nx, y, radius float64) bool {
	return CanMoveX(cs.grid, cs.blockers, nx, y, radius)
}

func (cs *CollisionSystem) CanMoveY(x, ny, radius float64) bool {
	return CanMoveY(cs.grid, cs.blockers, x, ny, radius)
}

// CheckLineOfSight checks if there's a clear line of sight between two points
func (cs *CollisionSystem) CheckLineOfSight(x1, y1, x2, y2 float64) bool {
	return HasLineOfSight(cs.grid, x1, y1, x2, y2)
}

// HitsBlocker reports whether a circle at (x,y) overlaps any blocker.
func HitsBlocker(blockers []world.Blocker, x, y, radius float64) bool {
	for _, b := range blockers {
		dx := b.X - x
		dy := b.Y - y
		rr := radius + b.Radius
		if dx*dx+dy*dy < rr*rr {
			return true
		}
	}
	return false
}

// CanMoveX checks the two cells at the circle's left and right edges on row
// floor(y), then the blockers.
func CanMoveX(g world.Grid, blockers []world.Blocker, nx, y, radius float64) bool {
	row := int(math.Floor(y))
	return g.At(int(math.Floor(nx-radius)), row) == 0 &&
		g.At(int(math.Floor(nx+radius)), row) == 0 &&
		!HitsBlocker(blockers, nx, y, radius)
}

// CanMoveY is the vertical counterpart of CanMoveX.
func CanMoveY(g world.Grid, blockers []world.Blocker, x, ny, radius float64) bool {
	col := int(math.Floor(x))
	return g.At(col, int(math.Floor(ny-radius))) == 0 &&
		g.At(col, int(math.Floor(ny+radius))) == 0 &&
		!HitsBlocker(blockers, x, ny, radius)
}

// MoveAxisSeparated commits the X displacement first and the Y displacement
// from the resulting position, each only if its candidate position is free.
func MoveAxisSeparated(g world.Grid, blockers []world.Blocker, x, y, dx, dy, radius float64) (float64, float64) {
	if dx != 0 && CanMoveX(g, blockers, x+dx, y, radius) {
		x += dx
	}
	if dy != 0 && CanMoveY(g, blockers, x, y+dy, radius) {
		y += dy
	}
	return x, y
}
