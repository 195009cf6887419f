package world

// Grid is the read-only occupancy lookup shared by the raycaster, the
// line-of-sight oracle and movement collision.
// At returns 0 for an empty cell and a wall variant id (1-9) otherwise.
// Coordinates outside the grid report wall id 1.
type Grid interface {
	Width() int
	Height() int
	At(x, y int) int
}

// TileGrid is the row-major Grid produced by the map loader.
type TileGrid struct {
	width  int
	height int
	cells  []int
}

// NewGrid builds a grid from row-major cell ids. Missing trailing cells are
// treated as wall id 1.
func NewGrid(width, height int, cells []int) *TileGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	data := make([]int, width*height)
	for i := range data {
		if i < len(cells) {
			data[i] = cells[i]
		} else {
			data[i] = 1
		}
	}
	return &TileGrid{width: width, height: height, cells: data}
}

func (g *TileGrid) Width() int  { return g.width }
func (g *TileGrid) Height() int { return g.height }

func (g *TileGrid) At(x, y int) int {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 1
	}
	return g.cells[y*g.width+x]
}

// IsSolid reports whether a cell blocks rays and movement.
func IsSolid(g Grid, x, y int) bool {
	return g.At(x, y) >= 1
}

// DecoKind distinguishes decorations that block movement from purely visual ones.
type DecoKind int

const (
	DecoBlocking DecoKind = iota
	DecoGhost
)

const (
	BlockingDecoRadius = 0.35
	GhostDecoRadius    = 0.28
	ChestRadius        = 0.33
)

// Decoration is a static billboard placed on the floor.
type Decoration struct {
	X, Y   float64
	Radius float64
	Kind   DecoKind
}

func (d Decoration) IsBlocking() bool {
	return d.Kind == DecoBlocking
}

// Chest is a lootable container. Chests block movement whether opened or not.
type Chest struct {
	X, Y   float64
	Radius float64
	Opened bool
}

// Blocker is a circular obstacle used by movement collision.
type Blocker struct {
	X, Y   float64
	Radius float64
}

// Blockers collects the collision circles of blocking decorations and all chests.
func Blockers(decorations []Decoration, chests []Chest) []Blocker {
	out := make([]Blocker, 0, len(decorations)+len(chests))
	for _, d := range decorations {
		if d.IsBlocking() {
			out = append(out, Blocker{X: d.X, Y: d.Y, Radius: d.Radius})
		}
	}
	for _, c := range chests {
		out = append(out, Blocker{X: c.X, Y: c.Y, Radius: c.Radius})
	}
	return out
}
