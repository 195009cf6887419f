package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gridshot/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SpawnKind identifies what a map glyph places on a floor cell.
type SpawnKind int

const (
	SpawnEnemy SpawnKind = iota
	SpawnHealthBig
	SpawnShieldBig
	SpawnHealthRandom
	SpawnShieldRandom
	SpawnDecoBlocking
	SpawnDecoGhost
	SpawnChest
	SpawnAmmoLight
	SpawnAmmoMedium
	SpawnAmmoHeavy
	SpawnAmmoShell
	SpawnAmmoRocket
	SpawnAmmoRandom
	SpawnWeaponPistol
	SpawnWeaponSMG
	SpawnWeaponRifle
	SpawnWeaponShotgun
	SpawnWeaponRocket
	SpawnWeaponRandom
)

var spawnGlyphs = map[rune]SpawnKind{
	'E': SpawnEnemy,
	'H': SpawnHealthBig,
	'S': SpawnShieldBig,
	'h': SpawnHealthRandom,
	's': SpawnShieldRandom,
	'B': SpawnDecoBlocking,
	'b': SpawnDecoGhost,
	'C': SpawnChest,
	't': SpawnAmmoLight,
	'y': SpawnAmmoMedium,
	'u': SpawnAmmoHeavy,
	'g': SpawnAmmoShell,
	'r': SpawnAmmoRocket,
	'm': SpawnAmmoRandom,
	'A': SpawnWeaponPistol,
	'M': SpawnWeaponSMG,
	'R': SpawnWeaponRifle,
	'O': SpawnWeaponShotgun,
	'K': SpawnWeaponRocket,
	'w': SpawnWeaponRandom,
}

// Glyph returns the map character that places this kind.
func (k SpawnKind) Glyph() rune {
	for r, kind := range spawnGlyphs {
		if kind == k {
			return r
		}
	}
	return '?'
}

// Spawn is an entity placement at a cell center.
type Spawn struct {
	X, Y float64
	Kind SpawnKind
}

// MapData contains the loaded map information
type MapData struct {
	Grid   *TileGrid
	StartX float64
	StartY float64
	Spawns []Spawn
}

// SpawnsOf returns the spawns of a single kind in map order.
func (md *MapData) SpawnsOf(kind SpawnKind) []Spawn {
	var out []Spawn
	for _, s := range md.Spawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// MapLoader handles loading world maps from text files
type MapLoader struct {
	log *logrus.Entry
}

func NewMapLoader() *MapLoader {
	return &MapLoader{log: logger.Component("world")}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	md, err := ml.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapPath, err)
	}
	return md, nil
}

// Parse reads a text map. Whitespace-only lines are skipped, short rows are
// padded with wall id 1 and unknown glyphs become floor.
func (ml *MapLoader) Parse(r io.Reader) (*MapData, error) {
	var lines [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("map file contains no valid map data")
	}

	height := len(lines)
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}

	cells := make([]int, 0, width*height)
	md := &MapData{StartX: -1, StartY: -1}
	havePlayer := false

	for y, row := range lines {
		for x := 0; x < width; x++ {
			ch := '1'
			if x < len(row) {
				ch = row[x]
			}
			cx, cy := float64(x)+0.5, float64(y)+0.5

			switch {
			case ch >= '1' && ch <= '9':
				cells = append(cells, int(ch-'0'))
			case ch == '#':
				cells = append(cells, 1)
			case ch == 'P':
				cells = append(cells, 0)
				if !havePlayer {
					md.StartX, md.StartY = cx, cy
					havePlayer = true
				}
			default:
				cells = append(cells, 0)
				if kind, ok := spawnGlyphs[ch]; ok {
					md.Spawns = append(md.Spawns, Spawn{X: cx, Y: cy, Kind: kind})
				}
			}
		}
	}

	if !havePlayer {
		return nil, fmt.Errorf("map has no player spawn 'P'")
	}

	md.Grid = NewGrid(width, height, cells)
	ml.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"spawns": len(md.Spawns),
	}).Debug("map parsed")

	return md, nil
}
