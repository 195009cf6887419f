package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"

	"gridshot/internal/config"
	"gridshot/internal/graphics"
	"gridshot/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

type mapInfo struct {
	Path string
	Data *world.MapData
	Err  error
}

type viewer struct {
	maps         []mapInfo
	mapIndex     int
	legendLines  []string
	legendScroll int
	sidebarTab   int
	floor        color.RGBA
	lastErr      string
}

const (
	tabInfo = iota
	tabLegend
)

// spawnMarkers is how each spawn kind is drawn and listed in the legend.
var spawnMarkers = []struct {
	Kind  world.SpawnKind
	Label string
	Color color.RGBA
}{
	{world.SpawnEnemy, "enemy", color.RGBA{230, 80, 80, 255}},
	{world.SpawnHealthBig, "big health", color.RGBA{120, 210, 120, 255}},
	{world.SpawnShieldBig, "big shield", color.RGBA{120, 180, 230, 255}},
	{world.SpawnHealthRandom, "random health", color.RGBA{80, 160, 80, 255}},
	{world.SpawnShieldRandom, "random shield", color.RGBA{80, 130, 180, 255}},
	{world.SpawnDecoBlocking, "blocking decoration", color.RGBA{127, 106, 79, 255}},
	{world.SpawnDecoGhost, "walk-through decoration", color.RGBA{200, 200, 200, 255}},
	{world.SpawnChest, "chest", color.RGBA{255, 203, 0, 255}},
	{world.SpawnAmmoLight, "light ammo", color.RGBA{253, 249, 0, 255}},
	{world.SpawnAmmoMedium, "medium ammo", color.RGBA{200, 200, 200, 255}},
	{world.SpawnAmmoHeavy, "heavy ammo", color.RGBA{80, 80, 80, 255}},
	{world.SpawnAmmoShell, "shells", color.RGBA{127, 106, 79, 255}},
	{world.SpawnAmmoRocket, "rockets", color.RGBA{255, 161, 0, 255}},
	{world.SpawnAmmoRandom, "random ammo", color.RGBA{190, 190, 120, 255}},
	{world.SpawnWeaponPistol, "pistol", color.RGBA{180, 180, 180, 255}},
	{world.SpawnWeaponSMG, "smg", color.RGBA{180, 180, 180, 255}},
	{world.SpawnWeaponRifle, "rifle", color.RGBA{180, 180, 180, 255}},
	{world.SpawnWeaponShotgun, "shotgun", color.RGBA{180, 180, 180, 255}},
	{world.SpawnWeaponRocket, "rocket launcher", color.RGBA{180, 180, 180, 255}},
	{world.SpawnWeaponRandom, "random weapon", color.RGBA{200, 122, 255, 255}},
}

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		var err error
		paths, err = findMaps(filepath.Dir(cfg.Assets.MapFile))
		if err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	v := &viewer{
		maps:        loadMaps(paths),
		legendLines: buildLegendLines(),
		sidebarTab:  tabInfo,
		floor:       colorFromRGB(cfg.Display.FloorColor, 255),
	}
	if len(v.maps) == 0 {
		v.lastErr = "no maps loaded"
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("gridshot map viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.sidebarTab == tabInfo {
			v.sidebarTab = tabLegend
		} else {
			v.sidebarTab = tabInfo
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.sidebarTab = tabInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.sidebarTab = tabLegend
	}

	if len(v.maps) > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
			v.mapIndex = (v.mapIndex + 1) % len(v.maps)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
			v.mapIndex = (v.mapIndex + len(v.maps) - 1) % len(v.maps)
		}
	}

	if v.sidebarTab == tabLegend {
		if _, wheelY := ebiten.Wheel(); wheelY != 0 {
			v.legendScroll -= int(wheelY * 14)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
			v.legendScroll += 14
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
			v.legendScroll -= 14
		}
		v.legendScroll = max(0, min(v.legendScroll, v.maxLegendScroll()))
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	if len(v.maps) == 0 {
		ebitenutil.DebugPrintAt(screen, v.lastErr, 16, 16)
		return
	}

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Path, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	v.drawMapPanel(screen, m, padding, padding, mapAreaW, mapAreaH)
	drawSidebar(screen, m, sidebarX, padding, sidebarWidth, mapAreaH, v.sidebarTab, v.legendLines, v.legendScroll)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) maxLegendScroll() int {
	lineHeight := 14
	contentHeight := max(windowHeight-2*12-24-12, lineHeight)
	return max(len(v.legendLines)*lineHeight-contentHeight, 0)
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	g := m.Data.Grid
	tileSize, originX, originY := fitGrid(g.Width(), g.Height(), x, y, w, h)

	for ty := 0; ty < g.Height(); ty++ {
		for tx := 0; tx < g.Width(); tx++ {
			cellColor := v.floor
			if id := g.At(tx, ty); id != 0 {
				cellColor = graphics.WallColor(id)
			}
			vector.DrawFilledRect(screen, float32(originX+tx*tileSize), float32(originY+ty*tileSize), float32(tileSize), float32(tileSize), cellColor, false)
		}
	}

	drawOverlays(screen, m.Data, originX, originY, tileSize)
	ebitenutil.DebugPrintAt(screen, m.Path, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Esc to quit", x+12, y+24)
}

// fitGrid picks the largest square tile that fits gw×gh cells into the
// panel and centers the grid in it.
func fitGrid(gw, gh, x, y, w, h int) (tileSize, originX, originY int) {
	if gw <= 0 || gh <= 0 {
		return 2, x, y
	}
	tileSize = max(min(w/gw, h/gh), 2)
	return tileSize, x + (w-gw*tileSize)/2, y + (h-gh*tileSize)/2
}

func drawOverlays(screen *ebiten.Image, md *world.MapData, originX, originY, tileSize int) {
	for _, s := range md.Spawns {
		clr, ok := markerColor(s.Kind)
		if !ok {
			continue
		}
		tx, ty := int(s.X), int(s.Y)
		drawTileMarkerCircle(screen, originX, originY, tileSize, tx, ty, clr, false)
		drawTileLetter(screen, originX, originY, tileSize, tx, ty, string(s.Kind.Glyph()))
	}
	drawTileMarkerCircle(screen, originX, originY, tileSize, int(md.StartX), int(md.StartY), color.RGBA{50, 200, 255, 255}, true)
}

func markerColor(kind world.SpawnKind) (color.RGBA, bool) {
	for _, m := range spawnMarkers {
		if m.Kind == kind {
			return m.Color, true
		}
	}
	return color.RGBA{}, false
}

func drawSidebar(screen *ebiten.Image, m mapInfo, x, y, w, h int, tab int, legendLines []string, scroll int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	tabHeight := 24
	drawSidebarTabs(screen, x, y, w, tabHeight, tab)
	row := y + tabHeight + 12

	if tab == tabLegend {
		drawLegendList(screen, x, row, h-(row-y)-12, legendLines, scroll)
		return
	}

	for _, line := range mapStats(m.Data) {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

// mapStats summarizes a map for the info tab.
func mapStats(md *world.MapData) []string {
	counts := make(map[world.SpawnKind]int)
	for _, s := range md.Spawns {
		counts[s.Kind]++
	}
	pickups := len(md.Spawns) - counts[world.SpawnEnemy] - counts[world.SpawnChest] -
		counts[world.SpawnDecoBlocking] - counts[world.SpawnDecoGhost]

	return []string{
		fmt.Sprintf("Tiles: %dx%d", md.Grid.Width(), md.Grid.Height()),
		fmt.Sprintf("Start: %.1f, %.1f", md.StartX, md.StartY),
		fmt.Sprintf("Enemies: %d", counts[world.SpawnEnemy]),
		fmt.Sprintf("Chests: %d", counts[world.SpawnChest]),
		fmt.Sprintf("Decorations: %d", counts[world.SpawnDecoBlocking]+counts[world.SpawnDecoGhost]),
		fmt.Sprintf("Pickup spawns: %d", pickups),
	}
}

func drawSidebarTabs(screen *ebiten.Image, x, y, w, h int, active int) {
	tabW := w / 2
	infoColor := color.RGBA{40, 40, 55, 255}
	legendColor := color.RGBA{40, 40, 55, 255}
	if active == tabInfo {
		infoColor = color.RGBA{70, 70, 95, 255}
	} else {
		legendColor = color.RGBA{70, 70, 95, 255}
	}
	drawFilledRect(screen, x, y, tabW, h, infoColor)
	drawFilledRect(screen, x+tabW, y, w-tabW, h, legendColor)
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})
	ebitenutil.DebugPrintAt(screen, "Info (1)", x+10, y+6)
	ebitenutil.DebugPrintAt(screen, "Legend (2)", x+tabW+10, y+6)
}

func drawLegendList(screen *ebiten.Image, x, y, h int, lines []string, scroll int) {
	lineHeight := 14
	startY := y - scroll
	for i, line := range lines {
		drawY := startY + i*lineHeight
		if drawY < y-lineHeight {
			continue
		}
		if drawY > y+h-lineHeight {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, x+10, drawY)
	}
}

func drawTileMarkerCircle(screen *ebiten.Image, originX, originY, tileSize, tx, ty int, clr color.RGBA, stroke bool) {
	centerX := float32(originX + tx*tileSize + tileSize/2)
	centerY := float32(originY + ty*tileSize + tileSize/2)
	radius := float32(tileSize) * 0.35
	vector.DrawFilledCircle(screen, centerX, centerY, radius, clr, true)
	if stroke {
		vector.StrokeCircle(screen, centerX, centerY, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	}
}

func drawTileLetter(screen *ebiten.Image, originX, originY, tileSize, tx, ty int, letter string) {
	if tileSize < 12 {
		return
	}
	ebitenutil.DebugPrintAt(screen, letter, originX+tx*tileSize+2, originY+ty*tileSize+1)
}

func buildLegendLines() []string {
	lines := []string{
		"Cells",
		"-----",
		"1-9 = wall id (texture index)",
		"#   = wall 1",
		".   = floor",
		"P   = player start (first one wins)",
		"",
		"Spawns",
		"------",
	}
	for _, m := range spawnMarkers {
		lines = append(lines, fmt.Sprintf("%c   = %s", m.Kind.Glyph(), m.Label))
	}
	return lines
}

func findMaps(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list maps in %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func loadMaps(paths []string) []mapInfo {
	loader := world.NewMapLoader()
	maps := make([]mapInfo, 0, len(paths))
	for _, p := range paths {
		data, err := loader.LoadMap(p)
		maps = append(maps, mapInfo{Path: p, Data: data, Err: err})
	}
	return maps
}

func colorFromRGB(rgb [3]int, a uint8) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), a}
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(thickness), clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
