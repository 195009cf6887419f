package game

import (
	"fmt"
	"image/color"

	"gridshot/internal/character"
	"gridshot/internal/event"
	"gridshot/internal/items"
	"gridshot/internal/perf"
	"gridshot/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	hitMarkerTime    = 0.25
	damageFlashTime  = 0.4
	damageFlashAlpha = 0.45

	slotBoxW   = 72
	slotBoxH   = 48
	slotGap    = 6
	hudMargin  = 10
	barW       = 220
	barH       = 18
	lineHeight = 18
)

// hudFace is the bitmap font every overlay string is drawn with.
var hudFace font.Face = basicfont.Face7x13

var (
	hudWhite   = color.RGBA{255, 255, 255, 255}
	hudGray    = color.RGBA{200, 200, 200, 255}
	hudYellow  = color.RGBA{253, 249, 0, 255}
	hudRed     = color.RGBA{230, 41, 55, 255}
	hudBlue    = color.RGBA{0, 121, 241, 255}
	hudPanel   = color.RGBA{0, 0, 0, 150}
	slotEmpty  = color.RGBA{40, 40, 40, 200}
	slotHealth = color.RGBA{120, 210, 120, 220}
	slotShield = color.RGBA{120, 180, 230, 220}
)

// hudView is the per-frame data the overlay draws.
type hudView struct {
	Player      *character.Player
	Grid        world.Grid
	Elapsed     float64
	EnemiesLeft int
	Kills       int
	Metrics     perf.Metrics
}

// HUD draws the in-game overlay and the menu screens. It listens to events
// for the hit marker and the damage flash.
type HUD struct {
	width, height int
	Minimap       Minimap
	ShowPerf      bool

	hit         *gween.Tween
	hitAlpha    float32
	killHit     bool
	damage      *gween.Tween
	damageAlpha float32
}

func NewHUD(width, height int) *HUD {
	return &HUD{
		width:   width,
		height:  height,
		Minimap: NewMinimap(width),
	}
}

func (h *HUD) Emit(e event.Event) {
	switch e.Kind {
	case event.EnemyHurt, event.EnemyDied:
		h.hit = gween.New(1, 0, hitMarkerTime, ease.OutQuad)
		h.hitAlpha = 1
		h.killHit = e.Kind == event.EnemyDied
	case event.PlayerHurt, event.PlayerDied:
		h.damage = gween.New(damageFlashAlpha, 0, damageFlashTime, ease.OutQuad)
		h.damageAlpha = damageFlashAlpha
	}
}

// Update advances the overlay animations.
func (h *HUD) Update(dt float64) {
	if h.hit != nil {
		v, done := h.hit.Update(float32(dt))
		h.hitAlpha = v
		if done {
			h.hit, h.hitAlpha = nil, 0
		}
	}
	if h.damage != nil {
		v, done := h.damage.Update(float32(dt))
		h.damageAlpha = v
		if done {
			h.damage, h.damageAlpha = nil, 0
		}
	}
}

func (h *HUD) Draw(screen *ebiten.Image, v hudView) {
	if h.damageAlpha > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), withAlpha(hudRed, h.damageAlpha), false)
	}

	drawText(screen, "W/S move | A/D turn | SPACE fire | R reload | E interact | 1-5 slot, 0 fists | F use | M map",
		hudMargin, hudMargin+13, 1, hudWhite)
	h.drawAmmoReserve(screen, v.Player)
	h.drawCrosshair(screen)

	h.Minimap.Draw(screen, v.Grid, v.Player.X, v.Player.Y, v.Player.Angle)
	h.drawStats(screen, v)
	h.drawVitals(screen, v.Player)
	h.drawSlots(screen, v.Player)
	h.drawSelection(screen, v.Player)

	if h.ShowPerf {
		drawText(screen, v.Metrics.String(), hudMargin, h.height-slotBoxH-hudMargin-40, 1, hudYellow)
	}
}

func (h *HUD) drawAmmoReserve(screen *ebiten.Image, p *character.Player) {
	y := hudMargin + 13 + 2*lineHeight
	drawText(screen, "Ammo:", hudMargin, y, 1, hudYellow)
	for a := items.AmmoType(0); a < items.AmmoTypeCount; a++ {
		y += lineHeight
		drawText(screen, fmt.Sprintf("%s: %d", a.Name(), p.Ammo[a]), hudMargin, y, 1, hudGray)
	}
}

func (h *HUD) drawCrosshair(screen *ebiten.Image) {
	cx, cy := float32(h.width/2), float32(h.height/2)
	vector.StrokeLine(screen, cx-8, cy, cx+8, cy, 1, hudWhite, false)
	vector.StrokeLine(screen, cx, cy-8, cx, cy+8, 1, hudWhite, false)

	if h.hitAlpha <= 0 {
		return
	}
	c := hudWhite
	if h.killHit {
		c = hudRed
	}
	c = withAlpha(c, h.hitAlpha)
	for _, d := range [][2]float32{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		vector.StrokeLine(screen, cx+d[0]*5, cy+d[1]*5, cx+d[0]*11, cy+d[1]*11, 2, c, true)
	}
}

func (h *HUD) drawStats(screen *ebiten.Image, v hudView) {
	x, y, w, mh := h.Minimap.Bounds()
	top := y + mh + 8
	vector.DrawFilledRect(screen, float32(x), float32(top), float32(w), 3*lineHeight+8, hudPanel, false)
	for i, line := range statsLines(v.Elapsed, v.EnemiesLeft, v.Kills) {
		drawText(screen, line, x+8, top+4+13+i*lineHeight, 1, hudWhite)
	}
}

func statsLines(elapsed float64, enemiesLeft, kills int) []string {
	return []string{
		"Time    " + formatTime(elapsed),
		fmt.Sprintf("Enemies %d", enemiesLeft),
		fmt.Sprintf("Kills   %d", kills),
	}
}

func (h *HUD) drawVitals(screen *ebiten.Image, p *character.Player) {
	x := h.width - hudMargin - barW
	y := h.height - hudMargin - 2*barH - 6
	h.drawBar(screen, x, y, "SH", p.Shield, p.MaxShield, hudBlue)
	h.drawBar(screen, x, y+barH+6, "HP", p.HP, p.MaxHP, hudRed)
}

func (h *HUD) drawBar(screen *ebiten.Image, x, y int, label string, value, maxValue int, c color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), barW, barH, hudPanel, false)
	if fill := barFill(value, maxValue, barW); fill > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(fill), barH, c, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), barW, barH, 1, hudWhite, false)
	drawText(screen, fmt.Sprintf("%s %d/%d", label, max(value, 0), max(maxValue, 0)), x+6, y+13, 1, hudWhite)
}

// barFill is the filled width of a bar, clamped to [0, width].
func barFill(value, maxValue, width int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	return min(value*width/maxValue, width)
}

func (h *HUD) drawSlots(screen *ebiten.Image, p *character.Player) {
	y := h.height - hudMargin - slotBoxH
	for i, s := range p.Slots {
		x := hudMargin + i*(slotBoxW+slotGap)
		vector.DrawFilledRect(screen, float32(x), float32(y), slotBoxW, slotBoxH, slotBackground(s), false)

		border := float32(1)
		if i == p.Selected {
			border = 3
		}
		vector.StrokeRect(screen, float32(x), float32(y), slotBoxW, slotBoxH, border, hudWhite, false)
		drawText(screen, fmt.Sprint(i+1), x+4, y+13, 1, hudGray)

		label, detail := slotLabel(s)
		drawText(screen, label, x+6, y+30, 1, hudWhite)
		drawText(screen, detail, x+6, y+44, 1, hudWhite)
	}
	if p.Selected == character.NoSlot {
		drawText(screen, "0: fists", hudMargin, y-8, 1, hudYellow)
	}
}

func slotBackground(s *character.Slot) color.RGBA {
	switch {
	case s == nil:
		return slotEmpty
	case s.Kind == character.SlotWeapon:
		return withAlpha(s.Weapon.Rarity.Color(), 0.85)
	case s.Consumable.IsShield():
		return slotShield
	}
	return slotHealth
}

var weaponShortNames = map[items.WeaponType]string{
	items.WeaponPistol:         "PST",
	items.WeaponSMG:            "SMG",
	items.WeaponRifle:          "RFL",
	items.WeaponShotgun:        "SHG",
	items.WeaponRocketLauncher: "RKT",
}

// slotLabel returns the short name and the count line for a slot.
func slotLabel(s *character.Slot) (string, string) {
	if s == nil {
		return "", ""
	}
	if s.Kind == character.SlotWeapon {
		return weaponShortNames[s.Weapon.Type], fmt.Sprintf("%d/%d", s.Mag, s.Weapon.MagSize)
	}
	def := items.GetConsumableDefinition(s.Consumable)
	label := fmt.Sprintf("HP+%d", def.Heal)
	if s.Consumable.IsShield() {
		label = fmt.Sprintf("SH+%d", def.Shield)
	}
	return label, fmt.Sprintf("x%d", s.Count)
}

// drawSelection shows the magazine of the held weapon or the channel of
// the consumable in use, centered at the bottom.
func (h *HUD) drawSelection(screen *ebiten.Image, p *character.Player) {
	s := p.SelectedSlot()
	if s == nil {
		return
	}
	y := h.height - hudMargin - 10
	switch s.Kind {
	case character.SlotWeapon:
		line := fmt.Sprintf("%s  %d / %d", s.Weapon.Name, s.Mag, p.Ammo[s.Weapon.Ammo])
		c := hudWhite
		if s.Reloading {
			line = fmt.Sprintf("%s  reloading %.1fs", s.Weapon.Name, s.ReloadLeft)
			c = hudYellow
		}
		h.drawCentered(screen, line, y, 2, c)
	case character.SlotConsumable:
		if !s.Using {
			return
		}
		total := items.GetConsumableDefinition(s.Consumable).ChannelTime
		w := 200
		x := (h.width - w) / 2
		vector.DrawFilledRect(screen, float32(x), float32(y-40), float32(w), 10, hudPanel, false)
		if total > 0 {
			done := float32((total - s.Channel) / total)
			vector.DrawFilledRect(screen, float32(x), float32(y-40), float32(w)*done, 10, slotBackground(s), false)
		}
		h.drawCentered(screen, fmt.Sprintf("%.1f", s.Channel), y, 2, hudWhite)
	}
}

func (h *HUD) drawCentered(screen *ebiten.Image, s string, y int, scale float64, c color.Color) {
	w := int(float64(font.MeasureString(hudFace, s).Round()) * scale)
	drawText(screen, s, (h.width-w)/2, y, scale, c)
}

// formatTime renders seconds as m:ss. Negative values read as zero.
func formatTime(secs float64) string {
	total := int(max(secs, 0))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// drawText draws s with its baseline at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, scale float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(dst, s, hudFace, op)
}

func withAlpha(c color.RGBA, a float32) color.RGBA {
	a = max(0, min(a, 1))
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
