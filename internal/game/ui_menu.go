package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	menuBackground = color.RGBA{18, 18, 24, 255}
	menuShade      = color.RGBA{0, 0, 0, 170}
)

var titleHelp = []string{
	"W/S move   A/D turn   SPACE fire or punch",
	"R reload   E open chests and pick up   F use consumable",
	"1-5 select slot   0 fists   M minimap   F3 stats   ESC quit",
}

// DrawTitle draws the start screen with the best recorded run, if any.
func (h *HUD) DrawTitle(screen *ebiten.Image, best RunRecord, hasBest bool) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), menuBackground, false)

	y := h.height / 3
	h.drawCentered(screen, "GRIDSHOT", y, 4, hudYellow)
	y += 60
	h.drawCentered(screen, "Press ENTER or SPACE to start", y, 2, hudWhite)
	y += 50
	for _, line := range titleHelp {
		h.drawCentered(screen, line, y, 1, hudGray)
		y += lineHeight
	}
	if hasBest {
		y += lineHeight
		h.drawCentered(screen, fmt.Sprintf("Best clear %s with %d kills", formatTime(best.Time), best.Kills), y, 1, hudYellow)
	}
}

// DrawVictory draws the level-cleared screen. rank is the place of this run
// in the records table, 0 when it did not make the table.
func (h *HUD) DrawVictory(screen *ebiten.Image, elapsed float64, kills, rank int, best RunRecord, hasBest bool) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), menuBackground, false)

	y := h.height / 3
	h.drawCentered(screen, "LEVEL CLEARED", y, 3, hudYellow)
	y += 50
	h.drawCentered(screen, fmt.Sprintf("Time %s   Kills %d", formatTime(elapsed), kills), y, 2, hudWhite)
	y += 40
	switch {
	case rank == 1:
		h.drawCentered(screen, "New best time!", y, 2, hudYellow)
	case rank > 1:
		h.drawCentered(screen, fmt.Sprintf("Rank #%d", rank), y, 2, hudWhite)
	case hasBest:
		h.drawCentered(screen, "Best "+formatTime(best.Time), y, 2, hudGray)
	}
	y += 50
	h.drawCentered(screen, "ENTER restart   M menu", y, 1, hudGray)
}

// DrawDeath shades the last frame and shows the run summary.
func (h *HUD) DrawDeath(screen *ebiten.Image, elapsed float64, kills int) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), menuShade, false)
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), withAlpha(hudRed, h.damageAlpha), false)

	y := h.height / 3
	h.drawCentered(screen, "YOU DIED", y, 3, hudRed)
	y += 50
	h.drawCentered(screen, fmt.Sprintf("Survived %s   Kills %d", formatTime(elapsed), kills), y, 2, hudWhite)
	y += 50
	h.drawCentered(screen, "ENTER restart   M menu", y, 1, hudGray)
}
