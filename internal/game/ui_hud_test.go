package game

import (
	"testing"

	"gridshot/internal/character"
	"gridshot/internal/event"
	"gridshot/internal/items"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00"},
		{9.9, "0:09"},
		{61, "1:01"},
		{600, "10:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := formatTime(tt.secs); got != tt.want {
			t.Errorf("formatTime(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestBarFill(t *testing.T) {
	tests := []struct {
		name              string
		value, max, width int
		want              int
	}{
		{"full", 100, 100, 220, 220},
		{"half", 50, 100, 220, 110},
		{"empty", 0, 100, 220, 0},
		{"negative", -5, 100, 220, 0},
		{"no max", 10, 0, 220, 0},
		{"over max", 150, 100, 220, 220},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barFill(tt.value, tt.max, tt.width); got != tt.want {
				t.Errorf("barFill = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSlotLabel(t *testing.T) {
	rifle := character.NewWeaponSlot(items.GetWeaponDefinition(items.WeaponRifle))
	rifle.Mag = 4

	tests := []struct {
		name          string
		slot          *character.Slot
		label, detail string
	}{
		{"empty", nil, "", ""},
		{"weapon", rifle, "RFL", "4/10"},
		{"small heal", character.NewConsumableSlot(items.HealthSmall, 3), "HP+20", "x3"},
		{"big shield", character.NewConsumableSlot(items.ShieldBig, 1), "SH+50", "x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, detail := slotLabel(tt.slot)
			if label != tt.label || detail != tt.detail {
				t.Errorf("slotLabel = %q %q, want %q %q", label, detail, tt.label, tt.detail)
			}
		})
	}
}

func TestMinimapBounds(t *testing.T) {
	m := NewMinimap(1024)

	x, y, w, h := m.Bounds()
	if x != 1024-10-180 || y != 10 || w != 180 || h != 140 {
		t.Errorf("small bounds = %d,%d %dx%d", x, y, w, h)
	}

	m.Toggle()
	x, _, w, h = m.Bounds()
	if x != 1024-10-420 || w != 420 || h != 320 {
		t.Errorf("large bounds = %d %dx%d", x, w, h)
	}

	tile, ox, oy := m.layout(42, 16)
	if tile != 10 {
		t.Errorf("expected square 10px cells, got %f", tile)
	}
	if ox != float64(x) || oy != 10+(320-160)/2 {
		t.Errorf("grid should be centered, origin (%f,%f)", ox, oy)
	}
}

func TestHUDMarkersFade(t *testing.T) {
	h := NewHUD(800, 600)

	h.Emit(event.Event{Kind: event.EnemyHurt})
	if h.hitAlpha != 1 || h.killHit {
		t.Fatalf("hurt should show a plain marker, alpha=%v kill=%v", h.hitAlpha, h.killHit)
	}
	h.Emit(event.Event{Kind: event.EnemyDied})
	if !h.killHit {
		t.Error("death should switch to the kill marker")
	}

	h.Emit(event.Event{Kind: event.PlayerHurt})
	if h.damageAlpha != damageFlashAlpha {
		t.Errorf("damage flash should start at %v, got %v", damageFlashAlpha, h.damageAlpha)
	}

	h.Update(hitMarkerTime / 2)
	if h.hitAlpha <= 0 || h.hitAlpha >= 1 {
		t.Errorf("marker should be fading, alpha=%v", h.hitAlpha)
	}

	h.Update(1)
	if h.hitAlpha != 0 || h.damageAlpha != 0 {
		t.Errorf("markers should be gone, hit=%v damage=%v", h.hitAlpha, h.damageAlpha)
	}

	h.Emit(event.Event{Kind: event.ChestOpened})
	if h.hitAlpha != 0 || h.damageAlpha != 0 {
		t.Error("unrelated events should not show markers")
	}
}

func TestStatsLines(t *testing.T) {
	lines := statsLines(75, 3, 2)
	want := []string{"Time    1:15", "Enemies 3", "Kills   2"}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
