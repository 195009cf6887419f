package render

import (
	"math"
	"testing"

	"gridshot/internal/items"
	"gridshot/internal/monster"
	"gridshot/internal/world"
)

func testEnemy(x, y float64) *monster.Enemy {
	return monster.NewEnemy(x, y, 150, 1, items.GetWeaponDefinition(items.WeaponPistol))
}

func TestOccludedEnemyStillReportsRange(t *testing.T) {
	cfg := testConfig()
	r := NewRenderer(cfg, Textures{}, nil)

	walls := map[[2]int]int{}
	for y := 1; y < 10; y++ {
		walls[[2]int{5, y}] = 3
	}
	g := roomGrid(14, 11, walls)
	v := NewViewer(1.5, 5.5, 0, cfg.GetFOV(), 320)

	behind := testEnemy(8.5, 5.5)
	s := &recordingSurface{}
	f := r.Render(s, &Scene{Grid: g, Viewer: v, Enemies: []*monster.Enemy{behind}})

	if n := len(s.linesOf(monster.ColorHealthy)); n != 0 {
		t.Errorf("enemy behind a wall drew %d columns", n)
	}
	if len(f.Visible) != 1 {
		t.Fatalf("expected one visible range, got %d", len(f.Visible))
	}
	got := f.Visible[0]
	if got.Index != 0 || got.StartX != 141 || got.EndX != 179 || math.Abs(got.Depth-7) > 1e-9 {
		t.Errorf("unexpected range %+v", got)
	}
	if !(got.Depth > f.WallDepth(f.Center())) {
		t.Errorf("expected enemy depth %f behind wall depth %f", got.Depth, f.WallDepth(f.Center()))
	}

	front := testEnemy(3.5, 5.5)
	s = &recordingSurface{}
	f = r.Render(s, &Scene{Grid: g, Viewer: v, Enemies: []*monster.Enemy{front}})

	lines := s.linesOf(monster.ColorHealthy)
	if len(lines) != 139 {
		t.Fatalf("expected 139 enemy columns, got %d", len(lines))
	}
	if lines[0].x != 91 || lines[0].y0 != 31 || lines[0].y1 != 169 {
		t.Errorf("unexpected first column %+v", lines[0])
	}
	if len(f.Visible) != 1 {
		t.Errorf("visible ranges should be reset each frame, got %d", len(f.Visible))
	}
}

func TestSpritesDrawFarToNear(t *testing.T) {
	cfg := testConfig()
	r := NewRenderer(cfg, Textures{}, nil)
	sc := &Scene{
		Grid:   roomGrid(14, 11, nil),
		Viewer: NewViewer(1.5, 5.5, 0, cfg.GetFOV(), 320),
		Decorations: []world.Decoration{
			{X: 3.5, Y: 5.5, Radius: world.BlockingDecoRadius, Kind: world.DecoBlocking},
			{X: 6.5, Y: 5.5, Radius: world.GhostDecoRadius, Kind: world.DecoGhost},
		},
	}
	s := &recordingSurface{}
	r.Render(s, sc)

	far, near := -1, -1
	for i, op := range s.ops {
		l, ok := op.(lineOp)
		if !ok || l.x != 160 {
			continue
		}
		switch l.c {
		case LightGray:
			far = i
		case Brown:
			near = i
		}
	}
	if far < 0 || near < 0 {
		t.Fatalf("expected both decorations at the center column, far=%d near=%d", far, near)
	}
	if far > near {
		t.Error("nearer decoration was drawn before the farther one")
	}
}

func TestEnemyVisuals(t *testing.T) {
	cfg := testConfig()
	alive := &fakeTexture{"alive", 32, 32}
	frames := []Texture{&fakeTexture{"d0", 32, 32}, &fakeTexture{"d1", 32, 32}, &fakeTexture{"d2", 32, 32}}
	r := NewRenderer(cfg, Textures{Enemy: EnemyTextures{Alive: alive, DeathFrames: frames, DeathFrameTime: 0.12}}, nil)
	g := roomGrid(14, 11, nil)
	v := NewViewer(1.5, 5.5, 0, cfg.GetFOV(), 320)

	t.Run("dead enemy shows its death frame and is not targetable", func(t *testing.T) {
		e := testEnemy(4.5, 5.5)
		e.Kill()
		e.DeathElapsed = 0.25
		s := &recordingSurface{}
		f := r.Render(s, &Scene{Grid: g, Viewer: v, Enemies: []*monster.Enemy{e}})

		if len(s.texOpsOf(frames[2])) == 0 {
			t.Error("expected the third death frame to be drawn")
		}
		if len(f.Visible) != 0 {
			t.Errorf("dead enemies must not be hit-testable, got %+v", f.Visible)
		}
	})

	t.Run("flashing enemy glows under its texture", func(t *testing.T) {
		e := testEnemy(4.5, 5.5)
		e.FlashTimer = 0.05
		s := &recordingSurface{}
		r.Render(s, &Scene{Grid: g, Viewer: v, Enemies: []*monster.Enemy{e}})

		glow := s.linesOf(FlashGlow)
		tex := s.texOpsOf(alive)
		if len(glow) == 0 || len(glow) != len(tex) {
			t.Fatalf("expected one glow line per textured column, got %d glow and %d texture", len(glow), len(tex))
		}
		if glow[0].y0 != tex[0].y-2 || glow[0].y1 != tex[0].y+tex[0].h-1+2 {
			t.Errorf("glow %+v should extend 2px past texture %+v", glow[0], tex[0])
		}
	})

	t.Run("no textures falls back to flat gray corpse", func(t *testing.T) {
		flat := NewRenderer(cfg, Textures{}, nil)
		e := testEnemy(4.5, 5.5)
		e.Kill()
		s := &recordingSurface{}
		flat.Render(s, &Scene{Grid: g, Viewer: v, Enemies: []*monster.Enemy{e}})
		if len(s.linesOf(monster.ColorDead)) == 0 {
			t.Error("expected dark gray corpse columns")
		}
	})
}

func TestDeathFrame(t *testing.T) {
	tests := []struct {
		elapsed, frameTime float64
		frames, want       int
	}{
		{0, 0.12, 4, 0},
		{0.13, 0.12, 4, 1},
		{10, 0.12, 4, 3},
		{1, 0, 3, 2},
		{1, 0.12, 0, 0},
	}
	for _, tt := range tests {
		if got := DeathFrame(tt.elapsed, tt.frameTime, tt.frames); got != tt.want {
			t.Errorf("DeathFrame(%v, %v, %d) = %d, want %d", tt.elapsed, tt.frameTime, tt.frames, got, tt.want)
		}
	}
}

func TestPickupBillboards(t *testing.T) {
	cfg := testConfig()
	rifle := &fakeTexture{"rifle", 48, 32}
	r := NewRenderer(cfg, Textures{Pickups: map[string]Texture{"weapon_rifle": rifle}}, nil)
	g := roomGrid(14, 11, nil)
	v := NewViewer(1.5, 5.5, 0, cfg.GetFOV(), 320)

	t.Run("too close is skipped", func(t *testing.T) {
		ammo := items.NewAmmoPickup(1.65, 5.5, items.AmmoLight)
		s := &recordingSurface{}
		r.Render(s, &Scene{Grid: g, Viewer: v, Pickups: []items.Pickup{ammo}})
		if n := len(s.linesOf(ammo.Color())); n != 0 {
			t.Errorf("pickup nearer than the minimum depth drew %d columns", n)
		}
	})

	t.Run("weapon sits on the floor with a rarity glow", func(t *testing.T) {
		pk := items.NewWeaponPickup(4.5, 5.5, items.WeaponRifle, items.RarityRare)
		s := &recordingSurface{}
		r.Render(s, &Scene{Grid: g, Viewer: v, Pickups: []items.Pickup{pk}})

		tex := s.texOpsOf(rifle)
		if len(tex) != 33 {
			t.Fatalf("expected 33 textured columns, got %d", len(tex))
		}
		first, last := tex[0], tex[len(tex)-1]
		if first.x != 144 || first.y != 114 || first.h != 33 {
			t.Errorf("unexpected first column %+v", first)
		}
		if first.srcX != 0 || first.srcH != 32 {
			t.Errorf("first column should sample texture x=0 full height, got %+v", first)
		}
		if want := 32.0 / 33.0 * 47; math.Abs(last.srcX-want) > 1e-9 {
			t.Errorf("last column srcX = %f, want %f", last.srcX, want)
		}
		if len(s.linesOf(items.RarityRare.GlowColor())) != 33 {
			t.Errorf("expected rare glow on every column")
		}
	})
}

func TestChestFallbackColors(t *testing.T) {
	cfg := testConfig()
	r := NewRenderer(cfg, Textures{}, nil)
	g := roomGrid(14, 11, nil)
	v := NewViewer(1.5, 5.5, 0, cfg.GetFOV(), 320)

	s := &recordingSurface{}
	r.Render(s, &Scene{Grid: g, Viewer: v, Chests: []world.Chest{
		{X: 4.5, Y: 5.5, Radius: world.ChestRadius},
		{X: 6.5, Y: 4.5, Radius: world.ChestRadius, Opened: true},
	}})
	if len(s.linesOf(Gold)) == 0 {
		t.Error("closed chest should be gold")
	}
	if len(s.linesOf(Yellow)) == 0 {
		t.Error("opened chest should be yellow")
	}
}

func TestSpritesBehindViewerSkipped(t *testing.T) {
	cfg := testConfig()
	r := NewRenderer(cfg, Textures{}, nil)
	s := &recordingSurface{}
	f := r.Render(s, &Scene{
		Grid:    roomGrid(14, 11, nil),
		Viewer:  NewViewer(6.5, 5.5, 0, cfg.GetFOV(), 320),
		Enemies: []*monster.Enemy{testEnemy(3.5, 5.5), testEnemy(6.5, 5.5)},
	})
	if len(f.Visible) != 0 {
		t.Errorf("enemies behind or at the viewer should not project, got %+v", f.Visible)
	}
}
