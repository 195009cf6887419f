package game

import (
	"image/color"
	"testing"

	"gridshot/internal/character"
	"gridshot/internal/monster"
	"gridshot/internal/render"
)

// nopSurface discards all drawing
type nopSurface struct{}

func (nopSurface) FillRect(x, y, w, h int, c color.RGBA) {}
func (nopSurface) VLine(x, y0, y1 int, c color.RGBA)      {}
func (nopSurface) TexColumn(tex render.Texture, srcX, srcY, srcH float64, dstX, dstY, dstH int, tint color.RGBA) {
}

const corridor = "" +
	"11111111\n" +
	"1P..E..1\n" +
	"11111111\n"

const tick = 1.0 / 60

func newTestGame(t *testing.T, src string) (*Game, *memStore) {
	t.Helper()
	store := newMemStore()
	g := NewGame(testConfig(), parseMap(t, src), Options{Records: NewRecordStore(store)})
	return g, store
}

func confirm() Intent {
	in := NoInput()
	in.Confirm = true
	return in
}

func fire() Intent {
	in := NoInput()
	in.Fire = true
	return in
}

func TestMenuWaitsForConfirm(t *testing.T) {
	g, _ := newTestGame(t, corridor)
	if g.State() != StateMenu {
		t.Fatalf("expected menu, got %v", g.State())
	}

	g.Step(tick, NoInput(), nopSurface{})
	if g.State() != StateMenu {
		t.Fatalf("idle input should stay on the menu, got %v", g.State())
	}

	g.Step(tick, confirm(), nopSurface{})
	if g.State() != StatePlaying {
		t.Fatalf("confirm should start, got %v", g.State())
	}
	if g.Player() == nil || g.Level() == nil {
		t.Fatal("start should build the level and the player")
	}
	if g.Player().X != 1.5 || g.Player().Y != 1.5 {
		t.Errorf("player not at spawn: (%f,%f)", g.Player().X, g.Player().Y)
	}
}

func TestShootingLastEnemyWins(t *testing.T) {
	g, store := newTestGame(t, corridor)
	g.Start()
	e := g.Level().Enemies[0]
	e.HP = 10

	g.Step(tick, fire(), nopSurface{})

	if e.Alive() {
		t.Fatalf("enemy in front should die, hp=%d", e.HP)
	}
	if g.Kills() != 1 {
		t.Errorf("expected 1 kill, got %d", g.Kills())
	}
	if g.State() != StateVictory {
		t.Fatalf("expected victory, got %v", g.State())
	}
	if g.lastRank != 1 || store.saves != 1 {
		t.Errorf("clear should be recorded: rank=%d saves=%d", g.lastRank, store.saves)
	}
	if !g.hud.killHit || g.hud.hitAlpha <= 0 {
		t.Error("hud should show a kill marker")
	}

	w, _ := g.Player().ActiveWeapon()
	if w.Mag != w.Weapon.MagSize-1 {
		t.Errorf("expected one round spent, mag=%d", w.Mag)
	}
}

func TestCombatRunsBeforeEnemies(t *testing.T) {
	g, _ := newTestGame(t, corridor)
	g.Start()
	g.Player().HP = 1
	g.Level().Enemies[0].HP = 10

	// the enemy sees the player and would shoot this tick if it were alive
	g.Step(tick, fire(), nopSurface{})

	if g.Player().HP != 1 {
		t.Errorf("dead enemy should not shoot, player hp=%d", g.Player().HP)
	}
	if g.State() != StateVictory {
		t.Errorf("expected victory, got %v", g.State())
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	g, store := newTestGame(t, corridor)
	g.Start()
	g.Player().HP = 1
	g.Level().Enemies[0].HP = 1000

	g.Step(tick, NoInput(), nopSurface{})

	if g.Level().Enemies[0].State != monster.StateChase {
		t.Errorf("enemy should chase, got %v", g.Level().Enemies[0].State)
	}
	if g.State() != StateDead {
		t.Fatalf("expected dead, got %v", g.State())
	}
	if store.saves != 0 {
		t.Error("a death should not be recorded")
	}
	if g.hud.damageAlpha <= 0 {
		t.Error("hud should flash on damage")
	}

	g.Step(tick, confirm(), nopSurface{})
	if g.State() != StatePlaying || g.Player().HP != g.Player().MaxHP {
		t.Errorf("confirm should restart with a fresh player, state=%v hp=%d", g.State(), g.Player().HP)
	}
	if g.Elapsed() != 0 {
		t.Errorf("restart should reset the clock, got %f", g.Elapsed())
	}
}

func TestEndScreenBackToMenu(t *testing.T) {
	g, _ := newTestGame(t, corridor)
	g.Start()
	g.Level().Enemies[0].HP = 1
	g.Step(tick, fire(), nopSurface{})
	if g.State() != StateVictory {
		t.Fatalf("expected victory, got %v", g.State())
	}

	in := NoInput()
	in.Menu = true
	g.Step(tick, in, nopSurface{})
	if g.State() != StateMenu {
		t.Errorf("expected menu, got %v", g.State())
	}
}

func TestPunchWithEmptyHands(t *testing.T) {
	g, _ := newTestGame(t, ""+
		"111111\n"+
		"1PE..1\n"+
		"111111\n")
	g.Start()
	e := g.Level().Enemies[0]
	e.HP = 1000
	hp := e.HP

	in := fire()
	in.Select = character.NoSlot
	g.Step(tick, in, nopSurface{})

	if e.HP != hp-g.config.Combat.PunchDamage {
		t.Errorf("expected a punch for %d, hp went %d -> %d", g.config.Combat.PunchDamage, hp, e.HP)
	}
	if g.Player().PunchCooldown <= 0 {
		t.Error("a landed punch should start the cooldown")
	}
}

func TestMovementAndTurning(t *testing.T) {
	// the enemy is walled off so the level stays in play
	g, _ := newTestGame(t, ""+
		"1111111111\n"+
		"1P.......1\n"+
		"1111111111\n"+
		"1E.......1\n"+
		"1111111111\n")
	g.Start()

	in := NoInput()
	in.Move = 1
	for i := 0; i < 30; i++ {
		g.Step(tick, in, nopSurface{})
	}
	moved := g.Player().X - 1.5
	want := g.config.GetMoveSpeed() * 30 * tick
	if moved < want*0.99 || moved > want*1.01 {
		t.Errorf("moved %f, want about %f", moved, want)
	}

	in = NoInput()
	in.Turn = 1
	g.Step(tick, in, nopSurface{})
	if g.Player().Angle <= 0 {
		t.Errorf("turning right should increase the angle, got %f", g.Player().Angle)
	}
}

func TestToggles(t *testing.T) {
	g, _ := newTestGame(t, corridor)
	g.Start()
	g.Level().Enemies[0].HP = 1000
	g.Player().HP = 1000

	in := NoInput()
	in.ToggleMap = true
	in.TogglePerf = true
	g.Step(tick, in, nopSurface{})

	if !g.hud.Minimap.Expanded || !g.hud.ShowPerf {
		t.Errorf("expected expanded map and perf line, got %v/%v", g.hud.Minimap.Expanded, g.hud.ShowPerf)
	}
}
