package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchStockTuning(t *testing.T) {
	cfg := Default()

	if cfg.GetScreenWidth() != 1280 || cfg.GetScreenHeight() != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if math.Abs(cfg.GetFOV()-math.Pi/3) > 1e-12 {
		t.Errorf("expected 60 degree FOV in radians, got %f", cfg.GetFOV())
	}
	if cfg.EnemyAI.DetectRadius != 6.0 || cfg.EnemyAI.ShootRange != 7.0 {
		t.Errorf("unexpected AI ranges: detect=%f shoot=%f", cfg.EnemyAI.DetectRadius, cfg.EnemyAI.ShootRange)
	}
	if cfg.EnemyAI.MeleeRange != 0 || cfg.EnemyAI.MeleeDPS != 0 {
		t.Errorf("melee should be disabled by default, got range=%f dps=%f", cfg.EnemyAI.MeleeRange, cfg.EnemyAI.MeleeDPS)
	}
	if cfg.Combat.PunchRange != 1.4 || cfg.Combat.PunchDamage != 25 {
		t.Errorf("unexpected punch tuning: range=%f damage=%d", cfg.Combat.PunchRange, cfg.Combat.PunchDamage)
	}
	if cfg.Sprites.Pickup.MinDepth != 0.2 {
		t.Errorf("expected pickup min depth 0.2, got %f", cfg.Sprites.Pickup.MinDepth)
	}
}

func TestParseConfigKeepsExplicitValues(t *testing.T) {
	data := []byte(`
display:
  screen_width: 640
  screen_height: 480
camera:
  field_of_view_deg: 90
enemy_ai:
  melee_range: 0.8
  melee_dps: 15
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.GetScreenWidth() != 640 || cfg.GetScreenHeight() != 480 {
		t.Errorf("explicit screen size overwritten: %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if math.Abs(cfg.GetFOV()-math.Pi/2) > 1e-12 {
		t.Errorf("expected 90 degree FOV, got %f rad", cfg.GetFOV())
	}
	if cfg.EnemyAI.MeleeRange != 0.8 || cfg.EnemyAI.MeleeDPS != 15 {
		t.Errorf("melee values lost: %+v", cfg.EnemyAI)
	}
	// Unset sections still receive defaults
	if cfg.Movement.MoveSpeed != 3.0 {
		t.Errorf("expected default move speed, got %f", cfg.Movement.MoveSpeed)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing config")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
}

func TestRepositoryConfigLoads(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("load config.yaml: %v", err)
	}
	if GlobalConfig != cfg {
		t.Error("LoadConfig should publish GlobalConfig")
	}
	if cfg.Assets.MapFile == "" {
		t.Error("expected a map file")
	}
	if cfg.Display.RenderWorkers > 1 {
		t.Errorf("shipped config should cast walls on the game loop, got %d render workers", cfg.Display.RenderWorkers)
	}
}
