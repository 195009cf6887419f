package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	EnemyAI  EnemyAIConfig  `yaml:"enemy_ai"`
	Combat   CombatConfig   `yaml:"combat"`
	Sprites  SpritesConfig  `yaml:"sprites"`
	Spawns   SpawnConfig    `yaml:"spawns"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
	SkyColor     [3]int `yaml:"sky_color"`
	FloorColor   [3]int `yaml:"floor_color"`
	// RenderWorkers spreads wall casting over this many goroutines.
	// 0 or 1 casts on the game loop goroutine.
	RenderWorkers int `yaml:"render_workers"`
}

type CameraConfig struct {
	FieldOfViewDeg float64 `yaml:"field_of_view_deg"`
}

type MovementConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	RotationSpeed   float64 `yaml:"rotation_speed"`
	CollisionRadius float64 `yaml:"collision_radius"`
}

// EnemyAIConfig drives the Idle/Chase/Dead state machine.
// A zero MeleeRange disables contact damage.
type EnemyAIConfig struct {
	DetectRadius    float64 `yaml:"detect_radius"`
	MeleeRange      float64 `yaml:"melee_range"`
	MeleeDPS        float64 `yaml:"melee_dps"`
	ShootRange      float64 `yaml:"shoot_range"`
	CollisionRadius float64 `yaml:"collision_radius"`
	Speed           float64 `yaml:"speed"`
	HPMin           int     `yaml:"hp_min"`
	HPMax           int     `yaml:"hp_max"`
	ShotFlash       float64 `yaml:"shot_flash"`
}

type CombatConfig struct {
	PlayerMaxHP     int     `yaml:"player_max_hp"`
	PlayerMaxShield int     `yaml:"player_max_shield"`
	PunchDamage     int     `yaml:"punch_damage"`
	PunchRange      float64 `yaml:"punch_range"`
	PunchCooldown   float64 `yaml:"punch_cooldown"`
	HitFlash        float64 `yaml:"hit_flash"`
	StartingWeapon  string  `yaml:"starting_weapon"`
}

// SpriteScale sizes a class of floor-anchored billboards relative to the
// full projected height.
type SpriteScale struct {
	Scale    float64 `yaml:"scale"`
	MaxFrac  float64 `yaml:"max_frac"`
	MinDepth float64 `yaml:"min_depth"`
}

type SpritesConfig struct {
	Pickup         SpriteScale `yaml:"pickup"`
	DecoBlocking   SpriteScale `yaml:"deco_blocking"`
	DecoGhost      SpriteScale `yaml:"deco_ghost"`
	Chest          SpriteScale `yaml:"chest"`
	DeathFrameTime float64     `yaml:"death_frame_time"`
}

// SpawnConfig holds the roll tables used when populating random spawn
// points. Each group is a cumulative distribution over [0,1).
type SpawnConfig struct {
	HealthNone  float64    `yaml:"health_none"`
	HealthSmall float64    `yaml:"health_small"`
	ShieldNone  float64    `yaml:"shield_none"`
	ShieldSmall float64    `yaml:"shield_small"`
	WeaponNone  float64    `yaml:"weapon_none"`
	Rarity      [5]float64 `yaml:"rarity"`
	AmmoNone    float64    `yaml:"ammo_none"`
	AmmoLight   float64    `yaml:"ammo_light"`
	AmmoMedium  float64    `yaml:"ammo_medium"`
	AmmoHeavy   float64    `yaml:"ammo_heavy"`
	AmmoShell   float64    `yaml:"ammo_shell"`
	Seed        int64      `yaml:"seed"`
}

type AssetsConfig struct {
	MapFile      string            `yaml:"map_file"`
	WallTextures []string          `yaml:"wall_textures"`
	EnemyAlive   string            `yaml:"enemy_alive"`
	EnemyDeath   []string          `yaml:"enemy_death"`
	Pickups      map[string]string `yaml:"pickups"`
	ChestClosed  string            `yaml:"chest_closed"`
	ChestOpened  string            `yaml:"chest_opened"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
	// SFX optionally replaces synthesized cues with .wav/.ogg files, keyed by cue name.
	SFX map[string]string `yaml:"sfx"`
}

var GlobalConfig *Config

// LoadConfig loads the configuration from a YAML file and fills unset values
// with defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	GlobalConfig = cfg
	return cfg, nil
}

// ParseConfig decodes YAML bytes and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults replaces zero values with the stock tuning.
func (c *Config) ApplyDefaults() {
	d := &c.Display
	setInt(&d.ScreenWidth, 1280)
	setInt(&d.ScreenHeight, 720)
	setInt(&d.TPS, 60)
	if d.WindowTitle == "" {
		d.WindowTitle = "gridshot"
	}
	if d.SkyColor == [3]int{} {
		d.SkyColor = [3]int{0, 82, 172}
	}
	if d.FloorColor == [3]int{} {
		d.FloorColor = [3]int{76, 63, 47}
	}

	setFloat(&c.Camera.FieldOfViewDeg, 60)

	m := &c.Movement
	setFloat(&m.MoveSpeed, 3.0)
	setFloat(&m.RotationSpeed, 2.5)
	setFloat(&m.CollisionRadius, 0.2)

	ai := &c.EnemyAI
	setFloat(&ai.DetectRadius, 6.0)
	setFloat(&ai.ShootRange, 7.0)
	setFloat(&ai.CollisionRadius, 0.2)
	setFloat(&ai.Speed, 1.0)
	setInt(&ai.HPMin, 100)
	setInt(&ai.HPMax, 200)
	setFloat(&ai.ShotFlash, 0.08)

	cb := &c.Combat
	setInt(&cb.PlayerMaxHP, 100)
	setInt(&cb.PlayerMaxShield, 100)
	setInt(&cb.PunchDamage, 25)
	setFloat(&cb.PunchRange, 1.4)
	setFloat(&cb.PunchCooldown, 0.6)
	setFloat(&cb.HitFlash, 0.1)
	if cb.StartingWeapon == "" {
		cb.StartingWeapon = "pistol"
	}

	s := &c.Sprites
	setScale(&s.Pickup, SpriteScale{Scale: 0.35, MaxFrac: 0.18, MinDepth: 0.2})
	setScale(&s.DecoBlocking, SpriteScale{Scale: 0.70, MaxFrac: 0.35})
	setScale(&s.DecoGhost, SpriteScale{Scale: 0.55, MaxFrac: 0.35})
	setScale(&s.Chest, SpriteScale{Scale: 0.55, MaxFrac: 0.30})
	setFloat(&s.DeathFrameTime, 0.12)

	sp := &c.Spawns
	setFloat(&sp.HealthNone, 0.40)
	setFloat(&sp.HealthSmall, 0.40)
	setFloat(&sp.ShieldNone, 0.40)
	setFloat(&sp.ShieldSmall, 0.40)
	setFloat(&sp.WeaponNone, 0.40)
	if sp.Rarity == [5]float64{} {
		sp.Rarity = [5]float64{0.45, 0.25, 0.18, 0.09, 0.03}
	}
	setFloat(&sp.AmmoNone, 0.35)
	setFloat(&sp.AmmoLight, 0.20)
	setFloat(&sp.AmmoMedium, 0.18)
	setFloat(&sp.AmmoHeavy, 0.12)
	setFloat(&sp.AmmoShell, 0.10)

	if c.Assets.MapFile == "" {
		c.Assets.MapFile = "assets/map.txt"
	}

	setInt(&c.Audio.SampleRate, 44100)
	setFloat(&c.Audio.Volume, 0.5)
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetFOV returns the horizontal field of view in radians.
func (c *Config) GetFOV() float64 {
	return c.Camera.FieldOfViewDeg * math.Pi / 180
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setScale(v *SpriteScale, def SpriteScale) {
	setFloat(&v.Scale, def.Scale)
	setFloat(&v.MaxFrac, def.MaxFrac)
	setFloat(&v.MinDepth, def.MinDepth)
}
