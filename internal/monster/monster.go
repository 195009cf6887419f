package monster

import (
	"image/color"

	"gridshot/internal/character"
	"gridshot/internal/config"
	"gridshot/internal/items"
)

// Flat colors used when an enemy has no texture to draw with.
var (
	ColorHealthy = color.RGBA{255, 161, 0, 255}
	ColorWounded = color.RGBA{255, 109, 194, 255}
	ColorFlash   = color.RGBA{253, 249, 0, 255}
	ColorDead    = color.RGBA{80, 80, 80, 255}
)

// woundedThreshold is the HP at or below which an enemy is drawn as wounded.
const woundedThreshold = 40

// Enemy is a hostile agent placed from a map spawn point. Enemies are never
// removed from the level; a dead enemy stays as a corpse.
type Enemy struct {
	X, Y float64
	character.Vitals
	Speed float64
	State EnemyState

	Weapon         items.Weapon
	WeaponCooldown float64
	FlashTimer     float64
	DeathElapsed   float64
}

// NewEnemy creates an idle enemy carrying the given weapon.
func NewEnemy(x, y float64, hp int, speed float64, weapon items.Weapon) *Enemy {
	return &Enemy{
		X:      x,
		Y:      y,
		Vitals: character.Vitals{HP: hp},
		Speed:  speed,
		State:  StateIdle,
		Weapon: weapon,
	}
}

// SpawnEnemy rolls hit points and a catalog weapon for a map spawn point.
func SpawnEnemy(x, y float64, cfg config.EnemyAIConfig, r *items.Roller) *Enemy {
	hp := r.IntRange(cfg.HPMin, cfg.HPMax)
	weapon := items.GetWeaponDefinition(r.WeaponType())
	return NewEnemy(x, y, hp, cfg.Speed, weapon)
}

// Alive reports whether the enemy can still act and be targeted.
func (e *Enemy) Alive() bool {
	return e.State != StateDead && e.HP > 0
}

// Kill forces the enemy into the terminal state and restarts its death
// animation. It is a no-op for an enemy that is already dead.
func (e *Enemy) Kill() {
	if e.State == StateDead {
		return
	}
	e.State = StateDead
	e.DeathElapsed = 0
}

// Color is the flat fallback color for the enemy's current condition.
func (e *Enemy) Color() color.RGBA {
	switch {
	case e.HP <= 0 || e.State == StateDead:
		return ColorDead
	case e.FlashTimer > 0:
		return ColorFlash
	case e.HP > woundedThreshold:
		return ColorHealthy
	}
	return ColorWounded
}

// CountAlive returns how many enemies are still alive.
func CountAlive(enemies []*Enemy) int {
	n := 0
	for _, e := range enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}
