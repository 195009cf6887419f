package character

import (
	"math"

	"gridshot/internal/collision"
	"gridshot/internal/config"
	"gridshot/internal/items"
)

// SlotCount is the number of quick slots on the player's belt.
const SlotCount = 5

// NoSlot is the Selected value for empty hands (punching).
const NoSlot = -1

// StartingAmmo is the reserve the player spawns with, indexed by AmmoType.
var StartingAmmo = [items.AmmoTypeCount]int{60, 40, 20, 12, 4}

// Player is the first-person viewer and the target of enemy attacks
type Player struct {
	X, Y  float64
	Angle float64

	Vitals
	MaxHP     int
	MaxShield int

	Ammo     [items.AmmoTypeCount]int
	Slots    [SlotCount]*Slot
	Selected int

	PunchCooldown float64
}

// NewPlayer creates a player at full health with no shield, carrying the
// configured starting weapon in slot 1.
func NewPlayer(x, y, angle float64, cfg *config.Config) *Player {
	p := &Player{
		X:         x,
		Y:         y,
		Angle:     angle,
		Vitals:    Vitals{HP: cfg.Combat.PlayerMaxHP},
		MaxHP:     cfg.Combat.PlayerMaxHP,
		MaxShield: cfg.Combat.PlayerMaxShield,
		Ammo:      StartingAmmo,
		Selected:  NoSlot,
	}

	wt, _ := items.GetWeaponTypeByName(cfg.Combat.StartingWeapon)
	p.Slots[0] = NewWeaponSlot(items.GetWeaponDefinition(wt))
	p.Selected = 0
	return p
}

// Direction returns the unit facing vector.
func (p *Player) Direction() (float64, float64) {
	return math.Cos(p.Angle), math.Sin(p.Angle)
}

// Rotate turns the player and wraps the angle into [-pi, pi].
func (p *Player) Rotate(delta float64) {
	p.Angle += delta
	if p.Angle > math.Pi {
		p.Angle -= 2 * math.Pi
	}
	if p.Angle < -math.Pi {
		p.Angle += 2 * math.Pi
	}
}

// Advance moves along the facing direction by distance (negative walks
// backwards), resolving each axis separately.
func (p *Player) Advance(cs *collision.CollisionSystem, distance, radius float64) {
	dx, dy := p.Direction()
	p.X, p.Y = cs.Move(p.X, p.Y, dx*distance, dy*distance, radius)
}

// DistanceTo returns the Euclidean distance from the player to (x,y).
func (p *Player) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}
