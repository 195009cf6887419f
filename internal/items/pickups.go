package items

import "image/color"

// PickupKind discriminates what a floor pickup grants
type PickupKind int

const (
	PickupConsumable PickupKind = iota
	PickupAmmo
	PickupWeapon
)

// PickupRadius is the floor footprint shared by every pickup.
const PickupRadius = 0.35

// SpawnLockTime keeps freshly dropped items from being collected on the
// frame they appear.
const SpawnLockTime = 0.35

// Pickup is an item lying on the floor
type Pickup struct {
	X, Y   float64
	Radius float64
	Kind   PickupKind

	Consumable ConsumableType
	Count      int

	Ammo   AmmoType
	Amount int

	Weapon WeaponType
	Rarity Rarity
	// Used marks a weapon dropped from the belt; Mag then holds the rounds
	// left in it. Fresh weapons come with a full magazine.
	Used bool
	Mag  int

	SpawnLock float64
}

func NewConsumablePickup(x, y float64, c ConsumableType) Pickup {
	return Pickup{X: x, Y: y, Radius: PickupRadius, Kind: PickupConsumable, Consumable: c, Count: 1}
}

func NewAmmoPickup(x, y float64, a AmmoType) Pickup {
	return Pickup{X: x, Y: y, Radius: PickupRadius, Kind: PickupAmmo, Ammo: a, Amount: a.PackSize()}
}

func NewWeaponPickup(x, y float64, w WeaponType, r Rarity) Pickup {
	return Pickup{X: x, Y: y, Radius: PickupRadius, Kind: PickupWeapon, Weapon: w, Rarity: r}
}

// TextureKey names the texture used to draw this pickup. Every ammo type
// shares a single "ammo" texture.
func (p Pickup) TextureKey() string {
	switch p.Kind {
	case PickupAmmo:
		return "ammo"
	case PickupWeapon:
		return "weapon_" + p.Weapon.Key()
	}
	return p.Consumable.Key()
}

// Color is the flat fallback used when no texture is loaded.
func (p Pickup) Color() color.RGBA {
	switch p.Kind {
	case PickupAmmo:
		switch p.Ammo {
		case AmmoMedium:
			return color.RGBA{200, 200, 200, 255}
		case AmmoHeavy:
			return color.RGBA{80, 80, 80, 255}
		case AmmoShell:
			return color.RGBA{127, 106, 79, 255}
		case AmmoRocket:
			return color.RGBA{230, 41, 55, 255}
		}
		return color.RGBA{255, 255, 255, 255}
	case PickupWeapon:
		return p.Rarity.Color()
	}
	switch p.Consumable {
	case HealthBig:
		return color.RGBA{255, 203, 0, 255}
	case ShieldSmall:
		return color.RGBA{102, 191, 255, 255}
	case ShieldBig:
		return color.RGBA{0, 121, 241, 255}
	}
	return color.RGBA{0, 158, 47, 255}
}

// Glow returns the rarity halo for weapon pickups.
func (p Pickup) Glow() (color.RGBA, bool) {
	if p.Kind != PickupWeapon {
		return color.RGBA{}, false
	}
	return p.Rarity.GlowColor(), true
}
