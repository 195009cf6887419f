package items

import (
	"image/color"
	"math"
	"strings"
)

// AmmoType identifies which reserve pool a weapon draws from
type AmmoType int

const (
	AmmoLight AmmoType = iota
	AmmoMedium
	AmmoHeavy
	AmmoShell
	AmmoRocket
)

// AmmoTypeCount is the number of distinct reserve pools.
const AmmoTypeCount = 5

var ammoNames = [AmmoTypeCount]string{"Light", "Medium", "Heavy", "Shells", "Rockets"}

func (a AmmoType) Name() string {
	if a < 0 || int(a) >= AmmoTypeCount {
		return "Unknown"
	}
	return ammoNames[a]
}

// PackSize is the amount granted by one ammo pickup of this type.
func (a AmmoType) PackSize() int {
	switch a {
	case AmmoLight:
		return 30
	case AmmoMedium:
		return 20
	case AmmoHeavy:
		return 10
	case AmmoShell:
		return 8
	case AmmoRocket:
		return 2
	}
	return 0
}

// Rarity scales weapon damage up and reload time down.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) DamageMult() float64 {
	switch r {
	case RarityUncommon:
		return 1.10
	case RarityRare:
		return 1.22
	case RarityEpic:
		return 1.36
	case RarityLegendary:
		return 1.52
	}
	return 1.00
}

func (r Rarity) ReloadMult() float64 {
	switch r {
	case RarityUncommon:
		return 0.95
	case RarityRare:
		return 0.88
	case RarityEpic:
		return 0.80
	case RarityLegendary:
		return 0.70
	}
	return 1.00
}

func (r Rarity) Name() string {
	switch r {
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	}
	return "Common"
}

// Color is the solid rarity color used for HUD text and flat pickups.
func (r Rarity) Color() color.RGBA {
	switch r {
	case RarityUncommon:
		return color.RGBA{0, 158, 47, 255}
	case RarityRare:
		return color.RGBA{0, 121, 241, 255}
	case RarityEpic:
		return color.RGBA{200, 122, 255, 255}
	case RarityLegendary:
		return color.RGBA{255, 203, 0, 255}
	}
	return color.RGBA{200, 200, 200, 255}
}

// GlowColor is the translucent halo drawn behind weapon pickups.
func (r Rarity) GlowColor() color.RGBA {
	switch r {
	case RarityUncommon:
		return color.RGBA{70, 200, 90, 120}
	case RarityRare:
		return color.RGBA{80, 140, 255, 120}
	case RarityEpic:
		return color.RGBA{170, 80, 220, 120}
	case RarityLegendary:
		return color.RGBA{240, 200, 60, 130}
	}
	return color.RGBA{180, 180, 180, 110}
}

// WeaponType represents the firearm families in the catalog
type WeaponType int

const (
	WeaponPistol WeaponType = iota
	WeaponSMG
	WeaponRifle
	WeaponShotgun
	WeaponRocketLauncher
)

// WeaponTypeCount is the size of the catalog.
const WeaponTypeCount = 5

// Key is the stable lowercase identifier used in config and texture tables.
func (w WeaponType) Key() string {
	switch w {
	case WeaponSMG:
		return "smg"
	case WeaponRifle:
		return "rifle"
	case WeaponShotgun:
		return "shotgun"
	case WeaponRocketLauncher:
		return "rocket"
	}
	return "pistol"
}

// Weapon is a catalog entry combined with a rolled rarity
type Weapon struct {
	Type         WeaponType
	Name         string
	Damage       int     // base damage before rarity
	FireInterval float64 // seconds between shots
	MagSize      int
	ReloadTime   float64 // base reload before rarity
	Ammo         AmmoType
	Rarity       Rarity
}

// EffectiveDamage applies the rarity multiplier, rounded half away from zero.
func (w Weapon) EffectiveDamage() int {
	return int(math.Round(float64(w.Damage) * w.Rarity.DamageMult()))
}

func (w Weapon) EffectiveReload() float64 {
	return w.ReloadTime * w.Rarity.ReloadMult()
}

// WithRarity returns a copy of the weapon at the given rarity.
func (w Weapon) WithRarity(r Rarity) Weapon {
	w.Rarity = r
	return w
}

var weaponDefinitions = map[WeaponType]Weapon{
	WeaponPistol: {
		Type: WeaponPistol, Name: "Pistol",
		Damage: 25, FireInterval: 0.35, MagSize: 12, ReloadTime: 1.2, Ammo: AmmoLight,
	},
	WeaponSMG: {
		Type: WeaponSMG, Name: "SMG",
		Damage: 12, FireInterval: 0.08, MagSize: 30, ReloadTime: 1.6, Ammo: AmmoLight,
	},
	WeaponRifle: {
		Type: WeaponRifle, Name: "Rifle",
		Damage: 35, FireInterval: 0.50, MagSize: 10, ReloadTime: 2.0, Ammo: AmmoMedium,
	},
	WeaponShotgun: {
		Type: WeaponShotgun, Name: "Shotgun",
		Damage: 50, FireInterval: 0.80, MagSize: 6, ReloadTime: 1.8, Ammo: AmmoShell,
	},
	WeaponRocketLauncher: {
		Type: WeaponRocketLauncher, Name: "Rocket Launcher",
		Damage: 120, FireInterval: 1.20, MagSize: 1, ReloadTime: 2.3, Ammo: AmmoRocket,
	},
}

// GetWeaponDefinition returns the common-rarity catalog entry for a weapon type
func GetWeaponDefinition(weaponType WeaponType) Weapon {
	if def, ok := weaponDefinitions[weaponType]; ok {
		return def
	}
	return weaponDefinitions[WeaponPistol]
}

// Catalog returns every weapon definition in type order.
func Catalog() []Weapon {
	out := make([]Weapon, 0, WeaponTypeCount)
	for t := WeaponType(0); t < WeaponTypeCount; t++ {
		out = append(out, weaponDefinitions[t])
	}
	return out
}

// GetWeaponTypeByName resolves a config key or display name, case-insensitively.
func GetWeaponTypeByName(name string) (WeaponType, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for t := WeaponType(0); t < WeaponTypeCount; t++ {
		if n == t.Key() || n == strings.ToLower(weaponDefinitions[t].Name) {
			return t, true
		}
	}
	return WeaponPistol, false
}
