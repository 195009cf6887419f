package items

import (
	"math/rand"
	"time"

	"gridshot/internal/config"
)

// Roller draws random spawn contents from the configured probability tables
type Roller struct {
	rng   *rand.Rand
	table config.SpawnConfig
}

// NewRoller seeds from table.Seed, or from the clock when the seed is zero.
func NewRoller(table config.SpawnConfig) *Roller {
	seed := table.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{rng: rand.New(rand.NewSource(seed)), table: table}
}

func (r *Roller) Float64() float64 { return r.rng.Float64() }

func (r *Roller) Intn(n int) int { return r.rng.Intn(n) }

// IntRange returns a value in [lo, hi].
func (r *Roller) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// Offset returns a value in [-spread, spread).
func (r *Roller) Offset(spread float64) float64 {
	return (r.rng.Float64()*2 - 1) * spread
}

// Health rolls a random health spawn: nothing, small or big.
func (r *Roller) Health(x, y float64) (Pickup, bool) {
	return r.tiered(x, y, r.table.HealthNone, r.table.HealthSmall, HealthSmall, HealthBig)
}

// Shield rolls a random shield spawn: nothing, small or big.
func (r *Roller) Shield(x, y float64) (Pickup, bool) {
	return r.tiered(x, y, r.table.ShieldNone, r.table.ShieldSmall, ShieldSmall, ShieldBig)
}

func (r *Roller) tiered(x, y, none, small float64, smallKind, bigKind ConsumableType) (Pickup, bool) {
	v := r.rng.Float64()
	switch {
	case v < none:
		return Pickup{}, false
	case v < none+small:
		return NewConsumablePickup(x, y, smallKind), true
	}
	return NewConsumablePickup(x, y, bigKind), true
}

func (r *Roller) Rarity() Rarity {
	v := r.rng.Float64()
	acc := 0.0
	for i, p := range r.table.Rarity[:RarityLegendary] {
		acc += p
		if v < acc {
			return Rarity(i)
		}
	}
	return RarityLegendary
}

func (r *Roller) WeaponType() WeaponType {
	return WeaponType(r.rng.Intn(WeaponTypeCount))
}

// Weapon rolls a random weapon spawn with a rolled rarity.
func (r *Roller) Weapon(x, y float64) (Pickup, bool) {
	if r.rng.Float64() < r.table.WeaponNone {
		return Pickup{}, false
	}
	wt := r.WeaponType()
	return NewWeaponPickup(x, y, wt, r.Rarity()), true
}

// Ammo rolls a random ammo spawn. Whatever probability mass is left after
// the configured tiers goes to rockets.
func (r *Roller) Ammo(x, y float64) (Pickup, bool) {
	v := r.rng.Float64()
	acc := r.table.AmmoNone
	if v < acc {
		return Pickup{}, false
	}
	tiers := []struct {
		p    float64
		ammo AmmoType
	}{
		{r.table.AmmoLight, AmmoLight},
		{r.table.AmmoMedium, AmmoMedium},
		{r.table.AmmoHeavy, AmmoHeavy},
		{r.table.AmmoShell, AmmoShell},
	}
	for _, t := range tiers {
		acc += t.p
		if v < acc {
			return NewAmmoPickup(x, y, t.ammo), true
		}
	}
	return NewAmmoPickup(x, y, AmmoRocket), true
}

var chestLootTable = []Pickup{
	{Kind: PickupConsumable, Consumable: HealthSmall, Count: 1},
	{Kind: PickupConsumable, Consumable: HealthBig, Count: 1},
	{Kind: PickupConsumable, Consumable: ShieldSmall, Count: 1},
	{Kind: PickupConsumable, Consumable: ShieldBig, Count: 1},
	{Kind: PickupAmmo, Ammo: AmmoLight, Amount: 30},
	{Kind: PickupAmmo, Ammo: AmmoMedium, Amount: 20},
	{Kind: PickupAmmo, Ammo: AmmoHeavy, Amount: 10},
	{Kind: PickupAmmo, Ammo: AmmoShell, Amount: 8},
	{Kind: PickupAmmo, Ammo: AmmoRocket, Amount: 2},
	{Kind: PickupWeapon, Weapon: WeaponPistol, Rarity: RarityUncommon},
	{Kind: PickupWeapon, Weapon: WeaponSMG, Rarity: RarityRare},
	{Kind: PickupWeapon, Weapon: WeaponRifle, Rarity: RarityRare},
	{Kind: PickupWeapon, Weapon: WeaponShotgun, Rarity: RarityEpic},
	{Kind: PickupWeapon, Weapon: WeaponRocketLauncher, Rarity: RarityLegendary},
}

// ChestLoot picks one or two distinct entries from the chest table and
// scatters them around the chest. Drops are spawn-locked briefly.
func (r *Roller) ChestLoot(x, y float64) []Pickup {
	n := r.IntRange(1, 2)
	order := r.rng.Perm(len(chestLootTable))
	out := make([]Pickup, 0, n)
	for _, i := range order[:n] {
		p := chestLootTable[i]
		p.X = x + r.Offset(0.3)
		p.Y = y + r.Offset(0.3)
		p.Radius = PickupRadius
		p.SpawnLock = SpawnLockTime
		out = append(out, p)
	}
	return out
}
