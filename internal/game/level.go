package game

import (
	"gridshot/internal/config"
	"gridshot/internal/items"
	"gridshot/internal/monster"
	"gridshot/internal/world"
)

// Level is the mutable contents of a loaded map.
type Level struct {
	Grid        world.Grid
	Enemies     []*monster.Enemy
	Pickups     []items.Pickup
	Decorations []world.Decoration
	Chests      []world.Chest
}

// BuildLevel populates a level from the map spawns. Random spawns (h, s, m,
// w) are rolled here and may produce nothing.
func BuildLevel(md *world.MapData, cfg *config.Config, r *items.Roller) *Level {
	lvl := &Level{Grid: md.Grid}

	for _, s := range md.Spawns {
		switch s.Kind {
		case world.SpawnEnemy:
			lvl.Enemies = append(lvl.Enemies, monster.SpawnEnemy(s.X, s.Y, cfg.EnemyAI, r))
		case world.SpawnDecoBlocking:
			lvl.Decorations = append(lvl.Decorations, world.Decoration{X: s.X, Y: s.Y, Radius: world.BlockingDecoRadius, Kind: world.DecoBlocking})
		case world.SpawnDecoGhost:
			lvl.Decorations = append(lvl.Decorations, world.Decoration{X: s.X, Y: s.Y, Radius: world.GhostDecoRadius, Kind: world.DecoGhost})
		case world.SpawnChest:
			lvl.Chests = append(lvl.Chests, world.Chest{X: s.X, Y: s.Y, Radius: world.ChestRadius})
		default:
			if pk, ok := spawnPickup(s, r); ok {
				lvl.Pickups = append(lvl.Pickups, pk)
			}
		}
	}
	return lvl
}

var (
	spawnAmmo = map[world.SpawnKind]items.AmmoType{
		world.SpawnAmmoLight:  items.AmmoLight,
		world.SpawnAmmoMedium: items.AmmoMedium,
		world.SpawnAmmoHeavy:  items.AmmoHeavy,
		world.SpawnAmmoShell:  items.AmmoShell,
		world.SpawnAmmoRocket: items.AmmoRocket,
	}
	spawnWeapons = map[world.SpawnKind]items.WeaponType{
		world.SpawnWeaponPistol:  items.WeaponPistol,
		world.SpawnWeaponSMG:     items.WeaponSMG,
		world.SpawnWeaponRifle:   items.WeaponRifle,
		world.SpawnWeaponShotgun: items.WeaponShotgun,
		world.SpawnWeaponRocket:  items.WeaponRocketLauncher,
	}
)

// spawnPickup resolves a pickup spawn. Weapons placed on the map are always
// common; random weapons roll their rarity.
func spawnPickup(s world.Spawn, r *items.Roller) (items.Pickup, bool) {
	if a, ok := spawnAmmo[s.Kind]; ok {
		return items.NewAmmoPickup(s.X, s.Y, a), true
	}
	if w, ok := spawnWeapons[s.Kind]; ok {
		return items.NewWeaponPickup(s.X, s.Y, w, items.RarityCommon), true
	}

	switch s.Kind {
	case world.SpawnHealthBig:
		return items.NewConsumablePickup(s.X, s.Y, items.HealthBig), true
	case world.SpawnShieldBig:
		return items.NewConsumablePickup(s.X, s.Y, items.ShieldBig), true
	case world.SpawnHealthRandom:
		return r.Health(s.X, s.Y)
	case world.SpawnShieldRandom:
		return r.Shield(s.X, s.Y)
	case world.SpawnAmmoRandom:
		return r.Ammo(s.X, s.Y)
	case world.SpawnWeaponRandom:
		return r.Weapon(s.X, s.Y)
	}
	return items.Pickup{}, false
}

// Blockers returns the movement obstacles of the level.
func (l *Level) Blockers() []world.Blocker {
	return world.Blockers(l.Decorations, l.Chests)
}

// EnemiesLeft counts living enemies.
func (l *Level) EnemiesLeft() int {
	return monster.CountAlive(l.Enemies)
}
