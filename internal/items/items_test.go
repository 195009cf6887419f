package items

import (
	"testing"

	"gridshot/internal/config"
)

func TestEffectiveDamageByRarity(t *testing.T) {
	tests := []struct {
		weapon WeaponType
		rarity Rarity
		want   int
	}{
		{WeaponPistol, RarityCommon, 25},
		{WeaponPistol, RarityUncommon, 28}, // 27.5 rounds away from zero
		{WeaponPistol, RarityRare, 31},     // 30.5
		{WeaponPistol, RarityEpic, 34},
		{WeaponPistol, RarityLegendary, 38},
		{WeaponSMG, RarityLegendary, 18}, // 18.24
		{WeaponRocketLauncher, RarityRare, 146},
	}

	for _, tt := range tests {
		w := GetWeaponDefinition(tt.weapon).WithRarity(tt.rarity)
		if got := w.EffectiveDamage(); got != tt.want {
			t.Errorf("%s %s: damage %d, want %d", tt.rarity.Name(), w.Name, got, tt.want)
		}
	}
}

func TestEffectiveReloadShrinksWithRarity(t *testing.T) {
	base := GetWeaponDefinition(WeaponRifle)
	prev := base.EffectiveReload()
	for r := RarityUncommon; r <= RarityLegendary; r++ {
		got := base.WithRarity(r).EffectiveReload()
		if got >= prev {
			t.Errorf("%s reload %f should be below %f", r.Name(), got, prev)
		}
		prev = got
	}
}

func TestCatalogOrderAndStats(t *testing.T) {
	cat := Catalog()
	if len(cat) != WeaponTypeCount {
		t.Fatalf("expected %d weapons, got %d", WeaponTypeCount, len(cat))
	}
	for i, w := range cat {
		if w.Type != WeaponType(i) {
			t.Errorf("catalog[%d] has type %d", i, w.Type)
		}
		if w.Rarity != RarityCommon {
			t.Errorf("%s should default to common", w.Name)
		}
	}
	if cat[WeaponShotgun].Ammo != AmmoShell || cat[WeaponShotgun].MagSize != 6 {
		t.Errorf("unexpected shotgun definition: %+v", cat[WeaponShotgun])
	}
}

func TestGetWeaponTypeByName(t *testing.T) {
	for _, name := range []string{"smg", "SMG", " Rocket Launcher ", "rocket"} {
		if _, ok := GetWeaponTypeByName(name); !ok {
			t.Errorf("expected %q to resolve", name)
		}
	}
	if wt, ok := GetWeaponTypeByName("bfg"); ok || wt != WeaponPistol {
		t.Errorf("unknown names should fall back to pistol with ok=false")
	}
}

func TestPickupTextureKeys(t *testing.T) {
	tests := []struct {
		p    Pickup
		want string
	}{
		{NewConsumablePickup(0, 0, ShieldBig), "shield_big"},
		{NewAmmoPickup(0, 0, AmmoShell), "ammo"},
		{NewWeaponPickup(0, 0, WeaponShotgun, RarityEpic), "weapon_shotgun"},
	}
	for _, tt := range tests {
		if got := tt.p.TextureKey(); got != tt.want {
			t.Errorf("TextureKey() = %q, want %q", got, tt.want)
		}
	}

	if _, ok := NewAmmoPickup(0, 0, AmmoLight).Glow(); ok {
		t.Error("ammo should not glow")
	}
	glow, ok := NewWeaponPickup(0, 0, WeaponSMG, RarityLegendary).Glow()
	if !ok || glow.A != 130 {
		t.Errorf("legendary glow = %+v ok=%v", glow, ok)
	}
}

func TestRollerRespectsTables(t *testing.T) {
	table := config.Default().Spawns
	table.Seed = 42

	t.Run("always none", func(t *testing.T) {
		tb := table
		tb.HealthNone = 1
		tb.WeaponNone = 1
		tb.AmmoNone = 1
		r := NewRoller(tb)
		for i := 0; i < 50; i++ {
			if _, ok := r.Health(0, 0); ok {
				t.Fatal("health spawned with none=1")
			}
			if _, ok := r.Weapon(0, 0); ok {
				t.Fatal("weapon spawned with none=1")
			}
			if _, ok := r.Ammo(0, 0); ok {
				t.Fatal("ammo spawned with none=1")
			}
		}
	})

	t.Run("forced common", func(t *testing.T) {
		tb := table
		tb.Rarity = [5]float64{1, 0, 0, 0, 0}
		r := NewRoller(tb)
		for i := 0; i < 50; i++ {
			if got := r.Rarity(); got != RarityCommon {
				t.Fatalf("expected common, got %s", got.Name())
			}
		}
	})

	t.Run("ammo pack sizes", func(t *testing.T) {
		r := NewRoller(table)
		for i := 0; i < 200; i++ {
			p, ok := r.Ammo(1, 1)
			if !ok {
				continue
			}
			if p.Amount != p.Ammo.PackSize() {
				t.Fatalf("%s pack has %d rounds", p.Ammo.Name(), p.Amount)
			}
		}
	})
}

func TestChestLoot(t *testing.T) {
	table := config.Default().Spawns
	table.Seed = 7
	r := NewRoller(table)

	for i := 0; i < 100; i++ {
		loot := r.ChestLoot(5, 5)
		if len(loot) < 1 || len(loot) > 2 {
			t.Fatalf("expected 1-2 drops, got %d", len(loot))
		}
		for _, p := range loot {
			if p.X < 4.7 || p.X > 5.3 || p.Y < 4.7 || p.Y > 5.3 {
				t.Errorf("drop scattered too far: (%f,%f)", p.X, p.Y)
			}
			if p.SpawnLock != SpawnLockTime {
				t.Errorf("drop should be spawn locked, got %f", p.SpawnLock)
			}
		}
		if len(loot) == 2 && sameEntry(loot[0], loot[1]) {
			t.Error("chest drops should be distinct entries")
		}
	}
}

func sameEntry(a, b Pickup) bool {
	return a.Kind == b.Kind && a.Consumable == b.Consumable && a.Ammo == b.Ammo && a.Weapon == b.Weapon
}
