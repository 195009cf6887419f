package game

import (
	"testing"

	"gridshot/internal/character"
	"gridshot/internal/event"
	"gridshot/internal/items"
	"gridshot/internal/world"
)

func openLevel() *Level {
	return &Level{Grid: world.NewGrid(4, 4, make([]int, 16))}
}

func TestInteractOpensChestInRange(t *testing.T) {
	cfg := testConfig()
	r := items.NewRoller(cfg.Spawns)
	lvl := openLevel()
	lvl.Chests = []world.Chest{
		{X: 1.5, Y: 1.5, Radius: world.ChestRadius},
		{X: 3.5, Y: 3.5, Radius: world.ChestRadius},
	}
	p := character.NewPlayer(1.5, 1.9, 0, cfg)
	rec := &recorder{}

	opened, collected := lvl.Interact(p, r, rec)
	if opened != 1 || collected != 0 {
		t.Fatalf("opened=%d collected=%d, want 1/0", opened, collected)
	}
	if !lvl.Chests[0].Opened || lvl.Chests[1].Opened {
		t.Errorf("only the near chest should open: %+v", lvl.Chests)
	}
	if len(lvl.Pickups) == 0 {
		t.Fatal("chest should spill loot")
	}
	for _, pk := range lvl.Pickups {
		if pk.SpawnLock <= 0 {
			t.Errorf("loot should be spawn locked: %+v", pk)
		}
	}
	if len(rec.events) != 1 || rec.events[0].Kind != event.ChestOpened {
		t.Errorf("expected one chest event, got %v", rec.kinds())
	}

	if opened, _ := lvl.Interact(p, r, rec); opened != 0 {
		t.Error("an opened chest cannot be opened again")
	}
}

func TestInteractCollectsInRange(t *testing.T) {
	cfg := testConfig()
	r := items.NewRoller(cfg.Spawns)
	lvl := openLevel()
	lvl.Pickups = []items.Pickup{
		items.NewAmmoPickup(2.0, 2.0, items.AmmoLight),
		items.NewAmmoPickup(2.7, 2.0, items.AmmoMedium),
	}
	locked := items.NewAmmoPickup(2.0, 2.2, items.AmmoShell)
	locked.SpawnLock = items.SpawnLockTime
	lvl.Pickups = append(lvl.Pickups, locked)

	p := character.NewPlayer(2.0, 2.0, 0, cfg)
	rec := &recorder{}

	_, collected := lvl.Interact(p, r, rec)
	if collected != 1 {
		t.Fatalf("expected one pickup collected, got %d", collected)
	}
	if len(lvl.Pickups) != 2 {
		t.Fatalf("out of range and locked pickups should stay, got %d", len(lvl.Pickups))
	}
	if p.Ammo[items.AmmoLight] != character.StartingAmmo[items.AmmoLight]+30 {
		t.Errorf("unexpected light reserve %d", p.Ammo[items.AmmoLight])
	}

	lvl.TickPickups(items.SpawnLockTime)
	if _, collected := lvl.Interact(p, r, rec); collected != 1 {
		t.Errorf("unlocked pickup should be collected, got %d", collected)
	}
	for _, e := range rec.events {
		if e.Kind != event.ItemCollected {
			t.Errorf("unexpected event %v", e.Kind)
		}
	}
}

func TestInteractDropsReplacedWeapon(t *testing.T) {
	cfg := testConfig()
	r := items.NewRoller(cfg.Spawns)
	lvl := openLevel()
	lvl.Pickups = []items.Pickup{items.NewWeaponPickup(2.0, 2.0, items.WeaponShotgun, items.RarityRare)}
	p := character.NewPlayer(2.0, 2.0, 0, cfg)

	if _, collected := lvl.Interact(p, r, &recorder{}); collected != 1 {
		t.Fatalf("expected shotgun to be taken")
	}
	if len(lvl.Pickups) != 1 {
		t.Fatalf("expected the pistol on the floor, got %+v", lvl.Pickups)
	}
	drop := lvl.Pickups[0]
	if drop.Weapon != items.WeaponPistol || drop.SpawnLock <= 0 {
		t.Errorf("expected a locked pistol drop, got %+v", drop)
	}

	// the drop is locked, so interacting again does not swap back
	if _, collected := lvl.Interact(p, r, &recorder{}); collected != 0 {
		t.Error("locked drop should not be collected")
	}
}
