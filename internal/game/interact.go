package game

import (
	"math"

	"gridshot/internal/character"
	"gridshot/internal/event"
	"gridshot/internal/items"
)

// InteractRange is how close the player must stand to open a chest or pick
// something up.
const InteractRange = 0.6

// Interact opens every closed chest in range, spilling its loot, then
// collects every unlocked pickup in range into the player's inventory.
// Items displaced from the selected slot are dropped back on the floor.
func (l *Level) Interact(p *character.Player, r *items.Roller, sink event.Sink) (opened, collected int) {
	for i := range l.Chests {
		c := &l.Chests[i]
		if c.Opened || p.DistanceTo(c.X, c.Y) > InteractRange {
			continue
		}
		c.Opened = true
		l.Pickups = append(l.Pickups, r.ChestLoot(c.X, c.Y)...)
		sink.Emit(event.Event{Kind: event.ChestOpened})
		opened++
	}

	kept := l.Pickups[:0]
	var drops []items.Pickup
	for _, pk := range l.Pickups {
		if pk.SpawnLock > 0 || p.DistanceTo(pk.X, pk.Y) > InteractRange {
			kept = append(kept, pk)
			continue
		}
		ok, dropped := p.Collect(pk, r)
		drops = append(drops, dropped...)
		if !ok {
			kept = append(kept, pk)
			continue
		}
		collected++
		sink.Emit(event.Event{Kind: event.ItemCollected, Weapon: pk.Weapon})
	}
	l.Pickups = append(kept, drops...)
	return opened, collected
}

// TickPickups counts down the spawn lock of dropped items.
func (l *Level) TickPickups(dt float64) {
	for i := range l.Pickups {
		l.Pickups[i].SpawnLock = math.Max(l.Pickups[i].SpawnLock-dt, 0)
	}
}
