package character

import (
	"gridshot/internal/items"
)

// SlotKind tells whether a belt slot holds a weapon or a consumable stack
type SlotKind int

const (
	SlotWeapon SlotKind = iota
	SlotConsumable
)

// Slot is one belt slot. Weapon fields are meaningful for SlotWeapon,
// consumable fields for SlotConsumable.
type Slot struct {
	Kind SlotKind

	Weapon       items.Weapon
	Mag          int
	FireCooldown float64
	Reloading    bool
	ReloadLeft   float64

	Consumable items.ConsumableType
	Count      int
	Using      bool
	Channel    float64 // seconds left before the consumable applies
}

func NewWeaponSlot(w items.Weapon) *Slot {
	return &Slot{Kind: SlotWeapon, Weapon: w, Mag: w.MagSize}
}

func NewConsumableSlot(c items.ConsumableType, count int) *Slot {
	return &Slot{Kind: SlotConsumable, Consumable: c, Count: max(count, 1)}
}

// FireResult is what pulling the trigger did this frame
type FireResult int

const (
	FireBlocked FireResult = iota // cooling down, reloading, or nothing to fire
	FireShot                      // a round left the magazine
	FireReload                    // magazine was empty and a reload started
)

// SelectedSlot returns the active slot, or nil for empty hands or an empty slot.
func (p *Player) SelectedSlot() *Slot {
	if p.Selected < 0 || p.Selected >= SlotCount {
		return nil
	}
	return p.Slots[p.Selected]
}

// ActiveWeapon returns the selected slot when it holds a weapon.
func (p *Player) ActiveWeapon() (*Slot, bool) {
	s := p.SelectedSlot()
	if s == nil || s.Kind != SlotWeapon {
		return nil, false
	}
	return s, true
}

// Select switches the active slot (NoSlot for fists). Leaving a slot cancels
// its consumable channel or reload in progress.
func (p *Player) Select(i int) {
	if i < NoSlot || i >= SlotCount || i == p.Selected {
		return
	}
	if prev := p.SelectedSlot(); prev != nil {
		switch prev.Kind {
		case SlotConsumable:
			prev.Using = false
			prev.Channel = 0
		case SlotWeapon:
			prev.Reloading = false
			prev.ReloadLeft = 0
		}
	}
	p.Selected = i
}

// Tick advances player timers: punch cooldown, consumable channels on every
// slot, and the selected weapon's fire cooldown and reload.
func (p *Player) Tick(dt float64) {
	p.PunchCooldown = max(p.PunchCooldown-dt, 0)

	for i, s := range p.Slots {
		if s == nil || s.Kind != SlotConsumable {
			continue
		}
		if s.Using {
			s.Channel = max(s.Channel-dt, 0)
			if s.Channel <= 0 {
				p.finishConsumable(s)
			}
		}
		if s.Count <= 0 && !s.Using {
			p.Slots[i] = nil
		}
	}

	w, ok := p.ActiveWeapon()
	if !ok {
		return
	}
	w.FireCooldown = max(w.FireCooldown-dt, 0)
	if w.Reloading {
		w.ReloadLeft -= dt
		if w.ReloadLeft <= 0 {
			pool := &p.Ammo[w.Weapon.Ammo]
			take := min(max(w.Weapon.MagSize-w.Mag, 0), *pool)
			w.Mag += take
			*pool -= take
			w.Reloading = false
			w.ReloadLeft = 0
		}
	}
}

// StartReload begins reloading the selected weapon when the magazine is not
// full and the matching reserve is not empty.
func (p *Player) StartReload() bool {
	w, ok := p.ActiveWeapon()
	if !ok || w.Reloading {
		return false
	}
	if w.Mag >= w.Weapon.MagSize || p.Ammo[w.Weapon.Ammo] <= 0 {
		return false
	}
	w.Reloading = true
	w.ReloadLeft = w.Weapon.EffectiveReload()
	return true
}

// PullTrigger tries to fire the selected weapon. A shot consumes a round and
// starts the fire cooldown. An empty magazine starts a reload instead.
func (p *Player) PullTrigger() (items.Weapon, FireResult) {
	w, ok := p.ActiveWeapon()
	if !ok || w.Reloading || w.FireCooldown > 0 {
		return items.Weapon{}, FireBlocked
	}
	if w.Mag > 0 {
		w.Mag--
		w.FireCooldown = w.Weapon.FireInterval
		return w.Weapon, FireShot
	}
	if p.StartReload() {
		return w.Weapon, FireReload
	}
	return w.Weapon, FireBlocked
}

// CanPunch reports whether an empty-handed melee swing is ready.
func (p *Player) CanPunch() bool {
	return p.Selected == NoSlot && p.PunchCooldown <= 0
}

// UseConsumable starts channeling the selected consumable. Small heals are
// refused once the stat is already at their cap.
func (p *Player) UseConsumable() bool {
	s := p.SelectedSlot()
	if s == nil || s.Kind != SlotConsumable || s.Using || s.Count <= 0 {
		return false
	}
	def := items.GetConsumableDefinition(s.Consumable)
	switch s.Consumable {
	case items.HealthSmall:
		if p.HP >= def.Cap {
			return false
		}
	case items.ShieldSmall:
		if p.Shield >= def.Cap {
			return false
		}
	}
	s.Using = true
	s.Channel = def.ChannelTime
	return true
}

func (p *Player) finishConsumable(s *Slot) {
	if !s.Using || s.Count <= 0 {
		return
	}
	def := items.GetConsumableDefinition(s.Consumable)
	if s.Consumable.IsShield() {
		p.Shield = min(p.Shield+def.Shield, min(def.Cap, p.MaxShield))
	} else {
		p.HP = min(p.HP+def.Heal, min(def.Cap, p.MaxHP))
	}
	s.Count--
	s.Using = false
	s.Channel = 0
}

// Collect applies a floor pickup. Ammo always goes to the reserve. Items go
// into the selected slot, stacking onto a matching consumable or replacing
// what is there; replaced items are returned as drops around the player.
// Units that do not fit on a stack are returned as a drop at the pickup's
// own position. With empty hands selected, items are left on the floor.
func (p *Player) Collect(pk items.Pickup, r *items.Roller) (bool, []items.Pickup) {
	if pk.Kind == items.PickupAmmo {
		p.Ammo[pk.Ammo] += pk.Amount
		return true, nil
	}
	if p.Selected == NoSlot {
		return false, nil
	}

	var incoming *Slot
	switch pk.Kind {
	case items.PickupWeapon:
		incoming = NewWeaponSlot(items.GetWeaponDefinition(pk.Weapon).WithRarity(pk.Rarity))
		if pk.Used {
			incoming.Mag = min(max(pk.Mag, 0), incoming.Weapon.MagSize)
		}
	default:
		incoming = NewConsumableSlot(pk.Consumable, pk.Count)
	}

	cur := p.Slots[p.Selected]
	if cur == nil {
		p.Slots[p.Selected] = incoming
		return true, nil
	}

	if cur.Kind == SlotConsumable && incoming.Kind == SlotConsumable && cur.Consumable == incoming.Consumable {
		free := items.GetConsumableDefinition(cur.Consumable).MaxStack - cur.Count
		if free <= 0 {
			return false, nil
		}
		take := min(incoming.Count, free)
		cur.Count += take
		if rest := incoming.Count - take; rest > 0 {
			left := pk
			left.Count = rest
			return true, []items.Pickup{left}
		}
		return true, nil
	}

	drops := p.dropSlot(cur, r)
	p.Slots[p.Selected] = incoming
	return true, drops
}

func (p *Player) dropSlot(s *Slot, r *items.Roller) []items.Pickup {
	var out []items.Pickup
	place := func(pk items.Pickup) {
		pk.X = p.X + r.Offset(0.25)
		pk.Y = p.Y + r.Offset(0.25)
		pk.SpawnLock = items.SpawnLockTime
		out = append(out, pk)
	}

	switch s.Kind {
	case SlotWeapon:
		pk := items.NewWeaponPickup(0, 0, s.Weapon.Type, s.Weapon.Rarity)
		pk.Used = true
		pk.Mag = s.Mag
		place(pk)
	case SlotConsumable:
		for i := 0; i < s.Count; i++ {
			place(items.NewConsumablePickup(0, 0, s.Consumable))
		}
	}
	return out
}
