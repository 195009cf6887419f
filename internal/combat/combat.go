// Package combat resolves the player's attacks against the enemies visible
// in the current frame.
package combat

import (
	"gridshot/internal/character"
	"gridshot/internal/config"
	"gridshot/internal/event"
	"gridshot/internal/items"
	"gridshot/internal/monster"
	"gridshot/internal/render"
	"gridshot/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Resolver applies hitscan and melee attacks and keeps the kill count.
type Resolver struct {
	cfg   config.CombatConfig
	sink  event.Sink
	kills int
	log   *logrus.Entry
}

// NewResolver creates a resolver emitting feedback events to sink.
func NewResolver(cfg config.CombatConfig, sink event.Sink) *Resolver {
	if sink == nil {
		sink = event.Discard{}
	}
	return &Resolver{cfg: cfg, sink: sink, log: logger.Component("combat")}
}

// Kills returns how many enemies the player has killed.
func (r *Resolver) Kills() int { return r.kills }

// Fire resolves a shot from w through the crosshair column. The nearest
// enemy range covering the column that is in front of the wall there takes
// the weapon's rarity-adjusted damage. It returns the enemy index hit.
func (r *Resolver) Fire(f render.Frame, enemies []*monster.Enemy, w items.Weapon) (int, bool) {
	r.sink.Emit(event.Event{Kind: event.WeaponFired, Weapon: w.Type})

	center := f.Center()
	wall := f.WallDepth(center)
	idx, ok := nearest(f.Visible, center, func(v render.VisibleRange) bool {
		return v.Depth < wall
	})
	if !ok || idx >= len(enemies) || !enemies[idx].Alive() {
		return -1, false
	}
	r.hit(enemies, idx, w.EffectiveDamage())
	return idx, true
}

// Punch swings at the nearest living enemy under the crosshair within punch
// range. Walls do not block a punch. The cooldown only starts when the swing
// connects.
func (r *Resolver) Punch(f render.Frame, enemies []*monster.Enemy, p *character.Player) (int, bool) {
	if !p.CanPunch() {
		return -1, false
	}
	idx, ok := nearest(f.Visible, f.Center(), func(v render.VisibleRange) bool {
		return v.Depth <= r.cfg.PunchRange && v.Index < len(enemies) && enemies[v.Index].Alive()
	})
	if !ok {
		return -1, false
	}
	r.hit(enemies, idx, r.cfg.PunchDamage)
	p.PunchCooldown = r.cfg.PunchCooldown
	return idx, true
}

// nearest returns the index of the minimum-depth range covering column x
// that passes accept. The first range wins ties.
func nearest(ranges []render.VisibleRange, x int, accept func(render.VisibleRange) bool) (int, bool) {
	best, found := render.VisibleRange{}, false
	for _, v := range ranges {
		if !v.Covers(x) || !accept(v) {
			continue
		}
		if !found || v.Depth < best.Depth {
			best, found = v, true
		}
	}
	return best.Index, found
}

func (r *Resolver) hit(enemies []*monster.Enemy, idx, dmg int) {
	e := enemies[idx]
	res := e.TakeDamage(dmg)
	switch {
	case res.Died:
		e.Kill()
		r.kills++
		r.sink.Emit(event.Event{Kind: event.EnemyDied, Index: idx})
		r.log.WithFields(logrus.Fields{"enemy": idx, "kills": r.kills}).Debug("enemy killed")
	case res.Took:
		e.FlashTimer = r.cfg.HitFlash
		r.sink.Emit(event.Event{Kind: event.EnemyHurt, Index: idx})
	}
}
