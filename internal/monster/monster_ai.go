package monster

import (
	"sort"

	"gridshot/internal/character"
	"gridshot/internal/config"
	"gridshot/internal/event"
	"gridshot/pkg/logger"
)

// CollisionChecker is the movement and perception oracle enemies consult.
// collision.CollisionSystem satisfies it.
type CollisionChecker interface {
	CanMoveX(nx, y, radius float64) bool
	CanMoveY(x, ny, radius float64) bool
	CheckLineOfSight(x1, y1, x2, y2 float64) bool
}

// chaseEpsilon is the distance under which a chasing enemy stops steering.
const chaseEpsilon = 1e-4

// UpdateEnemies advances every enemy by dt: timers, death, perception,
// movement and attacks against the player. The slice is reordered farthest
// first so that iteration order is stable between runs.
func UpdateEnemies(enemies []*Enemy, player *character.Player, dt float64, cfg config.EnemyAIConfig, cc CollisionChecker, sink event.Sink) {
	if sink == nil {
		sink = event.Discard{}
	}

	sort.SliceStable(enemies, func(i, j int) bool {
		return distSq(enemies[i], player) > distSq(enemies[j], player)
	})

	for _, e := range enemies {
		e.WeaponCooldown = max(e.WeaponCooldown-dt, 0)
		e.FlashTimer = max(e.FlashTimer-dt, 0)

		if e.HP <= 0 {
			e.Kill()
		}
		if e.State == StateDead {
			e.DeathElapsed += dt
			continue
		}

		dist := player.DistanceTo(e.X, e.Y)
		if e.State == StateIdle && dist < cfg.DetectRadius && cc.CheckLineOfSight(e.X, e.Y, player.X, player.Y) {
			e.State = StateChase
			logger.Component("monster").WithField("dist", dist).Debug("enemy spotted player")
		}

		if e.State == StateChase {
			e.chase(player, dist, dt, cfg, cc, sink)
		}
	}
}

func (e *Enemy) chase(player *character.Player, dist, dt float64, cfg config.EnemyAIConfig, cc CollisionChecker, sink event.Sink) {
	var dirX, dirY float64
	if dist > chaseEpsilon {
		dirX = (player.X - e.X) / dist
		dirY = (player.Y - e.Y) / dist
	}

	r := cfg.CollisionRadius
	if nx := e.X + dirX*e.Speed*dt; cc.CanMoveX(nx, e.Y, r) {
		e.X = nx
	}
	if ny := e.Y + dirY*e.Speed*dt; cc.CanMoveY(e.X, ny, r) {
		e.Y = ny
	}

	dist = player.DistanceTo(e.X, e.Y)

	if dist < cfg.MeleeRange {
		hurtPlayer(player, int(cfg.MeleeDPS*dt), sink)
	}

	if dist <= cfg.ShootRange && e.WeaponCooldown <= 0 && cc.CheckLineOfSight(e.X, e.Y, player.X, player.Y) {
		hurtPlayer(player, e.Weapon.Damage, sink)
		e.WeaponCooldown = e.Weapon.FireInterval
		e.FlashTimer = cfg.ShotFlash
	}
}

func hurtPlayer(player *character.Player, dmg int, sink event.Sink) {
	res := player.TakeDamage(dmg)
	switch {
	case res.Died:
		sink.Emit(event.Event{Kind: event.PlayerDied})
	case res.Took:
		sink.Emit(event.Event{Kind: event.PlayerHurt})
	}
}

func distSq(e *Enemy, p *character.Player) float64 {
	dx := e.X - p.X
	dy := e.Y - p.Y
	return dx*dx + dy*dy
}
