// Package audio turns gameplay events into short sound cues. Cues are
// synthesized at startup and may be replaced by files from the config.
package audio

import (
	"gridshot/internal/event"
	"gridshot/internal/items"
)

// Cue identifies one sound effect
type Cue int

const (
	CueShotPistol Cue = iota
	CueShotSMG
	CueShotRifle
	CueShotShotgun
	CueShotRocket
	CueReload
	CueConsume
	CuePlayerHurt
	CuePlayerDeath
	CueEnemyHurt
	CueEnemyDeath
	CueChest
	CuePickup
	CueVictory
	cueCount
)

var cueNames = [cueCount]string{
	"shot_pistol",
	"shot_smg",
	"shot_rifle",
	"shot_shotgun",
	"shot_rocket",
	"reload",
	"consume",
	"player_hurt",
	"player_death",
	"enemy_hurt",
	"enemy_death",
	"chest",
	"pickup",
	"victory",
}

// String is the cue's config key.
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// CueByName resolves a config key.
func CueByName(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

func shotCue(w items.WeaponType) Cue {
	switch w {
	case items.WeaponSMG:
		return CueShotSMG
	case items.WeaponRifle:
		return CueShotRifle
	case items.WeaponShotgun:
		return CueShotShotgun
	case items.WeaponRocketLauncher:
		return CueShotRocket
	}
	return CueShotPistol
}

// CueFor picks the sound for an event. Not every event makes a sound.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Kind {
	case event.WeaponFired:
		return shotCue(e.Weapon), true
	case event.ReloadStarted:
		return CueReload, true
	case event.ConsumableStarted:
		return CueConsume, true
	case event.PlayerHurt:
		return CuePlayerHurt, true
	case event.PlayerDied:
		return CuePlayerDeath, true
	case event.EnemyHurt:
		return CueEnemyHurt, true
	case event.EnemyDied:
		return CueEnemyDeath, true
	case event.ChestOpened:
		return CueChest, true
	case event.ItemCollected:
		return CuePickup, true
	case event.Victory:
		return CueVictory, true
	}
	return 0, false
}
