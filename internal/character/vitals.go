package character

// Vitals is the hit point and shield pool shared by the player and enemies.
type Vitals struct {
	HP     int
	Shield int
}

// DamageResult reports what a TakeDamage call did.
// Died is true only on the call that moved HP from positive to zero.
type DamageResult struct {
	Took bool
	Died bool
}

func (v Vitals) Alive() bool { return v.HP > 0 }

// TakeDamage drains the shield first and the remainder from HP, flooring HP
// at zero. Non-positive damage is ignored.
func (v *Vitals) TakeDamage(dmg int) DamageResult {
	if dmg <= 0 {
		return DamageResult{}
	}

	hpBefore, shieldBefore := v.HP, v.Shield
	wasAlive := hpBefore > 0

	absorbed := min(v.Shield, dmg)
	v.Shield -= absorbed
	dmg -= absorbed

	if dmg > 0 {
		v.HP -= dmg
		if v.HP < 0 {
			v.HP = 0
		}
	}

	return DamageResult{
		Took: v.HP != hpBefore || v.Shield != shieldBefore,
		Died: wasAlive && v.HP <= 0,
	}
}
