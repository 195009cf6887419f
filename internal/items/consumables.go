package items

// ConsumableType is a slot item that is channeled and then applied
type ConsumableType int

const (
	HealthSmall ConsumableType = iota
	HealthBig
	ShieldSmall
	ShieldBig
)

// ConsumableDefinition describes one consumable's effect and handling.
type ConsumableDefinition struct {
	Name        string
	Heal        int     // hit points restored
	Shield      int     // shield restored
	Cap         int     // stat ceiling this consumable heals up to
	MaxStack    int     // max units per slot
	ChannelTime float64 // seconds between starting use and the effect
}

// Player stat ceilings. Small consumables stop at a lower cap.
const (
	PlayerMaxHP     = 100
	PlayerMaxShield = 100
	SmallHealthCap  = 75
	SmallShieldCap  = 50
)

var consumableDefinitions = map[ConsumableType]ConsumableDefinition{
	HealthSmall: {Name: "Small Health", Heal: 20, Cap: SmallHealthCap, MaxStack: 15, ChannelTime: 2.5},
	HealthBig:   {Name: "Big Health", Heal: 100, Cap: PlayerMaxHP, MaxStack: 3, ChannelTime: 10.0},
	ShieldSmall: {Name: "Small Shield", Shield: 25, Cap: SmallShieldCap, MaxStack: 6, ChannelTime: 2.5},
	ShieldBig:   {Name: "Big Shield", Shield: 50, Cap: PlayerMaxShield, MaxStack: 3, ChannelTime: 3.5},
}

func GetConsumableDefinition(c ConsumableType) ConsumableDefinition {
	return consumableDefinitions[c]
}

// Key is the texture table key for the consumable's floor pickup.
func (c ConsumableType) Key() string {
	switch c {
	case HealthBig:
		return "health_big"
	case ShieldSmall:
		return "shield_small"
	case ShieldBig:
		return "shield_big"
	}
	return "health_small"
}

// IsShield reports whether the consumable restores shield rather than HP.
func (c ConsumableType) IsShield() bool {
	return c == ShieldSmall || c == ShieldBig
}
