package monster

// EnemyState is the enemy behavior state. Dead is terminal.
type EnemyState int

const (
	StateIdle EnemyState = iota
	StateChase
	StateDead
)

func (s EnemyState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateChase:
		return "chase"
	case StateDead:
		return "dead"
	}
	return "unknown"
}
