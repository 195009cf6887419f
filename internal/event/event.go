// Package event carries one-shot gameplay notifications from the combat and
// AI passes to feedback consumers (audio, HUD).
package event

import "gridshot/internal/items"

// Kind identifies a gameplay notification
type Kind int

const (
	EnemyHurt Kind = iota
	EnemyDied
	PlayerHurt
	PlayerDied
	WeaponFired
	ReloadStarted
	ConsumableStarted
	ChestOpened
	ItemCollected
	Victory
)

func (k Kind) String() string {
	switch k {
	case EnemyHurt:
		return "enemy_hurt"
	case EnemyDied:
		return "enemy_died"
	case PlayerHurt:
		return "player_hurt"
	case PlayerDied:
		return "player_died"
	case WeaponFired:
		return "weapon_fired"
	case ReloadStarted:
		return "reload_started"
	case ConsumableStarted:
		return "consumable_started"
	case ChestOpened:
		return "chest_opened"
	case ItemCollected:
		return "item_collected"
	case Victory:
		return "victory"
	}
	return "unknown"
}

// Event is a single notification. Weapon is set for weapon events and
// Index names the enemy for enemy events.
type Event struct {
	Kind   Kind
	Weapon items.WeaponType
	Index  int
}

// Sink receives events as they happen.
type Sink interface {
	Emit(Event)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Emit(Event) {}

// Queue buffers a frame's events until a consumer drains them.
// Not safe for concurrent use; everything runs on the game loop goroutine.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

func (q *Queue) Emit(e Event) {
	q.events = append(q.events, e)
}

func (q *Queue) Len() int { return len(q.events) }

// Consume hands every pending event to fn in emission order and empties the
// queue. The backing buffer is reused.
func (q *Queue) Consume(fn func(Event)) {
	for _, e := range q.events {
		fn(e)
	}
	q.events = q.events[:0]
}

// Fanout forwards each event to every consumer in order.
type Fanout []Sink

func (f Fanout) Emit(e Event) {
	for _, s := range f {
		s.Emit(e)
	}
}
