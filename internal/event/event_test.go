package event

import "testing"

type recordingSink struct {
	got []Kind
}

func (r *recordingSink) Emit(e Event) { r.got = append(r.got, e.Kind) }

func TestQueueConsumeOrderAndReset(t *testing.T) {
	q := NewQueue()
	q.Emit(Event{Kind: EnemyHurt, Index: 2})
	q.Emit(Event{Kind: EnemyDied, Index: 2})
	q.Emit(Event{Kind: PlayerHurt})

	var seen []Kind
	q.Consume(func(e Event) { seen = append(seen, e.Kind) })

	want := []Kind{EnemyHurt, EnemyDied, PlayerHurt}
	if len(seen) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("event %d: got %s, want %s", i, seen[i], want[i])
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after consume, has %d", q.Len())
	}

	calls := 0
	q.Consume(func(Event) { calls++ })
	if calls != 0 {
		t.Errorf("second consume should see nothing, saw %d", calls)
	}
}

func TestFanoutDeliversToAll(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	var s Sink = Fanout{a, b, Discard{}}

	s.Emit(Event{Kind: PlayerDied})

	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("expected both sinks to receive the event: %v %v", a.got, b.got)
	}
}

func TestKindString(t *testing.T) {
	if EnemyDied.String() != "enemy_died" {
		t.Errorf("unexpected name %q", EnemyDied.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("unexpected name for out of range kind")
	}
}
