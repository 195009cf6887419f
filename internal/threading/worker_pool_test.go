package threading

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestParallelForVisitsEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name       string
		workers    int
		start, end int
	}{
		{"even split", 4, 0, 320},
		{"uneven split", 3, 0, 10},
		{"fewer items than workers", 8, 0, 3},
		{"offset range", 2, 5, 17},
		{"empty range", 4, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.workers)
			wp.Start()
			defer wp.Stop()

			hits := make([]int32, tt.end+1)
			wp.ParallelFor(tt.start, tt.end, func(i int) {
				atomic.AddInt32(&hits[i], 1)
			})

			for i, n := range hits {
				want := int32(0)
				if i >= tt.start && i < tt.end {
					want = 1
				}
				if n != want {
					t.Errorf("index %d visited %d times, want %d", i, n, want)
				}
			}
		})
	}
}

func TestParallelForReusable(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	var total atomic.Int64
	for frame := 0; frame < 50; frame++ {
		wp.ParallelFor(0, 100, func(int) { total.Add(1) })
	}
	if got := total.Load(); got != 5000 {
		t.Errorf("expected 5000 calls, got %d", got)
	}
}

func TestParallelForCancelled(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	wp.ParallelForWithContext(ctx, 0, 1000, func(int) { calls.Add(1) })
	if calls.Load() != 0 {
		t.Errorf("cancelled loop should not run, got %d calls", calls.Load())
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	if NewWorkerPool(0).NumWorkers() < 1 {
		t.Error("expected at least one worker")
	}
}

func TestStopTwice(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Start()
	wp.Stop()
	wp.Stop()
}
