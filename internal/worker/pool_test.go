package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingRunner struct {
	mu  sync.Mutex
	ran []string
	ch  chan string
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{ch: make(chan string, 16)}
}

func (r *recordingRunner) Run(_ context.Context, assessmentID string) {
	r.mu.Lock()
	r.ran = append(r.ran, assessmentID)
	r.mu.Unlock()
	r.ch <- assessmentID
}

func (r *recordingRunner) waitFor(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	runner := newRecordingRunner()
	pool := NewPool(runner, 2, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	for _, id := range []string{"a-1", "a-2", "a-3"} {
		if err := pool.Submit(id); err != nil {
			t.Fatalf("submit %s: %v", id, err)
		}
	}
	runner.waitFor(t, 3)

	runner.mu.Lock()
	defer runner.mu.Unlock()
	if len(runner.ran) != 3 {
		t.Fatalf("expected 3 jobs run, got %d", len(runner.ran))
	}
}

func TestPool_SubmitShedsWhenSaturated(t *testing.T) {
	// Never started, so the queue fills up and stays full.
	pool := NewPool(newRecordingRunner(), 1, 2)

	if err := pool.Submit("a-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pool.Submit("a-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pool.Submit("a-3"); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestPool_WaitReturnsAfterCancel(t *testing.T) {
	runner := newRecordingRunner()
	pool := NewPool(runner, 3, 8)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		pool.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("workers did not stop after cancel")
	}
}

func TestPool_DefaultsApplied(t *testing.T) {
	pool := NewPool(newRecordingRunner(), 0, 0)
	if pool.workers != DefaultWorkers {
		t.Fatalf("expected %d workers, got %d", DefaultWorkers, pool.workers)
	}
	if cap(pool.jobs) != DefaultQueueCapacity {
		t.Fatalf("expected queue capacity %d, got %d", DefaultQueueCapacity, cap(pool.jobs))
	}
}
