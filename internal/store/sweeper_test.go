package store

import (
	"context"
	"testing"
	"time"

	"github.com/safepay/fraudcheck/internal/domain"
)

func TestStartSweeperEvicts(t *testing.T) {
	m := NewMemory()
	m.Put(domain.NewSession("old", time.Now().Add(-time.Hour)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evicted := make(chan string, 1)
	StartSweeper(ctx, m, time.Minute, 10*time.Millisecond, func(id string) {
		evicted <- id
	})

	select {
	case id := <-evicted:
		if id != "old" {
			t.Errorf("expected eviction callback for old, got %q", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not evict expired session in time")
	}

	deadline := time.Now().Add(2 * time.Second)
	for m.Len() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("sweeper did not remove expired session in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStartSweeperStopsOnCancel(t *testing.T) {
	m := NewMemory()

	ctx, cancel := context.WithCancel(context.Background())
	StartSweeper(ctx, m, time.Minute, 10*time.Millisecond, nil)
	cancel()

	// A session added after cancellation must never be swept, even once
	// it is old enough.
	time.Sleep(30 * time.Millisecond)
	m.Put(domain.NewSession("s1", time.Now().Add(-time.Hour)))
	time.Sleep(50 * time.Millisecond)

	if m.Len() != 1 {
		t.Error("expected sweeper to stop after context cancellation")
	}
}
