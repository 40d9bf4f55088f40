package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/safepay/fraudcheck/internal/domain"
)

func TestPutGetSnapshot(t *testing.T) {
	m := NewMemory()
	now := time.Now()

	s := domain.NewSession("s1", now)
	s.Answers["payment_recipient"] = "Acme Corp"
	m.Put(s)

	got, ok := m.Get("s1")
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got.Answers["payment_recipient"] != "Acme Corp" {
		t.Errorf("expected stored answer, got %q", got.Answers["payment_recipient"])
	}

	// Mutating the snapshot must not change the stored session.
	got.Answers["payment_recipient"] = "changed"
	got.CurrentIndex = 99

	again, _ := m.Get("s1")
	if again.Answers["payment_recipient"] != "Acme Corp" {
		t.Error("snapshot mutation leaked into store")
	}
	if again.CurrentIndex != 0 {
		t.Errorf("expected current index 0, got %d", again.CurrentIndex)
	}

	// Mutating the original after Put must not change the store either.
	s.CurrentIndex = 3
	final, _ := m.Get("s1")
	if final.CurrentIndex != 0 {
		t.Error("caller mutation after Put leaked into store")
	}
}

func TestGetAbsent(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("missing"); ok {
		t.Error("expected absent session")
	}
}

func TestPutReplaces(t *testing.T) {
	m := NewMemory()
	now := time.Now()

	s := domain.NewSession("s1", now)
	s.CurrentIndex = 2
	m.Put(s)

	m.Put(domain.NewSession("s1", now))

	got, _ := m.Get("s1")
	if got.CurrentIndex != 0 {
		t.Errorf("expected replacement session, got index %d", got.CurrentIndex)
	}
}

func TestUpdate(t *testing.T) {
	m := NewMemory()
	m.Put(domain.NewSession("s1", time.Now()))

	ok := m.Update("s1", func(s *domain.Session) {
		s.RetryCount = 2
	})
	if !ok {
		t.Fatal("expected update to succeed")
	}

	got, _ := m.Get("s1")
	if got.RetryCount != 2 {
		t.Errorf("expected retry count 2, got %d", got.RetryCount)
	}

	if m.Update("missing", func(s *domain.Session) { s.RetryCount = 1 }) {
		t.Error("expected update on absent session to report false")
	}
}

func TestDelete(t *testing.T) {
	m := NewMemory()
	m.Put(domain.NewSession("s1", time.Now()))

	m.Delete("s1")
	if _, ok := m.Get("s1"); ok {
		t.Error("expected session removed")
	}

	// Deleting an absent id is a no-op.
	m.Delete("s1")
}

func TestSweep(t *testing.T) {
	m := NewMemory()
	now := time.Now()
	ttl := time.Hour

	m.Put(domain.NewSession("old", now.Add(-2*time.Hour)))
	m.Put(domain.NewSession("fresh", now.Add(-30*time.Minute)))

	removed := m.Sweep(now, ttl)

	if len(removed) != 1 || removed[0] != "old" {
		t.Errorf("expected [old] removed, got %v", removed)
	}
	if _, ok := m.Get("old"); ok {
		t.Error("expected expired session evicted")
	}
	if _, ok := m.Get("fresh"); !ok {
		t.Error("expected fresh session to survive")
	}
	if m.Len() != 1 {
		t.Errorf("expected store length 1, got %d", m.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := NewMemory()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n)
			m.Put(domain.NewSession(id, now.Add(-time.Duration(n)*time.Minute)))
			m.Update(id, func(s *domain.Session) {
				s.Answers["payment_recipient"] = "someone"
			})
			m.Get(id)
			m.Sweep(now, 10*time.Minute)
		}(i)
	}
	wg.Wait()

	// Sessions older than 10 minutes were eligible for eviction; the rest
	// must have survived every concurrent sweep.
	for i := 0; i < 10; i++ {
		if _, ok := m.Get(fmt.Sprintf("s%d", i)); !ok {
			t.Errorf("expected session s%d to survive", i)
		}
	}
}
