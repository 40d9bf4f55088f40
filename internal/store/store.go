// Package store provides session state storage for the conversation engine.
package store

import (
	"time"

	"github.com/safepay/fraudcheck/internal/domain"
)

// Store defines the interface for keeping conversation sessions.
//
// Get returns a snapshot copy; mutations go through Update so they commit
// atomically under the store's lock. All methods are safe for concurrent use.
type Store interface {
	// Put stores a session, replacing any existing session with the same id.
	Put(session *domain.Session)

	// Get retrieves a snapshot of the session, or false if absent.
	Get(id string) (*domain.Session, bool)

	// Update applies fn to the stored session under the store lock.
	// It returns false, without calling fn, if the session is absent.
	Update(id string, fn func(*domain.Session)) bool

	// Delete removes a session. Deleting an absent id is a no-op.
	Delete(id string)

	// Sweep removes every session older than ttl and returns the ids of
	// the removed sessions.
	Sweep(now time.Time, ttl time.Duration) []string

	// Len returns the number of stored sessions.
	Len() int
}
