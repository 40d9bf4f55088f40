package domain

import (
	"time"
)

// Session holds the mutable state of one fraud-check conversation.
type Session struct {
	ID string
	// CurrentIndex points at the next unanswered question; equals the
	// catalog length once all questions are answered.
	CurrentIndex int
	// Answers maps question id to the stored answer text.
	Answers map[string]string
	// RetryCount counts consecutive off-topic answers to the current question.
	RetryCount int
	// Completed is set once the risk analysis has been produced.
	Completed bool
	CreatedAt time.Time
}

// NewSession returns a fresh session positioned at the first question.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Answers:   make(map[string]string),
		CreatedAt: now,
	}
}

// Expired reports whether the session has outlived the retention window.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return s.CreatedAt.Before(now.Add(-ttl))
}

// Clone returns a deep copy, so callers can read state without holding
// any store lock.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Answers = make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	return &cp
}
