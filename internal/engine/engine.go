package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/safepay/fraudcheck/internal/domain"
	"github.com/safepay/fraudcheck/internal/llm"
	"github.com/safepay/fraudcheck/internal/store"
)

const (
	// maxRetries is the number of consecutive off-topic answers after
	// which the question is abandoned with a placeholder answer.
	maxRetries = 3
	// minAnswerLength rejects trivially short answers without calling
	// the model.
	minAnswerLength = 3

	validationMaxTokens = 10
	analysisMaxTokens   = 200
	analysisTemperature = 0.3
)

// Fixed response strings. The fallback assessment is contractual and
// returned verbatim whenever the analysis call fails.
const (
	placeholderAnswer   = "User unable to provide relevant answer after multiple attempts"
	analysisFallback    = "RISK LEVEL: UNKNOWN\nANALYSIS: Unable to complete fraud analysis due to technical issues. Please verify payment details independently and consult with your bank if you have concerns."
	msgSessionNotFound  = "Session not found. Please refresh and start again."
	msgAlreadyCompleted = "Thank you! Your fraud assessment has been completed."
	msgAnalysisIntro    = "Thank you for answering all the questions. Let me analyze this information for potential fraud indicators."
)

// Engine runs the question-answer-retry-complete state machine over a
// session store, calling the model service for relevance verdicts and the
// final risk assessment.
type Engine struct {
	store   store.Store
	gen     llm.Generator
	timeout time.Duration
	now     func() time.Time

	// locks serializes concurrent calls on the same session id so two
	// interleaved advances cannot corrupt the session. The store's own
	// lock is never held across a model call.
	locks sync.Map // session id -> *sync.Mutex
}

// New creates an Engine. timeout bounds each external model call.
func New(s store.Store, gen llm.Generator, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Engine{
		store:   s,
		gen:     gen,
		timeout: timeout,
		now:     time.Now,
	}
}

func (e *Engine) sessionLock(id string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ReleaseSession drops the serialization lock for a session that no
// longer exists, so evicted ids do not accumulate lock entries. The
// sweeper calls this for every id it removes.
func (e *Engine) ReleaseSession(sessionID string) {
	e.locks.Delete(sessionID)
}

// notFound reports an unknown session and releases its lock entry.
func (e *Engine) notFound(sessionID string) RespondResult {
	e.locks.Delete(sessionID)
	return RespondResult{Message: msgSessionNotFound}
}

// StartResult is the outcome of starting a conversation.
type StartResult struct {
	SessionID string
	Message   string
}

// Start creates a fresh session positioned at the first question,
// silently replacing any prior session with the same id, and returns the
// first question's prompt.
func (e *Engine) Start(sessionID string) StartResult {
	mu := e.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	e.store.Put(domain.NewSession(sessionID, e.now()))
	slog.Info("conversation started", "session_id", sessionID)

	return StartResult{
		SessionID: sessionID,
		Message:   questions[0].Prompt,
	}
}

// RespondResult is the outcome of processing one user answer.
type RespondResult struct {
	// Success is false only when the session does not exist.
	Success bool
	// Message carries the next question, a retry prompt, or an
	// acknowledgment.
	Message   string
	Completed bool
	// FraudAnalysis is set on the response that completes the session.
	FraudAnalysis string
}

// Respond processes one user answer: it validates relevance, retries or
// advances, and produces the risk assessment after the final answer.
func (e *Engine) Respond(ctx context.Context, sessionID, message string) RespondResult {
	mu := e.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	snap, ok := e.store.Get(sessionID)
	if !ok {
		return e.notFound(sessionID)
	}
	if snap.Completed || snap.CurrentIndex >= len(questions) {
		return RespondResult{Success: true, Message: msgAlreadyCompleted, Completed: true}
	}

	q := questions[snap.CurrentIndex]

	answer := message
	if !e.validate(ctx, message, q) {
		if snap.RetryCount+1 < maxRetries {
			if !e.store.Update(sessionID, func(s *domain.Session) { s.RetryCount++ }) {
				return e.notFound(sessionID)
			}
			return RespondResult{
				Success: true,
				Message: fmt.Sprintf("I need a more specific answer about %s. Could you please provide more details?", questionContext(q)),
			}
		}
		// Retries exhausted: record the placeholder and move on.
		answer = placeholderAnswer
	}

	var (
		final   bool
		answers map[string]string
		next    domain.Question
	)
	committed := e.store.Update(sessionID, func(s *domain.Session) {
		s.Answers[q.ID] = answer
		s.RetryCount = 0
		s.CurrentIndex++
		final = s.CurrentIndex >= len(questions)
		if final {
			answers = make(map[string]string, len(s.Answers))
			for k, v := range s.Answers {
				answers[k] = v
			}
		} else {
			next = questions[s.CurrentIndex]
		}
	})
	if !committed {
		// The session was evicted while the model call was in flight.
		return e.notFound(sessionID)
	}

	if !final {
		return RespondResult{Success: true, Message: next.Prompt}
	}

	analysis := e.analyze(ctx, answers)
	if !e.store.Update(sessionID, func(s *domain.Session) { s.Completed = true }) {
		// Evicted while the analysis was in flight. The caller still
		// gets the assessment it waited for; any later respond reports
		// the session as gone.
		e.locks.Delete(sessionID)
		slog.Warn("session evicted during analysis", "session_id", sessionID)
	}

	slog.Info("conversation completed", "session_id", sessionID)

	return RespondResult{
		Success:       true,
		Message:       msgAnalysisIntro,
		Completed:     true,
		FraudAnalysis: analysis,
	}
}

// GetSession returns a snapshot of the session, or false if absent.
// It never mutates state.
func (e *Engine) GetSession(sessionID string) (*domain.Session, bool) {
	return e.store.Get(sessionID)
}

// validate checks whether an answer is on topic for the question. Short
// answers are rejected locally; otherwise the model's verdict governs.
// If the model call fails the answer is accepted, so a service outage
// never traps the user in a retry loop.
func (e *Engine) validate(ctx context.Context, answer string, q domain.Question) bool {
	if len(strings.TrimSpace(answer)) < minAnswerLength {
		return false
	}

	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := e.gen.Generate(cctx, llm.ValidationPrompt(q, answer), llm.Options{
		MaxOutputTokens: validationMaxTokens,
		Temperature:     0,
	})
	if err != nil {
		slog.Error("relevance validation call failed, accepting answer",
			"question_id", q.ID,
			"timeout", errors.Is(err, context.DeadlineExceeded),
			"error", err)
		return true
	}

	return strings.EqualFold(strings.TrimSpace(out), "true")
}

// analyze produces the risk assessment text, substituting the fixed
// fallback assessment if the model call fails.
func (e *Engine) analyze(ctx context.Context, answers map[string]string) string {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := e.gen.Generate(cctx, llm.AnalysisPrompt(answers), llm.Options{
		MaxOutputTokens: analysisMaxTokens,
		Temperature:     analysisTemperature,
	})
	if err != nil {
		slog.Error("fraud analysis call failed, returning fallback assessment",
			"timeout", errors.Is(err, context.DeadlineExceeded),
			"error", err)
		return analysisFallback
	}

	return strings.TrimSpace(out)
}
