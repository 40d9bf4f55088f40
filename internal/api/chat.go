package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/safepay/fraudcheck/internal/engine"
)

// ChatHandler handles the conversation endpoints.
type ChatHandler struct {
	engine *engine.Engine
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(e *engine.Engine) *ChatHandler {
	return &ChatHandler{engine: e}
}

// RegisterRoutes registers chat routes.
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/start", h.Start)
		r.Post("/respond", h.Respond)
		r.Get("/status/{sessionID}", h.Status)
	})
	r.Get("/health", h.Health)
}

type startRequest struct {
	SessionID string `json:"session_id"`
}

type startResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type respondRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type respondResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Completed     bool   `json:"completed"`
	FraudAnalysis string `json:"fraud_analysis,omitempty"`
}

type statusResponse struct {
	Success              bool   `json:"success"`
	SessionID            string `json:"session_id"`
	CurrentQuestionIndex int    `json:"current_question_index"`
	Completed            bool   `json:"completed"`
	AnswersCount         int    `json:"answers_count"`
}

// Start begins a new conversation session and returns the first question.
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		Error(w, http.StatusBadRequest, "session_id is required")
		return
	}

	out := h.engine.Start(req.SessionID)

	JSON(w, http.StatusOK, startResponse{
		Success:   true,
		Message:   out.Message,
		SessionID: out.SessionID,
	})
}

// Respond processes one user answer and returns the next question, a
// retry prompt, or the final assessment. An unknown session is signaled
// with success=false in the body, not an HTTP error.
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		Error(w, http.StatusBadRequest, "session_id is required")
		return
	}
	if req.Message == "" {
		Error(w, http.StatusBadRequest, "message is required")
		return
	}

	out := h.engine.Respond(r.Context(), req.SessionID, req.Message)

	JSON(w, http.StatusOK, respondResponse{
		Success:       out.Success,
		Message:       out.Message,
		Completed:     out.Completed,
		FraudAnalysis: out.FraudAnalysis,
	})
}

// Status reports the current session state, for debugging and the UI.
func (h *ChatHandler) Status(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, ok := h.engine.GetSession(sessionID)
	if !ok {
		Error(w, http.StatusNotFound, "session not found")
		return
	}

	JSON(w, http.StatusOK, statusResponse{
		Success:              true,
		SessionID:            session.ID,
		CurrentQuestionIndex: session.CurrentIndex,
		Completed:            session.Completed,
		AnswersCount:         len(session.Answers),
	})
}

// Health reports service liveness.
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "fraud-detection-chatbot",
	})
}
