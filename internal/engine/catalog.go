// Package engine implements the fraud-check conversation state machine.
package engine

import (
	"github.com/safepay/fraudcheck/internal/domain"
)

// questions is the fixed interrogation order for every session.
// It never changes at runtime.
var questions = []domain.Question{
	{
		ID:         "payment_recipient",
		Prompt:     "Who are you making this payment to? Please provide the name of the person, organization, or company.",
		TopicLabel: "payment_recipient",
	},
	{
		ID:         "purpose_of_payment",
		Prompt:     "What is the purpose of this payment? Please describe what you are paying for (service, product, investment, etc.)",
		TopicLabel: "purpose_of_payment",
	},
	{
		ID:         "source_of_payment_link",
		Prompt:     "Where did you get the payment link or payment instructions from? Please share the source (email, website, text message, social media post, etc.)",
		TopicLabel: "source_of_payment_link",
	},
	{
		ID:         "website_verification",
		Prompt:     "Please provide the website URL or platform where you are making this payment, or describe how you are accessing the payment page.",
		TopicLabel: "website_verification",
	},
}

// questionContexts maps question id to the phrase used in retry messages.
var questionContexts = map[string]string{
	"payment_recipient":      "who you are paying",
	"purpose_of_payment":     "what you are paying for",
	"source_of_payment_link": "where you got the payment link from",
	"website_verification":   "the website or platform you are using",
}

// Questions returns a copy of the catalog.
func Questions() []domain.Question {
	out := make([]domain.Question, len(questions))
	copy(out, questions)
	return out
}

// questionContext returns the retry-message phrase for a question.
// Unknown ids fall back to a generic phrase; the catalog is fixed, so in
// practice this branch is unreachable.
func questionContext(q domain.Question) string {
	if c, ok := questionContexts[q.ID]; ok {
		return c
	}
	return "this question"
}
