package llm

import (
	"fmt"

	"github.com/safepay/fraudcheck/internal/domain"
)

// notProvided stands in for any answer missing from the collected set.
const notProvided = "Not provided"

// ValidationPrompt renders the relevance-check prompt for one question.
// The model is asked for a strict true/false verdict.
func ValidationPrompt(q domain.Question, answer string) string {
	return fmt.Sprintf(`Evaluate if this user response is relevant to the fraud detection question asked.

Question context: %s
Question: %s
User response: %s

Return only "true" if the response is relevant and provides meaningful information related to the question, or "false" if it's off-topic, too vague, or doesn't address the question.

Consider these as VALID responses:
- Specific names, organizations, or entities for recipient questions
- Clear descriptions of services, products, or purposes for purpose questions
- Specific sources like "email from company X", "text message", "website link", "social media post" for source of payment link questions
- URLs or descriptions of websites/platforms for website verification questions

Consider these as INVALID responses:
- Generic responses like "yes", "no", "maybe", "I don't know"
- Single words that don't provide context
- Completely off-topic responses
- Responses that ask questions back instead of answering`,
		q.TopicLabel, q.Prompt, answer)
}

// AnalysisPrompt renders the risk-assessment prompt from the collected
// answers, in catalog order, with gaps rendered as "Not provided".
func AnalysisPrompt(answers map[string]string) string {
	get := func(id string) string {
		if v, ok := answers[id]; ok && v != "" {
			return v
		}
		return notProvided
	}

	return fmt.Sprintf(`You are a fraud detection expert. Analyze these payment details and provide a risk assessment.

Payment Details:
- Recipient: %s
- Purpose: %s
- Source of Payment Link: %s
- Website/Platform: %s

Provide a clear, concise fraud risk assessment (LOW, MEDIUM, or HIGH) with a brief explanation of key risk factors or positive indicators. Keep your response under 150 words and focus on actionable insights for the user.

Format your response as:
RISK LEVEL: [LOW/MEDIUM/HIGH]
ANALYSIS: [Your assessment and recommendations]`,
		get("payment_recipient"),
		get("purpose_of_payment"),
		get("source_of_payment_link"),
		get("website_verification"))
}
