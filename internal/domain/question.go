// Package domain holds the core data records for the fraud-check conversation.
package domain

// Question is one entry of the fixed interrogation catalog.
type Question struct {
	// ID is the key the answer is stored under.
	ID string
	// Prompt is the exact text shown to the user.
	Prompt string
	// TopicLabel anchors the relevance check and the retry wording.
	TopicLabel string
}
