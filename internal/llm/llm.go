// Package llm wraps the external language-model service behind a narrow
// text-generation interface.
package llm

import (
	"context"
)

// Options bound a single generation call.
type Options struct {
	// MaxOutputTokens caps the response length.
	MaxOutputTokens int32
	// Temperature controls sampling randomness; 0 requests determinism.
	Temperature float32
}

// Generator produces text from a prompt within the given limits.
// Implementations must honor ctx cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}
