package llm

import (
	"context"
	"strings"
)

// Mock is a deterministic Generator for local development without API
// credentials. It accepts every relevance check and returns a canned
// low-risk assessment for everything else.
type Mock struct{}

var _ Generator = (*Mock)(nil)

// NewMock creates a Mock generator.
func NewMock() *Mock {
	return &Mock{}
}

// Generate implements Generator.
func (m *Mock) Generate(_ context.Context, prompt string, _ Options) (string, error) {
	if strings.Contains(prompt, `Return only "true"`) {
		return "true", nil
	}
	return "RISK LEVEL: LOW\nANALYSIS: This is a mock assessment produced without contacting the model service. Configure GEMINI_API_KEY to get a real analysis.", nil
}
