package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini is a Generator backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// Ensure Gemini implements Generator.
var _ Generator = (*Gemini)(nil)

// NewGemini creates a Gemini-backed Generator.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

// Generate implements Generator.
func (g *Gemini) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	temp := opts.Temperature

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: opts.MaxOutputTokens,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}

	return text, nil
}
