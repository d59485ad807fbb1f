// Package llm implements the external text-generation collaborator using
// the official google.golang.org/genai SDK.
package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GeminiService implements domain.TextGenerator
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates a Gemini-backed text generator
func NewGeminiService(apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

// Generate implements domain.TextGenerator
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
