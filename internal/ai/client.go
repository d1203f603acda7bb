package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator is the contract for a remote generative model: one prompt in,
// one free-form text reply out. A nil TextGenerator means "not configured" and
// callers fall back to mock behavior.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient wraps the Google Gemini SDK behind TextGenerator
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// Ensure GeminiClient implements TextGenerator
var _ TextGenerator = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini-backed text generator
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Generate sends one prompt to the model and returns the raw text reply.
// No retry: a failed call surfaces as an error and the caller degrades.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}

	if builder.Len() == 0 {
		return "", fmt.Errorf("no text parts in model response")
	}

	return builder.String(), nil
}

// Close releases the underlying SDK client
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
