package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiClient implements Client using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient initializes a Gemini client for apiKey.
// It matches the ClientFactory signature.
func NewGeminiClient(ctx context.Context, apiKey string) (Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Close cleans up the Gemini client resources.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// ListModels drains the model catalog. Any iteration error aborts the listing.
func (g *GeminiClient) ListModels(ctx context.Context) ([]ModelDescriptor, error) {
	var out []ModelDescriptor
	it := g.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gemini: list models: %w", err)
		}
		out = append(out, ModelDescriptor{
			Name:                info.Name,
			SupportedOperations: info.SupportedGenerationMethods,
		})
	}
	return out, nil
}

// Generate sends prompt to the named model and returns the text of the first candidate.
// A response without candidates yields an empty string, not an error.
func (g *GeminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return responseText(resp), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
