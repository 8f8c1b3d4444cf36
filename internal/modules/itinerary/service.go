// README: Itinerary service; validates trip input, picks a model and asks it for a Markdown plan.
package itinerary

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripfluencer/internal/ai"
)

// CredentialSource returns the API key to use right now.
// It is consulted on every Generate call.
type CredentialSource interface {
	Credential() string
}

// CredentialFunc adapts a plain function to CredentialSource.
type CredentialFunc func() string

// Credential calls f.
func (f CredentialFunc) Credential() string { return f() }

// Service orchestrates one itinerary generation per call. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	credentials   CredentialSource
	newClient     ai.ClientFactory
	fallbackModel string
	logger        *zap.Logger
}

// NewService creates a Service. An empty fallbackModel selects DefaultFallbackModel;
// a nil logger discards logs.
func NewService(credentials CredentialSource, newClient ai.ClientFactory, fallbackModel string, logger *zap.Logger) *Service {
	if fallbackModel == "" {
		fallbackModel = DefaultFallbackModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		credentials:   credentials,
		newClient:     newClient,
		fallbackModel: fallbackModel,
		logger:        logger,
	}
}

// Generate turns payload into a prompt and returns the model's Markdown answer.
// On upstream failures the returned result still carries the model that was tried.
func (s *Service) Generate(ctx context.Context, payload map[string]any) (GenerationResult, error) {
	apiKey := strings.TrimSpace(s.credentials.Credential())
	if apiKey == "" {
		return GenerationResult{}, ErrMissingCredential
	}

	req := ParseTripRequest(payload)
	if err := req.Validate(); err != nil {
		return GenerationResult{}, err
	}

	client, err := s.newClient(ctx, apiKey)
	if err != nil {
		return GenerationResult{}, fmt.Errorf("%w: %w", ErrUpstreamError, err)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			s.logger.Debug("close ai client", zap.Error(cerr))
		}
	}()

	model, ok := SelectModel(ctx, client, s.logger)
	if !ok {
		model = s.fallbackModel
	}
	s.logger.Debug("model resolved", zap.String("model", model), zap.Bool("from_catalog", ok))

	text, err := client.Generate(ctx, model, BuildPrompt(req))
	if err != nil {
		s.logger.Error("itinerary generation failed", zap.String("model", model), zap.Error(err))
		return GenerationResult{Model: model}, fmt.Errorf("%w: %w", ErrUpstreamError, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return GenerationResult{Model: model}, ErrUpstreamEmpty
	}
	return GenerationResult{Markdown: text, Model: model}, nil
}
