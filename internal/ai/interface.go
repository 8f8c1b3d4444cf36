package ai

import (
	"context"
)

// Catalog lists the models a provider exposes.
type Catalog interface {
	// ListModels returns every model in provider order.
	ListModels(ctx context.Context) ([]ModelDescriptor, error)
}

// Generator produces text for a single prompt against a named model.
type Generator interface {
	// Generate sends prompt to model once and returns the concatenated text parts.
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Client is a provider session bound to one API credential.
// Callers must Close it when the request is done.
type Client interface {
	Catalog
	Generator
	Close() error
}

// ClientFactory builds a Client for apiKey. It is called once per request so
// credential rotation takes effect without a restart.
type ClientFactory func(ctx context.Context, apiKey string) (Client, error)
