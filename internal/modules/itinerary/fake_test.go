package itinerary

import (
	"context"
	"errors"

	"tripfluencer/internal/ai"
)

// fakeClient is a test double for ai.Client.
type fakeClient struct {
	models  []ai.ModelDescriptor
	listErr error
	text    string
	genErr  error

	listCalls int
	genCalls  int
	gotModel  string
	gotPrompt string
	closed    bool
}

func (f *fakeClient) ListModels(_ context.Context) ([]ai.ModelDescriptor, error) {
	f.listCalls++
	return f.models, f.listErr
}

func (f *fakeClient) Generate(_ context.Context, model, prompt string) (string, error) {
	f.genCalls++
	f.gotModel = model
	f.gotPrompt = prompt
	return f.text, f.genErr
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

// factoryFor returns a ClientFactory that always hands out c and records the key it saw.
func factoryFor(c *fakeClient, gotKey *string, calls *int) ai.ClientFactory {
	return func(_ context.Context, apiKey string) (ai.Client, error) {
		if calls != nil {
			*calls++
		}
		if gotKey != nil {
			*gotKey = apiKey
		}
		return c, nil
	}
}

func failingFactory(err error) ai.ClientFactory {
	return func(context.Context, string) (ai.Client, error) { return nil, err }
}

var errBoom = errors.New("boom")

func flash(name string) ai.ModelDescriptor {
	return ai.ModelDescriptor{Name: name, SupportedOperations: []string{"generateContent", "countTokens"}}
}
