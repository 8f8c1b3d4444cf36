// README: Itinerary request/result types and the error kinds surfaced to callers.
package itinerary

import "errors"

var (
	// ErrMissingCredential is returned when no Gemini API key is configured.
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidRequest is returned when a required trip field is empty or duration <= 0.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUpstreamEmpty is returned when the model answered with blank text.
	ErrUpstreamEmpty = errors.New("upstream returned empty content")
	// ErrUpstreamError wraps any failure raised while talking to the model.
	ErrUpstreamError = errors.New("upstream error")
)

const (
	// DefaultBudget is used when the caller leaves budget blank.
	DefaultBudget = "Mid-range"
	// DefaultFallbackModel answers when the catalog cannot pick a flash model.
	DefaultFallbackModel = "models/gemini-1.5-flash"

	notApplicable = "N/A"
)

// TripRequest is the validated trip input for one generation.
type TripRequest struct {
	Source      string
	Destination string
	People      string
	Duration    int
	Interests   string
	Budget      string
	Extras      string
}

// GenerationResult is returned to the caller and never stored.
type GenerationResult struct {
	Markdown string `json:"markdown"`
	Model    string `json:"model"`
}
