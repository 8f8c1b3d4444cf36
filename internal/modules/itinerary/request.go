package itinerary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ParseTripRequest reads a loosely typed JSON object into a TripRequest.
// Strings are trimmed, numbers are accepted for text fields, and duration
// falls back to 0 when it is missing or not an integer (fractional numbers
// are truncated). Defaults are applied but nothing is validated.
func ParseTripRequest(payload map[string]any) TripRequest {
	req := TripRequest{
		Source:      stringField(payload, "source"),
		Destination: stringField(payload, "destination"),
		People:      stringField(payload, "people"),
		Duration:    intField(payload, "duration"),
		Interests:   stringField(payload, "interests"),
		Budget:      stringField(payload, "budget"),
		Extras:      stringField(payload, "extras"),
	}
	if req.Budget == "" {
		req.Budget = DefaultBudget
	}
	return req
}

// Validate enforces the required fields.
func (r TripRequest) Validate() error {
	if r.Source == "" || r.Destination == "" || r.Duration <= 0 || r.People == "" {
		return fmt.Errorf("%w: source, destination, duration (>0), and people are required", ErrInvalidRequest)
	}
	return nil
}

func stringField(payload map[string]any, key string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func intField(payload map[string]any, key string) int {
	v, ok := payload[key]
	if !ok || v == nil {
		return 0
	}
	if s, isString := v.(string); isString {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0
		}
		return n
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}
