package itinerary

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"tripfluencer/internal/ai"
)

// flashMarker must appear (case-sensitive) in a candidate model name.
const flashMarker = "flash"

// Providers spell the generation capability both ways.
var generateContentOps = []string{"generateContent", "generate_content"}

// preferredModels is checked in order; the first one present in the catalog wins.
var preferredModels = []string{
	"models/gemini-1.5-flash",
	"models/gemini-1.5-flash-latest",
	"models/gemini-1.5-flash-002",
	"models/gemini-1.5-flash-001",
	"models/gemini-1.5-flash-8b",
	"gemini-1.5-flash",
}

// SelectModel picks a flash model that supports content generation.
//
// A preferred name wins regardless of catalog position. Otherwise the first
// candidate in catalog order is returned; that order is provider-defined, so
// the choice may change between calls. A failed or empty listing yields
// ("", false) and the caller supplies its own default.
func SelectModel(ctx context.Context, catalog ai.Catalog, logger *zap.Logger) (string, bool) {
	models, err := catalog.ListModels(ctx)
	if err != nil {
		logger.Warn("model catalog unavailable", zap.Error(err))
		return "", false
	}

	var candidates []string
	for _, m := range models {
		if strings.Contains(m.Name, flashMarker) && m.Supports(generateContentOps...) {
			candidates = append(candidates, m.Name)
		}
	}

	for _, name := range preferredModels {
		if slices.Contains(candidates, name) {
			return name, true
		}
	}
	if len(candidates) > 0 {
		return candidates[0], true
	}
	return "", false
}
