package ai

import "slices"

// ModelDescriptor is one entry of the provider's model catalog.
type ModelDescriptor struct {
	// Name is the fully qualified model name, e.g. "models/gemini-1.5-flash".
	Name string

	// SupportedOperations lists the generation methods the model accepts
	// (e.g. "generateContent", "countTokens").
	SupportedOperations []string
}

// Supports reports whether the model declares any of ops.
func (m ModelDescriptor) Supports(ops ...string) bool {
	for _, op := range ops {
		if slices.Contains(m.SupportedOperations, op) {
			return true
		}
	}
	return false
}
