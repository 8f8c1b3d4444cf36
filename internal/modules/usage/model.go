package usage

import "time"

// Outcome classifies how a /generate call ended.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeBadPayload        Outcome = "bad_payload"
	OutcomeMissingCredential Outcome = "missing_credential"
	OutcomeInvalidRequest    Outcome = "invalid_request"
	OutcomeUpstreamEmpty     Outcome = "upstream_empty"
	OutcomeUpstreamError     Outcome = "upstream_error"
)

// Entry is one row of the generation audit log. It carries request metadata
// only; prompts and generated text are never stored.
type Entry struct {
	RequestID    string
	Outcome      Outcome
	Model        string
	Destination  string
	DurationDays int
	Latency      time.Duration
	CreatedAt    time.Time
}
