// README: Generation audit log; best-effort recording that never affects the response.
package usage

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const recordTimeout = 3 * time.Second

// Service records generation outcomes. A nil *Service is valid and records nothing,
// which is how the audit log is disabled.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Record writes e. Failures are logged and dropped. The write outlives a
// cancelled request context but is bounded by its own timeout.
func (s *Service) Record(ctx context.Context, e Entry) {
	if s == nil || s.store == nil {
		return
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := s.store.Insert(ctx, e); err != nil {
		s.logger.Warn("record generation failed",
			zap.String("request_id", e.RequestID),
			zap.String("outcome", string(e.Outcome)),
			zap.Error(err),
		)
	}
}

// Summary returns per-outcome counts for the trailing window.
func (s *Service) Summary(ctx context.Context, window time.Duration) (map[Outcome]int, error) {
	if s == nil || s.store == nil {
		return map[Outcome]int{}, nil
	}
	return s.store.CountSince(ctx, time.Now().UTC().Add(-window))
}
