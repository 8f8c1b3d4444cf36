package usage

import (
	"context"
	"database/sql"
	"time"
)

// Store handles generation_log persistence.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert appends e to generation_log.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generation_log (request_id, outcome, model, destination, duration_days, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.RequestID, string(e.Outcome), e.Model, e.Destination, e.DurationDays, e.Latency.Milliseconds(), e.CreatedAt)
	return err
}

// CountSince returns the number of rows per outcome created at or after since.
func (s *Store) CountSince(ctx context.Context, since time.Time) (map[Outcome]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT outcome, COUNT(*) FROM generation_log
		WHERE created_at >= $1
		GROUP BY outcome
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[Outcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		out[Outcome(outcome)] = n
	}
	return out, rows.Err()
}
