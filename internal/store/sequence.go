package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequence is the monotonic counter stamped on every audit event. Unlike
// row ids it is never reused, even after rows are deleted.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

// Next returns the current value and advances the counter.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
