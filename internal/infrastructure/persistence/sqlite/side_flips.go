package sqlite

import (
	"context"
	"fmt"
	"time"

	"ctmBot/internal/domain"
)

// RecordEdgeFlip logs a side outcome and returns the user's total on the platform.
func (s *Store) RecordEdgeFlip(ctx context.Context, platform domain.Platform, userID, username string) (int, error) {
	const stmt = `
INSERT INTO side_flips (platform, user_id, username, created_at)
VALUES (?, ?, ?, ?);
`
	if _, err := s.db.ExecContext(ctx, stmt, string(platform), userID, username, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("sqlite: record side flip: %w", err)
	}
	return s.CountEdgeFlips(ctx, platform, userID)
}

// CountEdgeFlips returns how many side outcomes a user has landed on a platform.
func (s *Store) CountEdgeFlips(ctx context.Context, platform domain.Platform, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM side_flips WHERE platform = ? AND user_id = ?;`

	var n int
	if err := s.db.QueryRowContext(ctx, query, string(platform), userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: count side flips: %w", err)
	}
	return n, nil
}
