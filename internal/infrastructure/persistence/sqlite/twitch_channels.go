package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ctmBot/internal/domain"
)

func (s *Store) UpsertTwitchChannel(ctx context.Context, ch domain.TwitchChannel) error {
	login := strings.ToLower(strings.TrimSpace(ch.Login))
	if login == "" {
		return fmt.Errorf("sqlite: twitch channel without login")
	}
	if ch.UpdatedAt.IsZero() {
		ch.UpdatedAt = time.Now().UTC()
	}

	const stmt = `
INSERT INTO twitch_channels (login, broadcaster_id, display_name, connected, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(login) DO UPDATE SET
	broadcaster_id=COALESCE(NULLIF(excluded.broadcaster_id, ''), twitch_channels.broadcaster_id),
	display_name=COALESCE(NULLIF(excluded.display_name, ''), twitch_channels.display_name),
	connected=excluded.connected,
	updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt, login, ch.BroadcasterID, ch.DisplayName, ch.Connected, ch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sqlite: upsert twitch channel: %w", err)
	}
	return nil
}

func (s *Store) MarkAllTwitchChannelsDisconnected(ctx context.Context) error {
	const stmt = `UPDATE twitch_channels SET connected = 0, updated_at = ? WHERE connected = 1;`
	if _, err := s.db.ExecContext(ctx, stmt, time.Now().UTC()); err != nil {
		return fmt.Errorf("sqlite: disconnect twitch channels: %w", err)
	}
	return nil
}

func (s *Store) CountConnectedTwitchChannels(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM twitch_channels WHERE connected = 1;`

	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: count twitch channels: %w", err)
	}
	return n, nil
}

func (s *Store) GetTwitchChannel(ctx context.Context, login string) (*domain.TwitchChannel, error) {
	const query = `
SELECT login, broadcaster_id, display_name, connected, updated_at
FROM twitch_channels
WHERE login = ?
LIMIT 1;
`
	var (
		ch                         domain.TwitchChannel
		broadcasterID, displayName sql.NullString
	)
	row := s.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(login)))
	if err := row.Scan(&ch.Login, &broadcasterID, &displayName, &ch.Connected, &ch.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: get twitch channel: %w", err)
	}
	ch.BroadcasterID = broadcasterID.String
	ch.DisplayName = displayName.String
	return &ch, nil
}
