// Package channels keeps the stored Twitch channel table in line with the joined channels.
package channels

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ctmBot/internal/domain"
)

type Syncer struct {
	repo      domain.TwitchChannelRepository
	directory domain.TwitchChannelDirectory
	log       *zap.Logger
}

// NewSyncer builds a syncer. directory may be nil when no Helix credentials exist.
func NewSyncer(repo domain.TwitchChannelRepository, directory domain.TwitchChannelDirectory, log *zap.Logger) *Syncer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Syncer{repo: repo, directory: directory, log: log}
}

// MarkJoined records logins as the connected channel set. Only logins without a
// stored broadcaster id are looked up.
func (s *Syncer) MarkJoined(ctx context.Context, logins []string) error {
	if err := s.repo.MarkAllTwitchChannelsDisconnected(ctx); err != nil {
		return err
	}

	normalized := make([]string, 0, len(logins))
	for _, login := range logins {
		login = strings.ToLower(strings.TrimSpace(login))
		if login != "" {
			normalized = append(normalized, login)
		}
	}

	resolved := make(map[string]domain.TwitchChannel)
	var unknown []string
	for _, login := range normalized {
		stored, err := s.repo.GetTwitchChannel(ctx, login)
		if err != nil {
			return fmt.Errorf("channels: %s: %w", login, err)
		}
		if stored != nil && stored.BroadcasterID != "" {
			resolved[login] = domain.TwitchChannel{
				Login:         login,
				BroadcasterID: stored.BroadcasterID,
				DisplayName:   stored.DisplayName,
			}
			continue
		}
		unknown = append(unknown, login)
	}

	if s.directory != nil && len(unknown) > 0 {
		found, err := s.directory.LookupChannels(unknown)
		if err != nil {
			s.log.Warn("channels: helix lookup failed, storing logins only", zap.Error(err))
		}
		for _, ch := range found {
			resolved[ch.Login] = ch
		}
	}

	for _, login := range normalized {
		ch, ok := resolved[login]
		if !ok {
			ch = domain.TwitchChannel{Login: login}
		}
		ch.Connected = true
		if err := s.repo.UpsertTwitchChannel(ctx, ch); err != nil {
			return fmt.Errorf("channels: %s: %w", login, err)
		}
	}
	return nil
}

// MarkLeft flags every stored channel as disconnected.
func (s *Syncer) MarkLeft(ctx context.Context) error {
	return s.repo.MarkAllTwitchChannelsDisconnected(ctx)
}
