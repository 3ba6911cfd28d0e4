package domain

import "time"

// TwitchChannel is a joined Twitch chat, keyed by login.
type TwitchChannel struct {
	Login         string
	BroadcasterID string
	DisplayName   string
	Connected     bool
	UpdatedAt     time.Time
}

// TwitchChannelDirectory resolves channel logins to broadcaster metadata through the Twitch API.
type TwitchChannelDirectory interface {
	LookupChannels(logins []string) ([]TwitchChannel, error)
}
