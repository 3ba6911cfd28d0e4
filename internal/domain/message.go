package domain

import "strings"

type Platform string

const (
	PlatformTwitch  Platform = "twitch"
	PlatformDiscord Platform = "discord"
)

func (p Platform) String() string { return string(p) }

// ParsePlatform accepts the lowercase platform names used in config and CLI flags.
func ParsePlatform(raw string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case PlatformTwitch:
		return PlatformTwitch, true
	case PlatformDiscord:
		return PlatformDiscord, true
	default:
		return "", false
	}
}

// Platforms lists every supported chat network.
func Platforms() []Platform {
	return []Platform{PlatformTwitch, PlatformDiscord}
}

// Message is one inbound chat event, already mapped by the platform adapter.
type Message struct {
	Platform  Platform
	ChannelID string
	GuildID   string
	MessageID string
	UserID    string
	Username  string
	Text      string

	// Flags filled in by the adapter from platform data
	IsPlatformOwner bool
	IsPlatformMod   bool
	IsPlatformVip   bool
}

// IsModerator reports whether the sender may run moderator-gated commands
// in the originating channel or guild.
func (m Message) IsModerator() bool {
	return m.IsPlatformMod || m.IsPlatformOwner
}
