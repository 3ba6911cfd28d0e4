package domain

// Scope selects which platform tables a command is registered in.
type Scope int

const (
	ScopeBoth Scope = iota
	ScopeTwitchOnly
	ScopeDiscordOnly
)

// Platforms returns the platforms targeted by the scope.
func (s Scope) Platforms() []Platform {
	switch s {
	case ScopeTwitchOnly:
		return []Platform{PlatformTwitch}
	case ScopeDiscordOnly:
		return []Platform{PlatformDiscord}
	default:
		return []Platform{PlatformTwitch, PlatformDiscord}
	}
}

func (s Scope) String() string {
	switch s {
	case ScopeTwitchOnly:
		return "twitch-only"
	case ScopeDiscordOnly:
		return "discord-only"
	default:
		return "both-platforms"
	}
}
