package commands

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"ctmBot/internal/domain"
)

// Deps are the collaborators the built-in commands need.
type Deps struct {
	Cache           domain.Cache
	StrictCooldowns bool
	Edges           domain.EdgeRecorder
	Guilds          domain.GuildCounter
	TwitchChannels  ConnectedChannelCounter
	Renderer        FieldRenderer
	Words           func() string
	HomeGuildID     string

	Now  func() time.Time
	Roll func() float64
	Intn func(n int) int
	Log  *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Roll == nil {
		d.Roll = rand.Float64
	}
	if d.Intn == nil {
		d.Intn = rand.Intn
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return d
}

// BuiltinDefinitions returns the command table shipped with the bot.
func BuiltinDefinitions(deps Deps) []Definition {
	deps = deps.withDefaults()

	flipCooldown := Cooldown{
		Cache:   deps.Cache,
		Purpose: "flip",
		TTL:     CoinFlipCooldown,
		Strict:  deps.StrictCooldowns,
	}
	flip := NewCoinFlipCommand(flipCooldown, deps.Roll, deps.Edges, deps.HomeGuildID, deps.Log.Named("flip"))

	return []Definition{
		{
			Aliases:     []string{"help"},
			Usage:       "help",
			Description: "Links the command documentation.",
			Handler:     NewReplyCommand(helpText()),
		},
		{
			Aliases:     []string{"stencil"},
			Usage:       "stencil",
			Description: "Links the playfield stencil.",
			Handler:     NewReplyCommand(stencilText()),
		},
		{
			Aliases:     []string{"ctm"},
			Usage:       "ctm",
			Description: "Links the Classic Tetris Monthly Discord server.",
			Scope:       domain.ScopeTwitchOnly,
			Handler:     NewReplyCommand(ctmText()),
		},
		{
			Aliases:     []string{"seed", "hex"},
			Usage:       "seed",
			Description: "Generates a random game seed.",
			Handler:     NewSeedCommand(deps.Intn),
		},
		{
			Aliases:     []string{"coin", "flip", "coinflip"},
			Usage:       "flip",
			Description: "Flips a coin. Once every 10 seconds per user, Twitch moderators only.",
			Scope:       domain.ScopeTwitchOnly,
			Handler:     ModeratorOnly(flip),
		},
		{
			Aliases:     []string{"coin", "flip", "coinflip"},
			Usage:       "flip",
			Description: "Flips a coin. Once every 10 seconds per user, Twitch moderators only.",
			Scope:       domain.ScopeDiscordOnly,
			Handler:     flip,
		},
		{
			Aliases:     []string{"hz", "hydrant"},
			Usage:       "hz <level> <height> <taps>",
			Description: "Tapping speed needed to reach the wall.",
			Handler:     NewHzCommand(deps.Renderer),
		},
		{
			Aliases:     []string{"utc", "time"},
			Usage:       "utc",
			Description: "Current date and time in UTC.",
			Scope:       domain.ScopeDiscordOnly,
			Handler:     NewUTCCommand(deps.Now),
		},
		{
			Aliases:     []string{"authhelp"},
			Usage:       "authhelp",
			Description: "Explains qualification authwords.",
			Scope:       domain.ScopeDiscordOnly,
			Handler:     NewReplyCommand(authHelpText),
		},
		{
			Aliases:     []string{"authword"},
			Usage:       "authword",
			Description: "Generates a qualification authword.",
			Scope:       domain.ScopeDiscordOnly,
			Handler:     NewAuthWordCommand(deps.Cache, deps.Words),
		},
		{
			Aliases:     []string{"stats"},
			Usage:       "stats",
			Description: "Discord server and Twitch channel counts. Moderators only.",
			Scope:       domain.ScopeDiscordOnly,
			Handler:     NewStatsCommand(deps.Guilds, deps.TwitchChannels),
		},
	}
}

// NewBuiltinRegistry registers the built-in commands and freezes the registry.
func NewBuiltinRegistry(deps Deps) (*Registry, error) {
	b := NewBuilder()
	for _, def := range BuiltinDefinitions(deps) {
		if err := b.Register(def); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
