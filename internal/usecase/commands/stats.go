package commands

import (
	"context"
	"fmt"

	"ctmBot/internal/domain"
)

// ConnectedChannelCounter reports how many Twitch channels the bot is joined to.
type ConnectedChannelCounter interface {
	CountConnectedTwitchChannels(ctx context.Context) (int, error)
}

type StatsCommand struct {
	guilds   domain.GuildCounter
	channels ConnectedChannelCounter
}

func NewStatsCommand(guilds domain.GuildCounter, channels ConnectedChannelCounter) *StatsCommand {
	return &StatsCommand{guilds: guilds, channels: channels}
}

func (c *StatsCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	if err := RequireModerator(cmdCtx); err != nil {
		return err
	}

	guilds := 0
	if c.guilds != nil {
		guilds = c.guilds.GuildCount()
	}

	channels := 0
	if c.channels != nil {
		n, err := c.channels.CountConnectedTwitchChannels(ctx)
		if err != nil {
			return fmt.Errorf("stats: count twitch channels: %w", err)
		}
		channels = n
	}

	return cmdCtx.SendMessage(ctx, fmt.Sprintf("I'm in %d Discord servers and %d Twitch channels.", guilds, channels))
}
