package domain

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/samber/mo"
)

// ErrUnsupported is returned by adapters for operations their network lacks.
var ErrUnsupported = errors.New("operation not supported by platform")

// Attachment is a binary file sent along with an outbound message.
type Attachment struct {
	Name        string
	ContentType string
	Data        io.Reader
}

// OutgoingMessagePort is implemented by every platform adapter and by outs.MultiSender.
type OutgoingMessagePort interface {
	SendMessage(ctx context.Context, platform Platform, channelID, text string) error
	SendAttachment(ctx context.Context, platform Platform, channelID, text string, file Attachment) error
	SendDirectMessage(ctx context.Context, platform Platform, userID, text string) error
	DeleteMessage(ctx context.Context, platform Platform, channelID, messageID string) error
}

// Cache is the shared expiring key/value store used for cooldowns and short-lived secrets.
// Each call is atomic on its own; Add is the set-if-absent primitive.
type Cache interface {
	Get(ctx context.Context, key string) (mo.Option[string], error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Add(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (mo.Option[time.Duration], error)
}

// EdgeRecorder persists the rare coin-flip outcome for a user and returns how many
// the user has landed on that platform so far.
type EdgeRecorder interface {
	RecordEdgeFlip(ctx context.Context, platform Platform, userID, username string) (int, error)
}

// GuildCounter reports how many Discord guilds the bot session is in.
type GuildCounter interface {
	GuildCount() int
}

// TwitchChannelRepository tracks the Twitch channels the bot has joined.
type TwitchChannelRepository interface {
	UpsertTwitchChannel(ctx context.Context, ch TwitchChannel) error
	MarkAllTwitchChannelsDisconnected(ctx context.Context) error
	CountConnectedTwitchChannels(ctx context.Context) (int, error)
	// GetTwitchChannel returns nil, nil when login is not stored.
	GetTwitchChannel(ctx context.Context, login string) (*TwitchChannel, error)
}
