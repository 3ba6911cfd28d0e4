// Package twitchadapter connects the bot to Twitch chat over IRC and sends rate-limited replies.
package twitchadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/adeithe/go-twitch/irc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"ctmBot/internal/domain"
)

// Twitch allows 20 messages per 30 seconds for a regular bot account.
const DefaultMessagesPer30s = 20

type Config struct {
	Username       string
	OAuthToken     string
	Channels       []string
	MessagesPer30s int
}

type MessageHandler func(ctx context.Context, msg domain.Message) error

type Adapter struct {
	cfg     Config
	log     *zap.Logger
	limiter *rate.Limiter

	mu      sync.RWMutex
	handler MessageHandler
	conn    *irc.Conn
}

func NewAdapter(cfg Config, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	perWindow := cfg.MessagesPer30s
	if perWindow <= 0 {
		perWindow = DefaultMessagesPer30s
	}
	return &Adapter{
		cfg:     cfg,
		log:     log,
		limiter: rate.NewLimiter(rate.Every(30*time.Second/time.Duration(perWindow)), perWindow),
	}
}

func (a *Adapter) SetHandler(h MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

// Channels returns the configured channel logins, normalised.
func (a *Adapter) Channels() []string {
	out := make([]string, 0, len(a.cfg.Channels))
	for _, ch := range a.cfg.Channels {
		ch = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ch), "#"))
		if ch != "" {
			out = append(out, ch)
		}
	}
	return out
}

func (a *Adapter) Start(ctx context.Context) error {
	channels := a.Channels()
	if len(channels) == 0 {
		return errors.New("twitch: no channels configured")
	}
	if a.cfg.Username == "" || a.cfg.OAuthToken == "" {
		return errors.New("twitch: empty username or oauth token")
	}

	conn := &irc.Conn{}

	if err := conn.SetLogin(a.cfg.Username, a.cfg.OAuthToken); err != nil {
		return fmt.Errorf("twitch: SetLogin: %w", err)
	}

	conn.OnMessage(func(cm irc.ChatMessage) {
		a.mu.RLock()
		handler := a.handler
		a.mu.RUnlock()
		if handler == nil {
			return
		}

		msg := mapChatMessageToDomain(cm)
		if err := handler(ctx, msg); err != nil {
			a.log.Warn("twitch: handler error", zap.Error(err))
		}
	})

	if err := conn.Connect(); err != nil {
		return fmt.Errorf("twitch: Connect: %w", err)
	}

	if err := conn.Join(channels...); err != nil {
		conn.Close()
		return fmt.Errorf("twitch: Join: %w", err)
	}

	a.mu.Lock()
	a.conn = conn
	a.mu.Unlock()

	a.log.Info("twitch: connected", zap.String("username", a.cfg.Username), zap.Strings("channels", channels))

	<-ctx.Done()

	a.mu.Lock()
	if a.conn != nil {
		a.conn.Close()
		a.conn = nil
	}
	a.mu.Unlock()

	return ctx.Err()
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformTwitch {
		return fmt.Errorf("twitch: adapter does not serve platform %s", platform)
	}

	a.mu.RLock()
	conn := a.conn
	a.mu.RUnlock()

	if conn == nil || !conn.IsConnected() {
		return errors.New("twitch: connection not initialised or closed")
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("twitch: rate limit: %w", err)
	}

	a.log.Debug("twitch: say", zap.String("channel", channelID), zap.String("text", text))
	// IRC has no multi-line messages
	return conn.Say(channelID, strings.ReplaceAll(text, "\n", " "))
}

// SendAttachment is unsupported: Twitch chat cannot carry files.
func (a *Adapter) SendAttachment(ctx context.Context, platform domain.Platform, channelID, text string, file domain.Attachment) error {
	return fmt.Errorf("twitch: attachment %q: %w", file.Name, domain.ErrUnsupported)
}

func (a *Adapter) SendDirectMessage(ctx context.Context, platform domain.Platform, userID, text string) error {
	return fmt.Errorf("twitch: whisper: %w", domain.ErrUnsupported)
}

func (a *Adapter) DeleteMessage(ctx context.Context, platform domain.Platform, channelID, messageID string) error {
	return fmt.Errorf("twitch: delete: %w", domain.ErrUnsupported)
}

func mapChatMessageToDomain(cm irc.ChatMessage) domain.Message {
	sender := cm.Sender

	return domain.Message{
		Platform:  domain.PlatformTwitch,
		ChannelID: cm.Channel,
		UserID:    strconv.FormatInt(sender.ID, 10),
		Username:  sender.DisplayName,
		Text:      cm.Text,

		IsPlatformOwner: sender.IsBroadcaster,
		IsPlatformMod:   sender.IsModerator,
		IsPlatformVip:   sender.IsVIP,
	}
}
