// Package discordadapter connects the bot to the Discord gateway.
package discordadapter

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"ctmBot/internal/domain"
)

type Config struct {
	Token           string
	ModeratorRoleID string
}

type MessageHandler func(ctx context.Context, msg domain.Message) error

// restAPI is the slice of *discordgo.Session the adapter sends through.
type restAPI interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

type Adapter struct {
	cfg Config
	log *zap.Logger

	mu      sync.RWMutex
	handler MessageHandler
	session *discordgo.Session
	api     restAPI
}

func NewAdapter(cfg Config, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{cfg: cfg, log: log}
}

func (a *Adapter) SetHandler(h MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if a.cfg.Token == "" {
		return errors.New("discord: empty bot token")
	}

	s, err := discordgo.New("Bot " + a.cfg.Token)
	if err != nil {
		return fmt.Errorf("discord: New: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
			return
		}

		a.mu.RLock()
		handler := a.handler
		a.mu.RUnlock()
		if handler == nil {
			return
		}

		if err := handler(ctx, mapMessageCreateToDomain(m, a.cfg.ModeratorRoleID)); err != nil {
			a.log.Warn("discord: handler error", zap.Error(err))
		}
	})

	if err := s.Open(); err != nil {
		return fmt.Errorf("discord: Open: %w", err)
	}

	a.mu.Lock()
	a.session = s
	a.api = s
	a.mu.Unlock()

	a.log.Info("discord: connected", zap.Int("guilds", a.GuildCount()))

	<-ctx.Done()

	a.mu.Lock()
	a.session = nil
	a.api = nil
	a.mu.Unlock()

	if err := s.Close(); err != nil {
		a.log.Warn("discord: close", zap.Error(err))
	}
	return ctx.Err()
}

// GuildCount is the number of guilds in the gateway session state.
func (a *Adapter) GuildCount() int {
	a.mu.RLock()
	s := a.session
	a.mu.RUnlock()
	if s == nil || s.State == nil {
		return 0
	}
	s.State.RLock()
	defer s.State.RUnlock()
	return len(s.State.Guilds)
}

func (a *Adapter) client(platform domain.Platform) (restAPI, error) {
	if platform != domain.PlatformDiscord {
		return nil, fmt.Errorf("discord: adapter does not serve platform %s", platform)
	}
	a.mu.RLock()
	api := a.api
	a.mu.RUnlock()
	if api == nil {
		return nil, errors.New("discord: session not open")
	}
	return api, nil
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	api, err := a.client(platform)
	if err != nil {
		return err
	}
	if _, err := api.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send message: %w", err)
	}
	return nil
}

func (a *Adapter) SendAttachment(ctx context.Context, platform domain.Platform, channelID, text string, file domain.Attachment) error {
	api, err := a.client(platform)
	if err != nil {
		return err
	}
	data := &discordgo.MessageSend{
		Content: text,
		Files: []*discordgo.File{{
			Name:        file.Name,
			ContentType: file.ContentType,
			Reader:      file.Data,
		}},
	}
	if _, err := api.ChannelMessageSendComplex(channelID, data, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send attachment: %w", err)
	}
	return nil
}

func (a *Adapter) SendDirectMessage(ctx context.Context, platform domain.Platform, userID, text string) error {
	api, err := a.client(platform)
	if err != nil {
		return err
	}
	ch, err := api.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord: open dm channel: %w", err)
	}
	if _, err := api.ChannelMessageSend(ch.ID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send dm: %w", err)
	}
	return nil
}

func (a *Adapter) DeleteMessage(ctx context.Context, platform domain.Platform, channelID, messageID string) error {
	api, err := a.client(platform)
	if err != nil {
		return err
	}
	if err := api.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: delete message: %w", err)
	}
	return nil
}

func mapMessageCreateToDomain(m *discordgo.MessageCreate, moderatorRoleID string) domain.Message {
	msg := domain.Message{
		Platform:  domain.PlatformDiscord,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		MessageID: m.ID,
		Text:      m.Content,
	}
	if m.Author != nil {
		msg.UserID = m.Author.ID
		msg.Username = m.Author.Username
	}
	if m.Member != nil && moderatorRoleID != "" {
		msg.IsPlatformMod = slices.Contains(m.Member.Roles, moderatorRoleID)
	}
	return msg
}
