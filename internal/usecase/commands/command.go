package commands

import (
	"context"

	"ctmBot/internal/domain"
)

// Handler is the behaviour bound to one or more aliases.
type Handler interface {
	Handle(ctx context.Context, c *Context) error
}

type HandlerFunc func(ctx context.Context, c *Context) error

func (f HandlerFunc) Handle(ctx context.Context, c *Context) error { return f(ctx, c) }

// Definition is the registered unit. Name defaults to the first alias.
type Definition struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Scope       domain.Scope
	Handler     Handler
}

// Context is built fresh for every dispatched command and discarded afterwards.
type Context struct {
	message domain.Message
	out     domain.OutgoingMessagePort
	alias   string
	raw     string
	args    []string
}

func NewContext(msg domain.Message, out domain.OutgoingMessagePort, inv Invocation) *Context {
	return &Context{
		message: msg,
		out:     out,
		alias:   inv.Alias,
		raw:     inv.Raw,
		args:    append([]string(nil), inv.Args...),
	}
}

func (c *Context) Platform() domain.Platform { return c.message.Platform }
func (c *Context) UserID() string            { return c.message.UserID }
func (c *Context) Username() string          { return c.message.Username }
func (c *Context) ChannelID() string         { return c.message.ChannelID }
func (c *Context) GuildID() string           { return c.message.GuildID }
func (c *Context) Alias() string             { return c.alias }

// Args returns a copy of the positional argument tokens.
func (c *Context) Args() []string { return append([]string(nil), c.args...) }

// Raw is the text after the alias, untouched.
func (c *Context) Raw() string { return c.raw }

func (c *Context) IsModerator() bool { return c.message.IsModerator() }

// SendMessage replies in the originating channel.
func (c *Context) SendMessage(ctx context.Context, text string) error {
	return c.out.SendMessage(ctx, c.message.Platform, c.message.ChannelID, text)
}

func (c *Context) SendAttachment(ctx context.Context, channelID, text string, file domain.Attachment) error {
	if channelID == "" {
		channelID = c.message.ChannelID
	}
	return c.out.SendAttachment(ctx, c.message.Platform, channelID, text, file)
}

// SendDirectMessage writes privately to the invoking user.
func (c *Context) SendDirectMessage(ctx context.Context, text string) error {
	return c.out.SendDirectMessage(ctx, c.message.Platform, c.message.UserID, text)
}

// DeleteMessage removes the message that triggered the command.
func (c *Context) DeleteMessage(ctx context.Context) error {
	return c.out.DeleteMessage(ctx, c.message.Platform, c.message.ChannelID, c.message.MessageID)
}
