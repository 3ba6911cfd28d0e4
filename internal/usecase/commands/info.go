package commands

import (
	"context"
)

const (
	CommandsURL = "https://github.com/professor-l/classic-tetris-project/blob/master/COMMANDS.md"
	StencilURL  = "http://bit.ly/TheStencil"
	CTMInvite   = "https://discord.gg/SYP37aV"
)

// ReplyCommand answers every invocation with a fixed text.
type ReplyCommand struct {
	Text string
}

func NewReplyCommand(text string) *ReplyCommand {
	return &ReplyCommand{Text: text}
}

func (c *ReplyCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	return cmdCtx.SendMessage(ctx, c.Text)
}

func helpText() string {
	return "All available commands are documented at " + CommandsURL
}

func stencilText() string {
	return "The stencil helps the streamer line up your Tetris playfield with their " +
		"broadcast scene. Link here: " + StencilURL
}

func ctmText() string {
	return "Join the Classic Tetris Monthly Discord server to learn more about CTM! " + CTMInvite
}
