package commands

import (
	"context"
	"fmt"
	"time"
)

type UTCCommand struct {
	now func() time.Time
}

func NewUTCCommand(now func() time.Time) *UTCCommand {
	return &UTCCommand{now: now}
}

func (c *UTCCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	t := c.now().UTC()
	return cmdCtx.SendMessage(ctx, fmt.Sprintf("Current date/time in UTC:\n**%s**\n**%s**",
		t.Format("Monday, Jan 02"),
		t.Format("15:04 (03:04 PM)"),
	))
}
