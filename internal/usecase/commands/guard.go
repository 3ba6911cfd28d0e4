package commands

import "context"

// MsgModeratorOnly is returned to users who try a moderator-gated command.
const MsgModeratorOnly = "You must be a moderator to use this command."

// RequireModerator fails with a message error unless the invoker is a moderator.
func RequireModerator(c *Context) error {
	if c.IsModerator() {
		return nil
	}
	return Fail(MsgModeratorOnly)
}

// ModeratorOnly wraps next so it only runs for moderators.
func ModeratorOnly(next Handler) Handler {
	return HandlerFunc(func(ctx context.Context, c *Context) error {
		if err := RequireModerator(c); err != nil {
			return err
		}
		return next.Handle(ctx, c)
	})
}
