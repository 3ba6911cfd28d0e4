package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ctmBot/internal/domain"
)

const (
	CoinFlipCooldown = 10 * time.Second

	MsgHeads = "Heads!"
	MsgTails = "Tails!"
	MsgSide  = "Side o.O"

	MsgFlipDisabled = "Due to abuse, `!flip` has been disabled in the CTM Discord server."
)

// Cumulative thresholds for a roll in [0,1): heads 0.4995, tails 0.4995, side 0.001.
const (
	headsBelow = 0.4995
	tailsBelow = 0.999
)

type CoinFlipCommand struct {
	cooldown        Cooldown
	roll            func() float64
	edges           domain.EdgeRecorder
	disabledGuildID string
	log             *zap.Logger
}

func NewCoinFlipCommand(cooldown Cooldown, roll func() float64, edges domain.EdgeRecorder, disabledGuildID string, log *zap.Logger) *CoinFlipCommand {
	if log == nil {
		log = zap.NewNop()
	}
	return &CoinFlipCommand{
		cooldown:        cooldown,
		roll:            roll,
		edges:           edges,
		disabledGuildID: disabledGuildID,
		log:             log,
	}
}

func (c *CoinFlipCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	if c.disabledGuildID != "" && cmdCtx.GuildID() == c.disabledGuildID {
		if err := cmdCtx.SendDirectMessage(ctx, MsgFlipDisabled); err != nil {
			c.log.Warn("flip: direct message failed", zap.String("user", cmdCtx.UserID()), zap.Error(err))
		}
		return cmdCtx.DeleteMessage(ctx)
	}

	ok, err := c.cooldown.Acquire(ctx, cmdCtx.UserID())
	if err != nil {
		return err
	}
	if !ok {
		if left, err := c.cooldown.Remaining(ctx, cmdCtx.UserID()); err == nil {
			c.log.Debug("flip: on cooldown",
				zap.String("user", cmdCtx.UserID()),
				zap.String("alias", cmdCtx.Alias()),
				zap.Duration("remaining", left.OrElse(0)),
			)
		}
		return nil
	}

	r := c.roll()
	switch {
	case r < headsBelow:
		return cmdCtx.SendMessage(ctx, MsgHeads)
	case r < tailsBelow:
		return cmdCtx.SendMessage(ctx, MsgTails)
	}

	if err := cmdCtx.SendMessage(ctx, MsgSide); err != nil {
		return err
	}
	if c.edges == nil {
		return nil
	}
	total, err := c.edges.RecordEdgeFlip(ctx, cmdCtx.Platform(), cmdCtx.UserID(), cmdCtx.Username())
	if err != nil {
		c.log.Error("flip: recording side outcome failed", zap.String("user", cmdCtx.UserID()), zap.Error(err))
		return nil
	}
	c.log.Info("flip: side outcome",
		zap.Stringer("platform", cmdCtx.Platform()),
		zap.String("user", cmdCtx.UserID()),
		zap.String("username", cmdCtx.Username()),
		zap.Int("total", total),
	)
	return nil
}
