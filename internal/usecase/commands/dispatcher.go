package commands

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ctmBot/internal/domain"
)

// MsgGenericFailure is sent when a handler fails in a way the user should not see.
const MsgGenericFailure = "Something went wrong while running that command."

// Outcome describes how a single event was handled.
type Outcome int

const (
	OutcomeNotCommand Outcome = iota
	OutcomeUnknown
	OutcomeHandled
	OutcomeUsage
	OutcomeRejected
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotCommand:
		return "not-command"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeHandled:
		return "handled"
	case OutcomeUsage:
		return "usage"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Dispatcher struct {
	resolver *Resolver
	registry *Registry
	out      domain.OutgoingMessagePort
	log      *zap.Logger
}

func NewDispatcher(resolver *Resolver, registry *Registry, out domain.OutgoingMessagePort, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		resolver: resolver,
		registry: registry,
		out:      out,
		log:      log,
	}
}

// Dispatch resolves and runs the command in msg, if any. Handler failures
// are translated into replies here and never escape.
func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.Message) Outcome {
	inv, ok := d.resolver.Parse(msg.Text)
	if !ok {
		return OutcomeNotCommand
	}

	def, ok := d.registry.Resolve(msg.Platform, inv.Alias)
	if !ok {
		return OutcomeUnknown
	}

	cmdCtx := NewContext(msg, d.out, inv)
	log := d.log.With(
		zap.String("invocation", uuid.NewString()),
		zap.Stringer("platform", msg.Platform),
		zap.String("alias", inv.Alias),
		zap.String("user", msg.UserID),
		zap.String("channel", msg.ChannelID),
		zap.Strings("args", inv.Args),
	)

	err := d.run(ctx, def, cmdCtx)
	if err == nil {
		log.Debug("command handled")
		return OutcomeHandled
	}

	var (
		usageErr *UsageError
		msgErr   *MessageError
		outcome  Outcome
		reply    string
	)
	switch {
	case errors.As(err, &usageErr):
		outcome = OutcomeUsage
		reply = "Usage: " + d.resolver.Prefix() + def.Usage
		log.Debug("command usage error", zap.String("reason", usageErr.Reason))
	case errors.As(err, &msgErr):
		outcome = OutcomeRejected
		reply = msgErr.Message
		log.Debug("command rejected", zap.String("message", msgErr.Message))
	default:
		outcome = OutcomeFailed
		reply = MsgGenericFailure
		log.Error("command failed", zap.Error(err))
	}

	if sendErr := cmdCtx.SendMessage(ctx, reply); sendErr != nil {
		log.Error("sending command feedback failed", zap.Error(sendErr), zap.Stringer("outcome", outcome))
	}
	return outcome
}

func (d *Dispatcher) run(ctx context.Context, def *Definition, c *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("commands: %s panicked: %v\n%s", def.Name, r, debug.Stack())
		}
	}()
	return def.Handler.Handle(ctx, c)
}
