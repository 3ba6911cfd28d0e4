// Package handle_message runs every inbound chat event on its own goroutine.
package handle_message

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ctmBot/internal/domain"
	"ctmBot/internal/usecase/commands"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, msg domain.Message) commands.Outcome
}

type Interactor struct {
	dispatcher Dispatcher
	log        *zap.Logger

	wg sync.WaitGroup
}

func NewInteractor(dispatcher Dispatcher, log *zap.Logger) *Interactor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{
		dispatcher: dispatcher,
		log:        log,
	}
}

// Handle returns immediately; the dispatch happens on a new goroutine so a slow
// handler never holds up the adapter's read loop.
func (uc *Interactor) Handle(ctx context.Context, msg domain.Message) error {
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				uc.log.Error("dispatch panicked", zap.Any("panic", r), zap.Stringer("platform", msg.Platform))
			}
		}()
		uc.dispatcher.Dispatch(ctx, msg)
	}()
	return nil
}

// Wait blocks until every in-flight event has been handled.
func (uc *Interactor) Wait() {
	uc.wg.Wait()
}
