package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"ctmBot/internal/domain"
	"ctmBot/internal/interface/outs"
)

// PlatformAdapter is a chat network connection: Start blocks until ctx is done.
type PlatformAdapter interface {
	domain.OutgoingMessagePort
	Start(ctx context.Context) error
}

type ManagerConfig struct {
	Context  context.Context
	MultiOut *outs.MultiSender
	Log      *zap.Logger
}

// PlatformManager runs each network adapter on its own goroutine, so one
// network stalling or failing never blocks the other.
type PlatformManager struct {
	ctx      context.Context
	multiOut *outs.MultiSender
	log      *zap.Logger

	mu       sync.Mutex
	runtimes map[domain.Platform]*platformRuntime
	wg       sync.WaitGroup
}

type platformRuntime struct {
	cancel  context.CancelFunc
	adapter PlatformAdapter
	done    chan struct{}
}

func NewPlatformManager(cfg ManagerConfig) *PlatformManager {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &PlatformManager{
		ctx:      ctx,
		multiOut: cfg.MultiOut,
		log:      log,
		runtimes: make(map[domain.Platform]*platformRuntime),
	}
}

func (m *PlatformManager) Enable(platform domain.Platform, adapter PlatformAdapter) error {
	if adapter == nil {
		return fmt.Errorf("platform manager: nil adapter for %s", platform)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, running := m.runtimes[platform]; running {
		return fmt.Errorf("platform manager: %s already enabled", platform)
	}

	if m.multiOut != nil {
		m.multiOut.Register(platform, adapter)
	}

	ctx, cancel := context.WithCancel(m.ctx)
	rt := &platformRuntime{cancel: cancel, adapter: adapter, done: make(chan struct{})}
	m.runtimes[platform] = rt

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer close(rt.done)
		err := adapter.Start(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			m.log.Error("platform manager: adapter stopped", zap.Stringer("platform", platform), zap.Error(err))
			return
		}
		m.log.Info("platform manager: adapter stopped", zap.Stringer("platform", platform))
	}()

	m.log.Info("platform manager: enabled", zap.Stringer("platform", platform))
	return nil
}

// Disable stops one platform and waits for its adapter to return.
func (m *PlatformManager) Disable(platform domain.Platform) {
	m.mu.Lock()
	rt, ok := m.runtimes[platform]
	if ok {
		delete(m.runtimes, platform)
		if m.multiOut != nil {
			m.multiOut.Unregister(platform)
		}
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	rt.cancel()
	<-rt.done
}

// Enabled lists the platforms currently running.
func (m *PlatformManager) Enabled() []domain.Platform {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Platform, 0, len(m.runtimes))
	for p := range m.runtimes {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

func (m *PlatformManager) Shutdown() {
	for _, p := range m.Enabled() {
		m.Disable(p)
	}
	m.wg.Wait()
}
