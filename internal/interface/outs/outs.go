package outs

import (
	"context"
	"fmt"
	"sync"

	"ctmBot/internal/domain"
)

// MultiSender routes outbound operations to the adapter of the originating platform.
type MultiSender struct {
	mu      sync.RWMutex
	senders map[domain.Platform]domain.OutgoingMessagePort
}

func NewMultiSender() *MultiSender {
	return &MultiSender{
		senders: make(map[domain.Platform]domain.OutgoingMessagePort),
	}
}

// Register associates a platform with its adapter.
func (m *MultiSender) Register(platform domain.Platform, sender domain.OutgoingMessagePort) {
	if m == nil || sender == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.senders[platform] = sender
}

func (m *MultiSender) Unregister(platform domain.Platform) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.senders, platform)
}

func (m *MultiSender) sender(platform domain.Platform) (domain.OutgoingMessagePort, error) {
	if m == nil {
		return nil, fmt.Errorf("outs: no multi sender configured")
	}
	m.mu.RLock()
	sender, ok := m.senders[platform]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("outs: no sender registered for platform %s", platform)
	}
	return sender, nil
}

func (m *MultiSender) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	sender, err := m.sender(platform)
	if err != nil {
		return err
	}
	return sender.SendMessage(ctx, platform, channelID, text)
}

func (m *MultiSender) SendAttachment(ctx context.Context, platform domain.Platform, channelID, text string, file domain.Attachment) error {
	sender, err := m.sender(platform)
	if err != nil {
		return err
	}
	return sender.SendAttachment(ctx, platform, channelID, text, file)
}

func (m *MultiSender) SendDirectMessage(ctx context.Context, platform domain.Platform, userID, text string) error {
	sender, err := m.sender(platform)
	if err != nil {
		return err
	}
	return sender.SendDirectMessage(ctx, platform, userID, text)
}

func (m *MultiSender) DeleteMessage(ctx context.Context, platform domain.Platform, channelID, messageID string) error {
	sender, err := m.sender(platform)
	if err != nil {
		return err
	}
	return sender.DeleteMessage(ctx, platform, channelID, messageID)
}
