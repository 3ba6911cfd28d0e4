package commands

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/samber/mo"

	"ctmBot/internal/domain"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 3, 4, 15, 4, 5, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeEntry struct {
	value   string
	expires time.Time
}

// fakeCache is an in-memory domain.Cache whose expiry follows a manualClock.
type fakeCache struct {
	mu      sync.Mutex
	clock   *manualClock
	entries map[string]fakeEntry
	err     error
}

func newFakeCache(clock *manualClock) *fakeCache {
	return &fakeCache{clock: clock, entries: make(map[string]fakeEntry)}
}

func (c *fakeCache) live(key string) (fakeEntry, bool) {
	e, ok := c.entries[key]
	if !ok || !c.clock.Now().Before(e.expires) {
		return fakeEntry{}, false
	}
	return e, true
}

func (c *fakeCache) Get(_ context.Context, key string) (mo.Option[string], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return mo.None[string](), c.err
	}
	if e, ok := c.live(key); ok {
		return mo.Some(e.value), nil
	}
	return mo.None[string](), nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.entries[key] = fakeEntry{value: value, expires: c.clock.Now().Add(ttl)}
	return nil
}

func (c *fakeCache) Add(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	if _, ok := c.live(key); ok {
		return false, nil
	}
	c.entries[key] = fakeEntry{value: value, expires: c.clock.Now().Add(ttl)}
	return true, nil
}

func (c *fakeCache) TTL(_ context.Context, key string) (mo.Option[time.Duration], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return mo.None[time.Duration](), c.err
	}
	if e, ok := c.live(key); ok {
		return mo.Some(e.expires.Sub(c.clock.Now())), nil
	}
	return mo.None[time.Duration](), nil
}

type sentMessage struct {
	Platform domain.Platform
	Channel  string
	Text     string
}

type sentAttachment struct {
	Channel string
	Text    string
	Name    string
	Data    []byte
}

// recordingOut captures everything the commands try to send.
type recordingOut struct {
	mu          sync.Mutex
	messages    []sentMessage
	attachments []sentAttachment
	directs     []sentMessage
	deleted     []string

	sendErr       error
	attachmentErr error
}

func (o *recordingOut) SendMessage(_ context.Context, platform domain.Platform, channelID, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sendErr != nil {
		return o.sendErr
	}
	o.messages = append(o.messages, sentMessage{Platform: platform, Channel: channelID, Text: text})
	return nil
}

func (o *recordingOut) SendAttachment(_ context.Context, _ domain.Platform, channelID, text string, file domain.Attachment) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.attachmentErr != nil {
		return o.attachmentErr
	}
	data, _ := io.ReadAll(file.Data)
	o.attachments = append(o.attachments, sentAttachment{Channel: channelID, Text: text, Name: file.Name, Data: data})
	return nil
}

func (o *recordingOut) SendDirectMessage(_ context.Context, platform domain.Platform, userID, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.directs = append(o.directs, sentMessage{Platform: platform, Channel: userID, Text: text})
	return nil
}

func (o *recordingOut) DeleteMessage(_ context.Context, _ domain.Platform, _ string, messageID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deleted = append(o.deleted, messageID)
	return nil
}

func (o *recordingOut) Texts() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.messages))
	for _, m := range o.messages {
		out = append(out, m.Text)
	}
	return out
}

func twitchMessage(text string) domain.Message {
	return domain.Message{
		Platform:  domain.PlatformTwitch,
		ChannelID: "classictetris",
		UserID:    "1001",
		Username:  "Tetrisfan",
		Text:      text,
	}
}

func discordMessage(text string) domain.Message {
	return domain.Message{
		Platform:  domain.PlatformDiscord,
		ChannelID: "chan-1",
		GuildID:   "guild-9",
		MessageID: "msg-1",
		UserID:    "2002",
		Username:  "blocks",
		Text:      text,
	}
}

// newTestContext builds a Context the way the dispatcher does.
func newTestContext(msg domain.Message, out domain.OutgoingMessagePort) *Context {
	inv, ok := NewResolver("!").Parse(msg.Text)
	if !ok {
		panic("test message is not a command: " + msg.Text)
	}
	return NewContext(msg, out, inv)
}
