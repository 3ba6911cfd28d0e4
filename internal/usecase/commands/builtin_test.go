package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctmBot/internal/domain"
)

func TestBuiltinRegistry_CoinNeedsModeratorOnTwitch(t *testing.T) {
	reg, err := NewBuiltinRegistry(Deps{
		Cache: newFakeCache(newManualClock()),
		Roll:  func() float64 { return 0.1 },
	})
	require.NoError(t, err)
	ctx := context.Background()

	def, ok := reg.Resolve(domain.PlatformTwitch, "flip")
	require.True(t, ok)

	out := &recordingOut{}
	err = def.Handler.Handle(ctx, newTestContext(twitchMessage("!flip"), out))
	var msgErr *MessageError
	require.ErrorAs(t, err, &msgErr)
	assert.Equal(t, MsgModeratorOnly, msgErr.Message)
	assert.Empty(t, out.messages)

	mod := twitchMessage("!flip")
	mod.IsPlatformMod = true
	require.NoError(t, def.Handler.Handle(ctx, newTestContext(mod, out)))
	assert.Equal(t, []string{MsgHeads}, out.Texts())

	def, ok = reg.Resolve(domain.PlatformDiscord, "flip")
	require.True(t, ok)
	out = &recordingOut{}
	require.NoError(t, def.Handler.Handle(ctx, newTestContext(discordMessage("!flip"), out)))
	assert.Equal(t, []string{MsgHeads}, out.Texts())
}

func TestCatalog_MergesPerPlatformRegistrations(t *testing.T) {
	reg, err := NewBuiltinRegistry(Deps{Cache: newFakeCache(newManualClock())})
	require.NoError(t, err)

	var coin, ctm CommandDescriptor
	for _, d := range Catalog(reg, "!") {
		switch d.Name {
		case "coin":
			coin = d
		case "ctm":
			ctm = d
		}
	}
	assert.Equal(t, []domain.Platform{domain.PlatformTwitch, domain.PlatformDiscord}, coin.Platforms)
	assert.Equal(t, "both-platforms", coin.Scope)
	assert.Equal(t, []domain.Platform{domain.PlatformTwitch}, ctm.Platforms)
	assert.Equal(t, "twitch-only", ctm.Scope)
}
