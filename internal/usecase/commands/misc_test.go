package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCCommand(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := func() time.Time { return time.Date(2024, 3, 4, 10, 4, 0, 0, loc) }
	out := &recordingOut{}

	require.NoError(t, NewUTCCommand(now).Handle(context.Background(), newTestContext(discordMessage("!utc"), out)))
	assert.Equal(t, []string{"Current date/time in UTC:\n**Monday, Mar 04**\n**15:04 (03:04 PM)**"}, out.Texts())
}

func TestSeedCommand_RerollsLowBytes(t *testing.T) {
	// first draw lands on 0x000201 (low byte 1), second on 0x123456
	draws := []int{0x201 - 0x200, 0x123456 - 0x200}
	intn := func(n int) int {
		assert.Equal(t, 0xffffff-0x200+1, n)
		v := draws[0]
		draws = draws[1:]
		return v
	}
	out := &recordingOut{}

	require.NoError(t, NewSeedCommand(intn).Handle(context.Background(), newTestContext(twitchMessage("!seed"), out)))
	assert.Equal(t, []string{"RANDOM SEED: [123456]"}, out.Texts())
	assert.Empty(t, draws)
}

func TestSeedCommand_PadsToSixDigits(t *testing.T) {
	out := &recordingOut{}
	intn := func(int) int { return 0x3 }

	require.NoError(t, NewSeedCommand(intn).Handle(context.Background(), newTestContext(twitchMessage("!hex"), out)))
	assert.Equal(t, []string{"RANDOM SEED: [000203]"}, out.Texts())
}

func TestReplyCommands(t *testing.T) {
	out := &recordingOut{}
	ctx := context.Background()

	require.NoError(t, NewReplyCommand(helpText()).Handle(ctx, newTestContext(twitchMessage("!help"), out)))
	require.NoError(t, NewReplyCommand(ctmText()).Handle(ctx, newTestContext(twitchMessage("!ctm"), out)))

	texts := out.Texts()
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], CommandsURL)
	assert.Contains(t, texts[1], CTMInvite)
	assert.Equal(t, "classictetris", out.messages[0].Channel)
}
