package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctmBot/internal/domain"
)

type stubRenderer struct {
	level, height int
	taps          []int
	err           error
}

func (r *stubRenderer) Render(level, height int, taps []int) (io.Reader, error) {
	r.level, r.height, r.taps = level, height, taps
	if r.err != nil {
		return nil, r.err
	}
	return bytes.NewReader([]byte("GIF89a")), nil
}

func TestCalculateHz_Level18(t *testing.T) {
	hz, err := CalculateHz(18, 10, 3)
	require.NoError(t, err)

	// gravity 3 on level 18, 9 rows to fall
	assert.Equal(t, 27, hz.Frames)
	assert.Equal(t, 4.44, hz.Min)
	assert.Equal(t, 6.67, hz.Max)
}

func TestCalculateHz_HalfwayRoundsToEven(t *testing.T) {
	tests := []struct {
		level, height, taps int
		frames              int
		min, max            float64
	}{
		// 60*3/32 = 5.625
		{19, 3, 3, 32, 3.75, 5.62},
		// 60/96 = 0.625
		{0, 17, 2, 96, 0.62, 1.25},
	}
	for _, tt := range tests {
		hz, err := CalculateHz(tt.level, tt.height, tt.taps)
		require.NoError(t, err)
		assert.Equal(t, HzRange{Frames: tt.frames, Min: tt.min, Max: tt.max}, hz)
	}
}

func TestCalculateHz_Rejections(t *testing.T) {
	tests := []struct {
		name                string
		level, height, taps int
		want                string
	}{
		{"negative level", -1, 10, 3, MsgUnrealistic},
		{"negative height", 18, -1, 3, MsgUnrealistic},
		{"height above field", 18, 20, 3, MsgUnrealistic},
		{"zero taps", 18, 10, 0, MsgUnrealistic},
		{"six taps", 18, 10, 6, MsgUnrealistic},
		{"single tap", 18, 10, 1, "You have 27 frames to time this tap (and maybe a rotation for polevault)."},
		{"too fast", 29, 15, 3, MsgNotEvenTAS},
		{"height 19 no frames", 18, 19, 2, MsgNotEvenTAS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateHz(tt.level, tt.height, tt.taps)
			var msgErr *MessageError
			require.ErrorAs(t, err, &msgErr)
			assert.Equal(t, tt.want, msgErr.Message)
		})
	}
}

func TestGravity(t *testing.T) {
	assert.Equal(t, 48, Gravity(0))
	assert.Equal(t, 3, Gravity(18))
	assert.Equal(t, 2, Gravity(28))
	assert.Equal(t, 1, Gravity(29))
	assert.Equal(t, 1, Gravity(255))
	assert.Equal(t, 48, Gravity(256))
	assert.Equal(t, 1, Gravity(-5))
}

func TestInputSequence(t *testing.T) {
	indices, seq := InputSequence(27, 3)
	assert.Equal(t, []int{0, 13, 26}, indices)
	assert.Equal(t, "X............X............X", seq)

	indices, seq = InputSequence(4, 2)
	assert.Equal(t, []int{0, 3}, indices)
	assert.Equal(t, "X..X", seq)
}

func TestHzCommand_Report(t *testing.T) {
	out := &recordingOut{}
	renderer := &stubRenderer{}
	cmd := NewHzCommand(renderer)

	err := cmd.Handle(context.Background(), newTestContext(discordMessage("!hz 18 10 3"), out))
	require.NoError(t, err)

	want := "```3 taps 10 high on level 18:\n4.44 - 6.67 Hz\nSample input sequence: X............X............X```"
	assert.Equal(t, []string{want}, out.Texts())

	require.Len(t, out.attachments, 1)
	assert.Equal(t, "cool_anim.gif", out.attachments[0].Name)
	assert.Equal(t, "chan-1", out.attachments[0].Channel)
	assert.Equal(t, []byte("GIF89a"), out.attachments[0].Data)
	assert.Equal(t, []int{0, 13, 26}, renderer.taps)
	assert.Equal(t, 18, renderer.level)
	assert.Equal(t, 10, renderer.height)
}

func TestHzCommand_LongSequenceIsNotPrinted(t *testing.T) {
	out := &recordingOut{}

	// level 0: 48 * 19 frames
	err := NewHzCommand(nil).Handle(context.Background(), newTestContext(twitchMessage("!hz 0 0 2"), out))
	require.NoError(t, err)

	require.Len(t, out.messages, 1)
	assert.Contains(t, out.messages[0].Text, "Sample sequence too long. (GIF will not animate)")
	assert.Contains(t, out.messages[0].Text, fmt.Sprintf("%s - %s Hz", "0.07", "0.13"))
	assert.Empty(t, out.attachments)
}

func TestHzCommand_WholeNumberKeepsDecimal(t *testing.T) {
	out := &recordingOut{}

	// level 29: 1 frame per row, 15 frames, 5 taps -> 16.0 - 20.0
	err := NewHzCommand(nil).Handle(context.Background(), newTestContext(twitchMessage("!hz 29 4 5"), out))
	require.NoError(t, err)
	require.Len(t, out.messages, 1)
	assert.Contains(t, out.messages[0].Text, "16.0 - 20.0 Hz")
}

func TestHzCommand_UsageErrors(t *testing.T) {
	for _, text := range []string{"!hz", "!hz 18 10", "!hz 18 10 3 4", "!hz eighteen 10 3", "!hz 18 10 3.5"} {
		t.Run(text, func(t *testing.T) {
			out := &recordingOut{}
			err := NewHzCommand(nil).Handle(context.Background(), newTestContext(twitchMessage(text), out))
			assert.True(t, IsUsageError(err), "got %v", err)
			assert.Empty(t, out.messages)
		})
	}
}

func TestHzCommand_DomainErrorSkipsRendering(t *testing.T) {
	out := &recordingOut{}
	renderer := &stubRenderer{}

	err := NewHzCommand(renderer).Handle(context.Background(), newTestContext(twitchMessage("!hz 18 25 3"), out))

	var msgErr *MessageError
	require.ErrorAs(t, err, &msgErr)
	assert.Equal(t, MsgUnrealistic, msgErr.Message)
	assert.Empty(t, out.messages)
	assert.Nil(t, renderer.taps)
}

func TestHzCommand_UnsupportedAttachmentIsSkipped(t *testing.T) {
	out := &recordingOut{attachmentErr: fmt.Errorf("twitch: %w", domain.ErrUnsupported)}

	err := NewHzCommand(&stubRenderer{}).Handle(context.Background(), newTestContext(twitchMessage("!hz 18 10 3"), out))
	require.NoError(t, err)
	assert.Len(t, out.messages, 1)
}

func TestHzCommand_RenderFailure(t *testing.T) {
	out := &recordingOut{}
	renderErr := errors.New("palette exhausted")

	err := NewHzCommand(&stubRenderer{err: renderErr}).Handle(context.Background(), newTestContext(twitchMessage("!hz 18 10 3"), out))
	require.ErrorIs(t, err, renderErr)
	assert.True(t, strings.HasPrefix(out.Texts()[0], "```3 taps"))
}
