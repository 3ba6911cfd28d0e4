package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"ctmBot/internal/domain"
)

// Frames per row drop for levels 0-28. Higher levels (mod 256) drop every frame.
var gravityTable = [...]int{48, 43, 38, 33, 28, 23, 18, 13, 8, 6, 5, 5, 5, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}

const (
	MsgUnrealistic = "Unrealistic parameters."
	MsgNotEvenTAS  = "Not even TAS can do this."

	maxSampleSequence = 49
	hzAttachmentName  = "cool_anim.gif"
)

// FieldRenderer draws the playfield animation for a tap sequence.
type FieldRenderer interface {
	Render(level, height int, tapFrames []int) (io.Reader, error)
}

type HzCommand struct {
	renderer FieldRenderer
}

func NewHzCommand(renderer FieldRenderer) *HzCommand {
	return &HzCommand{renderer: renderer}
}

// HzRange is the tapping speed window needed to get a piece to the wall.
type HzRange struct {
	Frames int
	Min    float64
	Max    float64
}

func Gravity(level int) int {
	if l := level % 256; l >= 0 && l < len(gravityTable) {
		return gravityTable[l]
	}
	return 1
}

// CalculateHz validates the parameters and computes the Hz window.
func CalculateHz(level, height, taps int) (HzRange, error) {
	if level < 0 || height < 0 || height > 19 || taps < 1 || taps > 5 {
		return HzRange{}, Fail(MsgUnrealistic)
	}

	frames := Gravity(level) * (19 - height)

	if taps == 1 {
		return HzRange{}, Failf("You have %d frames to time this tap (and maybe a rotation for polevault).", frames)
	}
	if 2*taps-1 > frames {
		return HzRange{}, Fail(MsgNotEvenTAS)
	}

	return HzRange{
		Frames: frames,
		Min:    round2(60 * float64(taps-1) / float64(frames)),
		Max:    round2(60 * float64(taps) / float64(frames)),
	}, nil
}

// InputSequence spreads taps evenly over frames and marks them with X.
func InputSequence(frames, taps int) ([]int, string) {
	spacing := float64(frames)/float64(taps-1) - 0.1

	seq := []byte(strings.Repeat(".", frames))
	indices := make([]int, 0, taps)
	for i := 0; i < taps; i++ {
		idx := int(math.Floor(spacing * float64(i)))
		indices = append(indices, idx)
		seq[idx] = 'X'
	}
	return indices, string(seq)
}

func (c *HzCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	args := cmdCtx.Args()
	if len(args) != 3 {
		return Usage("expected level, height and taps")
	}

	nums := make([]int, 3)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Usage(err.Error())
		}
		nums[i] = n
	}
	level, height, taps := nums[0], nums[1], nums[2]

	hz, err := CalculateHz(level, height, taps)
	if err != nil {
		return err
	}

	indices, seq := InputSequence(hz.Frames, taps)

	var b strings.Builder
	fmt.Fprintf(&b, "%d taps %d high on level %d:\n", taps, height, level)
	fmt.Fprintf(&b, "%s - %s Hz\n", formatHz(hz.Min), formatHz(hz.Max))
	if len(seq) <= maxSampleSequence {
		b.WriteString("Sample input sequence: " + seq)
	} else {
		b.WriteString("Sample sequence too long. (GIF will not animate)")
	}

	if err := cmdCtx.SendMessage(ctx, "```"+b.String()+"```"); err != nil {
		return err
	}

	if c.renderer == nil {
		return nil
	}
	anim, err := c.renderer.Render(level, height, indices)
	if err != nil {
		return fmt.Errorf("hz: render field: %w", err)
	}
	err = cmdCtx.SendAttachment(ctx, cmdCtx.ChannelID(), "", domain.Attachment{
		Name:        hzAttachmentName,
		ContentType: "image/gif",
		Data:        anim,
	})
	if errors.Is(err, domain.ErrUnsupported) {
		return nil
	}
	return err
}

// round2 rounds half to even on the exact binary value, as Python's round(x, 2) does.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func formatHz(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
