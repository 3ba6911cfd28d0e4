package commands

import (
	"context"
	"fmt"
)

// SeedCommand prints a random game seed. Seeds whose low byte is below 3 are rerolled.
type SeedCommand struct {
	intn func(n int) int
}

func NewSeedCommand(intn func(n int) int) *SeedCommand {
	return &SeedCommand{intn: intn}
}

func (c *SeedCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	seed := 0
	for seed%0x100 < 0x3 {
		seed = 0x200 + c.intn(0xffffff-0x200+1)
	}
	return cmdCtx.SendMessage(ctx, fmt.Sprintf("RANDOM SEED: [%06x]", seed))
}
