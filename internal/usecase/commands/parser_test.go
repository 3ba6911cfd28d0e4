package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Parse(t *testing.T) {
	r := NewResolver("!")

	tests := []struct {
		name  string
		text  string
		ok    bool
		alias string
		args  []string
	}{
		{name: "bare alias", text: "!flip", ok: true, alias: "flip", args: []string{}},
		{name: "arguments", text: "!hz 18 10 3", ok: true, alias: "hz", args: []string{"18", "10", "3"}},
		{name: "alias lowercased", text: "!FLIP", ok: true, alias: "flip", args: []string{}},
		{name: "argument case kept", text: "!Echo Hello WORLD", ok: true, alias: "echo", args: []string{"Hello", "WORLD"}},
		{name: "extra whitespace dropped", text: "!hz   18\t10  \n 3  ", ok: true, alias: "hz", args: []string{"18", "10", "3"}},
		{name: "quotes are not special", text: `!say "a b"`, ok: true, alias: "say", args: []string{`"a`, `b"`}},
		{name: "plain chat", text: "hello there", ok: false},
		{name: "prefix only", text: "!", ok: false},
		{name: "prefix then space", text: "! flip", ok: false},
		{name: "prefix later in text", text: "gg !flip", ok: false},
		{name: "leading whitespace", text: "  !flip", ok: false},
		{name: "empty", text: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := r.Parse(tt.text)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.alias, inv.Alias)
			if len(tt.args) == 0 {
				assert.Empty(t, inv.Args)
			} else {
				assert.Equal(t, tt.args, inv.Args)
			}
		})
	}
}

func TestResolver_RawKeepsRemainderUnmodified(t *testing.T) {
	inv, ok := NewResolver("!").Parse("!note  keep   these  spaces")
	require.True(t, ok)
	assert.Equal(t, "  keep   these  spaces", inv.Raw)
	assert.Equal(t, []string{"keep", "these", "spaces"}, inv.Args)
}

func TestResolver_RawKeepsTrailingWhitespace(t *testing.T) {
	inv, ok := NewResolver("!").Parse("!hz 18 10 3  \n")
	require.True(t, ok)
	assert.Equal(t, " 18 10 3  \n", inv.Raw)
	assert.Equal(t, []string{"18", "10", "3"}, inv.Args)
}

func TestResolver_CustomPrefix(t *testing.T) {
	r := NewResolver("?")

	inv, ok := r.Parse("?seed")
	require.True(t, ok)
	assert.Equal(t, "seed", inv.Alias)

	_, ok = r.Parse("!seed")
	assert.False(t, ok)
}

func TestResolver_DefaultPrefix(t *testing.T) {
	assert.Equal(t, "!", NewResolver("").Prefix())
}
