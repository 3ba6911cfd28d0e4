package commands

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Invocation is a message recognised as a command.
type Invocation struct {
	Alias string
	Args  []string
	// Raw is everything after the alias token, unmodified.
	Raw string
}

type Resolver struct {
	prefix string
}

func NewResolver(prefix string) *Resolver {
	if prefix == "" {
		prefix = "!"
	}
	return &Resolver{prefix: prefix}
}

func (r *Resolver) Prefix() string { return r.prefix }

// Parse reports whether text starts with the prefix immediately followed by an
// alias token. Arguments are split on whitespace only; there is no quoting.
func (r *Resolver) Parse(text string) (Invocation, bool) {
	if !strings.HasPrefix(text, r.prefix) {
		return Invocation{}, false
	}

	rest := text[len(r.prefix):]
	first, _ := utf8.DecodeRuneInString(rest)
	if rest == "" || unicode.IsSpace(first) {
		return Invocation{}, false
	}

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		end = len(rest)
	}

	return Invocation{
		Alias: strings.ToLower(rest[:end]),
		Args:  strings.Fields(rest[end:]),
		Raw:   rest[end:],
	}, true
}
