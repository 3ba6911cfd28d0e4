package commands

import (
	"slices"
	"strings"

	"ctmBot/internal/domain"
)

// Builder collects definitions during startup. Build hands out the read-only Registry.
type Builder struct {
	tables map[domain.Platform]map[string]*Definition
	defs   []*Definition
}

func NewBuilder() *Builder {
	tables := make(map[domain.Platform]map[string]*Definition)
	for _, p := range domain.Platforms() {
		tables[p] = make(map[string]*Definition)
	}
	return &Builder{tables: tables}
}

// Register inserts def under every alias into each table its scope targets.
// Nothing is inserted when any alias collides.
func (b *Builder) Register(def Definition) error {
	aliases := normalizeAliasList(def.Aliases)
	if len(aliases) == 0 {
		return &ConfigurationError{Reason: "command registered without aliases"}
	}
	if def.Handler == nil {
		return &ConfigurationError{Alias: aliases[0], Reason: "nil handler"}
	}

	platforms := def.Scope.Platforms()
	for _, p := range platforms {
		for _, alias := range aliases {
			if _, exists := b.tables[p][alias]; exists {
				return &ConfigurationError{Platform: p, Alias: alias, Reason: "already registered"}
			}
		}
	}

	stored := def
	stored.Aliases = aliases
	if strings.TrimSpace(stored.Name) == "" {
		stored.Name = aliases[0]
	}
	if stored.Usage == "" {
		stored.Usage = stored.Name
	}

	for _, p := range platforms {
		for _, alias := range aliases {
			b.tables[p][alias] = &stored
		}
	}
	b.defs = append(b.defs, &stored)
	return nil
}

func (b *Builder) Build() *Registry {
	tables := make(map[domain.Platform]map[string]*Definition, len(b.tables))
	for p, table := range b.tables {
		copied := make(map[string]*Definition, len(table))
		for alias, def := range table {
			copied[alias] = def
		}
		tables[p] = copied
	}
	return &Registry{
		tables: tables,
		defs:   append([]*Definition(nil), b.defs...),
	}
}

// Registry maps (platform, alias) to a definition. It is never mutated after Build,
// so lookups from concurrent dispatches need no locking.
type Registry struct {
	tables map[domain.Platform]map[string]*Definition
	defs   []*Definition
}

func (r *Registry) Resolve(platform domain.Platform, alias string) (*Definition, bool) {
	if r == nil {
		return nil, false
	}
	def, ok := r.tables[platform][normalizeCommandName(alias)]
	return def, ok
}

// Definitions lists the commands available on a platform, sorted by name.
func (r *Registry) Definitions(platform domain.Platform) []Definition {
	if r == nil {
		return nil
	}
	var out []Definition
	for _, def := range r.defs {
		if slices.Contains(def.Scope.Platforms(), platform) {
			cp := *def
			cp.Aliases = append([]string(nil), def.Aliases...)
			out = append(out, cp)
		}
	}
	slices.SortFunc(out, func(a, b Definition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func normalizeCommandName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeAliasList(values []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range values {
		key := normalizeCommandName(v)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
