package commands

import (
	"slices"
	"strings"

	"ctmBot/internal/domain"
)

// CommandDescriptor exposes the metadata of a registered command for listings.
type CommandDescriptor struct {
	Name        string
	Aliases     []string
	Platforms   []domain.Platform
	Scope       string
	Description string
	Usage       string
}

// Catalog describes every registered command once, sorted by name. A name
// registered separately per platform is listed once with the platforms merged.
func Catalog(reg *Registry, prefix string) []CommandDescriptor {
	index := make(map[string]int)
	var out []CommandDescriptor
	for _, p := range domain.Platforms() {
		for _, def := range reg.Definitions(p) {
			if i, ok := index[def.Name]; ok {
				if !slices.Contains(out[i].Platforms, p) {
					out[i].Platforms = append(out[i].Platforms, p)
				}
				out[i].Scope = scopeLabel(out[i].Platforms)
				continue
			}
			index[def.Name] = len(out)
			out = append(out, CommandDescriptor{
				Name:        def.Name,
				Aliases:     def.Aliases,
				Platforms:   []domain.Platform{p},
				Scope:       def.Scope.String(),
				Description: def.Description,
				Usage:       prefix + def.Usage,
			})
		}
	}
	slices.SortFunc(out, func(a, b CommandDescriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

func scopeLabel(platforms []domain.Platform) string {
	switch {
	case len(platforms) > 1:
		return domain.ScopeBoth.String()
	case platforms[0] == domain.PlatformTwitch:
		return domain.ScopeTwitchOnly.String()
	default:
		return domain.ScopeDiscordOnly.String()
	}
}
