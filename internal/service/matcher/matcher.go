// Package matcher ranks providers for a requested service and area.
package matcher

import (
	"sort"
	"strings"

	"github.com/groovehire/backend/internal/model/provider"
)

// MaxResults caps how many providers are offered to a client.
const MaxResults = 3

// areas are the Nairobi neighbourhoods recognised in free text.
var areas = []string{
	"westlands", "karen", "kilimani", "cbd", "upperhill", "lavington",
	"kileleshwa", "parklands", "eastleigh", "kasarani", "thika", "ngong",
	"runda", "muthaiga", "gigiri", "spring valley", "riverside",
}

// Matcher finds providers from a directory.
type Matcher struct {
	store provider.Store
}

// New creates a Matcher over store.
func New(store provider.Store) *Matcher {
	return &Matcher{store: store}
}

// FindProviders returns up to MaxResults providers for service, preferring
// those that serve location. When nobody serves the area every provider of
// the service is considered, since they can travel. Results are ordered by
// rating, best first, then by distance.
func (m *Matcher) FindProviders(service, location string) []provider.Provider {
	candidates := m.store.ByService(service)
	if len(candidates) == 0 {
		return nil
	}

	if location = strings.TrimSpace(location); location != "" {
		var local []provider.Provider
		for _, p := range candidates {
			if p.Serves(location) {
				local = append(local, p)
			}
		}
		if len(local) > 0 {
			candidates = local
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].DistanceKM() < candidates[j].DistanceKM()
	})

	if len(candidates) > MaxResults {
		candidates = candidates[:MaxResults]
	}
	return candidates
}

// ExtractLocation pulls a known area out of message. Short messages that
// name no known area are taken as the location verbatim; anything longer
// yields "".
func ExtractLocation(message string) string {
	lower := strings.ToLower(message)
	for _, area := range areas {
		if strings.Contains(lower, area) {
			return titleCase(area)
		}
	}

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ""
	}
	if len(strings.Fields(trimmed)) <= 3 {
		return titleCase(trimmed)
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
