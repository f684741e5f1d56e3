// Package intent guesses which service category a free-text message asks for.
package intent

import (
	"strings"

	"github.com/groovehire/backend/internal/model/provider"
)

// Decision is the detected category and how it was recognised.
type Decision struct {
	Service provider.Service
	Score   int
}

// Matched reports whether a category was found.
func (d Decision) Matched() bool {
	return d.Score > 0
}

// Directory key for each category in the menu. Hint buckets are checked in
// menu order and the first hit wins.
var hintBuckets = []struct {
	key   string
	hints []string
}{
	{"1", []string{"plumb", "pipe", "tap", "water"}},
	{"2", []string{"electric", "wire", "power", "light"}},
	{"3", []string{"clean", "house", "tidy"}},
	{"4", []string{"tutor", "teach", "lesson", "study"}},
	{"5", []string{"car", "vehicle", "mechanic"}},
	{"6", []string{"paint", "color", "wall"}},
}

const (
	scoreMenuKey = 3
	scoreName    = 2
	scoreHint    = 1
)

// Detect picks a category from message: a bare menu number first, then a
// category name anywhere in the text, then loose hint words.
func Detect(message string) Decision {
	normalized := strings.TrimSpace(strings.ToLower(message))
	if normalized == "" {
		return Decision{}
	}

	services := provider.Services()
	for _, svc := range services {
		if normalized == svc.Key {
			return Decision{Service: svc, Score: scoreMenuKey}
		}
	}
	for _, svc := range services {
		if strings.Contains(normalized, strings.ToLower(svc.Name)) {
			return Decision{Service: svc, Score: scoreName}
		}
	}
	for _, bucket := range hintBuckets {
		for _, hint := range bucket.hints {
			if strings.Contains(normalized, hint) {
				return Decision{Service: byKey(services, bucket.key), Score: scoreHint}
			}
		}
	}
	return Decision{}
}

func byKey(services []provider.Service, key string) provider.Service {
	for _, svc := range services {
		if svc.Key == key {
			return svc
		}
	}
	return provider.Service{}
}
