// Package simulator maps a user utterance to a scripted bot reply.
//
// Rules are evaluated top to bottom and the first rule with a keyword
// contained in the lower-cased utterance wins. Earlier turns are never
// consulted, so "yes" produces the booking-details prompt even when no
// provider has been offered yet.
package simulator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyRulebook = errors.New("rulebook has no rules")
	ErrEmptyFallback = errors.New("fallback reply is required")
)

// Rule pairs trigger keywords with a canned reply.
type Rule struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Reply    string   `yaml:"reply" json:"reply"`
}

// matches reports whether any keyword occurs in the normalized utterance.
func (r Rule) matches(normalized string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Simulator is safe for concurrent use; it never mutates its table after
// construction.
type Simulator struct {
	rules    []Rule
	fallback string
}

// New validates and normalizes the rule table.
func New(rules []Rule, fallback string) (*Simulator, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRulebook
	}
	if strings.TrimSpace(fallback) == "" {
		return nil, ErrEmptyFallback
	}

	normalized := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		if strings.TrimSpace(rule.Reply) == "" {
			return nil, fmt.Errorf("rule %d (%q) has an empty reply", i, rule.Name)
		}
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%q) has no keywords", i, rule.Name)
		}
		if rule.Name == "" {
			rule.Name = keywords[0]
		}
		rule.Keywords = keywords
		normalized = append(normalized, rule)
	}

	return &Simulator{rules: normalized, fallback: fallback}, nil
}

// Default returns a simulator loaded with the built-in GrooveHire script.
func Default() *Simulator {
	sim, err := New(DefaultRules(), Fallback)
	if err != nil {
		panic(fmt.Sprintf("built-in rulebook is invalid: %v", err))
	}
	return sim
}

// Match returns the first rule triggered by utterance.
func (s *Simulator) Match(utterance string) (Rule, bool) {
	normalized := strings.ToLower(utterance)
	for _, rule := range s.rules {
		if rule.matches(normalized) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Simulate returns the scripted reply for utterance. It is total: anything
// that matches no rule gets the fallback.
func (s *Simulator) Simulate(utterance string) string {
	if rule, ok := s.Match(utterance); ok {
		return rule.Reply
	}
	return s.fallback
}

// Rules returns a copy of the normalized table.
func (s *Simulator) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, rule := range s.rules {
		rule.Keywords = append([]string(nil), rule.Keywords...)
		out[i] = rule
	}
	return out
}

// FallbackReply returns the reply used when nothing matches.
func (s *Simulator) FallbackReply() string {
	return s.fallback
}
