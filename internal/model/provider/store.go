package provider

import "strings"

// Store exposes the provider directory to handlers and the matcher.
type Store interface {
	List() []Provider
	ByService(service string) []Provider
	FindByID(id string) (Provider, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Provider
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied providers.
func NewMemoryStore(items []Provider) *MemoryStore {
	return &MemoryStore{items: append([]Provider(nil), items...)}
}

// List returns every provider in directory order.
func (s *MemoryStore) List() []Provider {
	return append([]Provider(nil), s.items...)
}

// ByService returns providers offering service (case-insensitive).
func (s *MemoryStore) ByService(service string) []Provider {
	service = strings.TrimSpace(service)
	var out []Provider
	for _, item := range s.items {
		if strings.EqualFold(item.Service, service) {
			out = append(out, item)
		}
	}
	return out
}

// FindByID looks up a provider by identifier.
func (s *MemoryStore) FindByID(id string) (Provider, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Provider{}, false
}
