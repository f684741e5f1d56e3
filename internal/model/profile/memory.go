package profile

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps the record in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	current *Profile
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Profile{}, ErrProfileNotFound
	}
	return clone(*s.current), nil
}

func (s *MemoryStore) Save(_ context.Context, p Profile) (Profile, error) {
	p = assignIDs(p, time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := clone(p)
	s.current = &stored
	return clone(p), nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func clone(p Profile) Profile {
	p.Portfolio = append([]PortfolioItem{}, p.Portfolio...)
	return p
}
