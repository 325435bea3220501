package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process fixed-window limiter. Safe for concurrent use.
type MemoryStore struct {
	cfg Config

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	count   int64
	resetAt time.Time
}

// NewMemoryStore creates an empty store for cfg.
func NewMemoryStore(cfg Config) *MemoryStore {
	return &MemoryStore{
		cfg:     cfg,
		entries: make(map[string]*entry),
	}
}

// Check implements Limiter. It never returns an error.
func (s *MemoryStore) Check(_ context.Context, clientID string, now time.Time) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)

	e, ok := s.entries[clientID]
	if !ok || now.After(e.resetAt) {
		e = &entry{resetAt: now.Add(s.cfg.Window)}
		s.entries[clientID] = e
	}
	e.count++

	return decide(s.cfg, e.count, e.resetAt, now), nil
}

// Len returns the number of tracked clients.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sweepLocked drops every entry whose window has ended. O(n) per call.
func (s *MemoryStore) sweepLocked(now time.Time) {
	for k, e := range s.entries {
		if now.After(e.resetAt) {
			delete(s.entries, k)
		}
	}
}
