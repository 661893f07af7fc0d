package store

import (
	"context"
	"sync"

	"gppgateway/internal/notice/models"
	"gppgateway/pkg/platform/sentinel"
)

// InMemoryStore holds the single most recently loaded notice for manual
// testing. Every Put replaces the slot; there is no expiry and no isolation
// between callers.
type InMemoryStore struct {
	mu     sync.RWMutex
	notice models.Notice
}

// NewInMemory creates an empty single-slot store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

// Put replaces the held notice unconditionally.
func (s *InMemoryStore) Put(_ context.Context, notice models.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = notice
	return nil
}

// Get returns the held notice, or sentinel.ErrNotFound when nothing was stored.
func (s *InMemoryStore) Get(_ context.Context) (models.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notice == nil {
		return nil, sentinel.ErrNotFound
	}
	return s.notice, nil
}
