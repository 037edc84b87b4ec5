// Package memory provides a process-local progress store for development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/repository"
)

// Store keeps deep copies of progress records in a map.
type Store struct {
	mu      sync.RWMutex
	records map[string]*domain.Progress
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]*domain.Progress)}
}

func (s *Store) Create(_ context.Context, p *domain.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[p.PlayerID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerExists, p.PlayerID)
	}
	s.records[p.PlayerID] = p.Clone()
	return nil
}

func (s *Store) Load(_ context.Context, playerID string) (*domain.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.records[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return p.Clone(), nil
}

func (s *Store) Save(_ context.Context, p *domain.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[p.PlayerID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.PlayerID)
	}
	s.records[p.PlayerID] = p.Clone()
	return nil
}

func (s *Store) Delete(_ context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, playerID)
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

var _ repository.Progress = (*Store)(nil)
