package repository

import (
	"context"

	"github.com/osse101/prestige/internal/domain"
)

// Progress defines the interface for player-progress persistence.
// Implementations return copies; callers never share maps with the store.
type Progress interface {
	// Create stores a new record, failing with domain.ErrPlayerExists.
	Create(ctx context.Context, p *domain.Progress) error
	// Load fails with domain.ErrPlayerNotFound.
	Load(ctx context.Context, playerID string) (*domain.Progress, error)
	// Save overwrites an existing record, failing with domain.ErrPlayerNotFound.
	Save(ctx context.Context, p *domain.Progress) error
	Delete(ctx context.Context, playerID string) error
	Ping(ctx context.Context) error
}
