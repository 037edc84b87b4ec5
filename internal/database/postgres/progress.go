package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/prestige/internal/database"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/repository"
)

// ProgressRepository implements repository.Progress for PostgreSQL
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create inserts a new progress row
func (r *ProgressRepository) Create(ctx context.Context, p *domain.Progress) error {
	cols, err := database.EncodeProgress(p)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO player_progress (
			player_id, wallet, effarig_unlock_bits, effarig_run,
			dilation_upgrades, dilation_rebuyables, last_update, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`
	_, err = r.db.Exec(ctx, query,
		p.PlayerID, cols.Wallet, cols.EffarigUnlockBits, cols.EffarigRun,
		cols.DilationUpgrades, cols.DilationRebuyables, p.LastUpdate, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrPlayerExists, p.PlayerID)
		}
		return fmt.Errorf("failed to insert progress: %w", err)
	}
	return nil
}

// Load reads one player's progress
func (r *ProgressRepository) Load(ctx context.Context, playerID string) (*domain.Progress, error) {
	query := `
		SELECT wallet, effarig_unlock_bits, effarig_run, dilation_upgrades,
		       dilation_rebuyables, last_update, updated_at
		FROM player_progress
		WHERE player_id = $1
	`
	var cols database.ProgressColumns
	p := &domain.Progress{PlayerID: playerID}
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&cols.Wallet, &cols.EffarigUnlockBits, &cols.EffarigRun, &cols.DilationUpgrades,
		&cols.DilationRebuyables, &p.LastUpdate, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if err := cols.Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save overwrites an existing progress row
func (r *ProgressRepository) Save(ctx context.Context, p *domain.Progress) error {
	cols, err := database.EncodeProgress(p)
	if err != nil {
		return err
	}

	query := `
		UPDATE player_progress
		SET wallet = $2, effarig_unlock_bits = $3, effarig_run = $4,
		    dilation_upgrades = $5, dilation_rebuyables = $6,
		    last_update = $7, updated_at = $8
		WHERE player_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		p.PlayerID, cols.Wallet, cols.EffarigUnlockBits, cols.EffarigRun,
		cols.DilationUpgrades, cols.DilationRebuyables, p.LastUpdate, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.PlayerID)
	}
	return nil
}

// Delete removes a player's progress. Deleting a missing player is not an error.
func (r *ProgressRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM player_progress WHERE player_id = $1`, playerID); err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return nil
}

// Ping checks the pool
func (r *ProgressRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

var _ repository.Progress = (*ProgressRepository)(nil)
