// Package sqlite provides an embedded SQLite progress store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/osse101/prestige/internal/database"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/repository"
)

// Store persists progress in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations. ":memory:" opens a
// private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise get its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := database.Migrate(ctx, sqlDB, database.DialectSQLite); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts one progress record.
func (s *Store) Create(ctx context.Context, p *domain.Progress) error {
	cols, err := database.EncodeProgress(p)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO player_progress (
		   player_id, wallet, effarig_unlock_bits, effarig_run,
		   dilation_upgrades, dilation_rebuyables, last_update, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PlayerID,
		string(cols.Wallet),
		cols.EffarigUnlockBits,
		cols.EffarigRun,
		cols.DilationUpgrades,
		string(cols.DilationRebuyables),
		toMillis(p.LastUpdate),
		toMillis(p.UpdatedAt),
		toMillis(p.UpdatedAt),
	)
	if err != nil {
		if isConstraintPrimaryKey(err) {
			return fmt.Errorf("%w: %s", domain.ErrPlayerExists, p.PlayerID)
		}
		return fmt.Errorf("insert progress: %w", err)
	}
	return nil
}

// Load reads one progress record.
func (s *Store) Load(ctx context.Context, playerID string) (*domain.Progress, error) {
	var (
		wallet, rebuyables    string
		lastUpdate, updatedAt int64
		cols                  database.ProgressColumns
	)
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT wallet, effarig_unlock_bits, effarig_run, dilation_upgrades,
		        dilation_rebuyables, last_update, updated_at
		 FROM player_progress WHERE player_id = ?`,
		playerID,
	)
	if err := row.Scan(&wallet, &cols.EffarigUnlockBits, &cols.EffarigRun, &cols.DilationUpgrades,
		&rebuyables, &lastUpdate, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("load progress: %w", err)
	}
	cols.Wallet = []byte(wallet)
	cols.DilationRebuyables = []byte(rebuyables)

	p := &domain.Progress{
		PlayerID:   playerID,
		LastUpdate: fromMillis(lastUpdate),
		UpdatedAt:  fromMillis(updatedAt),
	}
	if err := cols.Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save overwrites one existing progress record.
func (s *Store) Save(ctx context.Context, p *domain.Progress) error {
	cols, err := database.EncodeProgress(p)
	if err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE player_progress
		 SET wallet = ?, effarig_unlock_bits = ?, effarig_run = ?,
		     dilation_upgrades = ?, dilation_rebuyables = ?,
		     last_update = ?, updated_at = ?
		 WHERE player_id = ?`,
		string(cols.Wallet),
		cols.EffarigUnlockBits,
		cols.EffarigRun,
		cols.DilationUpgrades,
		string(cols.DilationRebuyables),
		toMillis(p.LastUpdate),
		toMillis(p.UpdatedAt),
		p.PlayerID,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.PlayerID)
	}
	return nil
}

// Delete removes one progress record if present.
func (s *Store) Delete(ctx context.Context, playerID string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM player_progress WHERE player_id = ?`, playerID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

// Ping checks the handle.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func isConstraintPrimaryKey(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
}

var _ repository.Progress = (*Store)(nil)
