package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/prestige/internal/config"
	"github.com/osse101/prestige/internal/content"
	"github.com/osse101/prestige/internal/database"
	"github.com/osse101/prestige/internal/database/memory"
	"github.com/osse101/prestige/internal/database/postgres"
	"github.com/osse101/prestige/internal/database/sqlite"
	"github.com/osse101/prestige/internal/repository"
)

// Store is an opened progress repository and the function that releases it.
type Store struct {
	Progress repository.Progress
	Close    func() error
}

// OpenStore opens the progress store selected by cfg.StoreDriver and applies
// migrations for SQL drivers.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var store *Store
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.DefaultMaxConnections, PoolMaxIdle, PoolMaxLife)
		if err != nil {
			return nil, err
		}
		if err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		store = &Store{
			Progress: postgres.NewProgressRepository(pool),
			Close:    func() error { pool.Close(); return nil },
		}
	case config.StoreDriverSQLite:
		if cfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = &Store{Progress: s, Close: s.Close}
	case config.StoreDriverMemory:
		store = &Store{Progress: memory.NewStore(), Close: func() error { return nil }}
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}

// LoadContent reads the optional content override file.
func LoadContent(cfg *config.Config) (content.Catalog, error) {
	catalog, err := content.Load(cfg.ContentPath)
	if err != nil {
		return content.Catalog{}, err
	}
	slog.Info(LogMsgContentLoaded,
		"path", cfg.ContentPath,
		"effarig_unlocks", len(catalog.Effarig),
		"dilation_rebuyables", len(catalog.Dilation.Rebuyables),
		"dilation_upgrades", len(catalog.Dilation.Upgrades))
	return catalog, nil
}
