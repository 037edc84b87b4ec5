// Package database owns connection setup and schema migrations for the
// progress stores.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	goosedb "github.com/pressly/goose/v3/database"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase)
	return pool, nil
}

// MigratePool applies the Postgres migrations through a database/sql view of pool.
func MigratePool(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return Migrate(ctx, db, DialectPostgres)
}

// Migrate applies every pending embedded migration for dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	var gooseDialect goosedb.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goosedb.DialectPostgres
	case DialectSQLite:
		gooseDialect = goosedb.DialectSQLite3
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownDialect, dialect)
	}

	fsys, err := fs.Sub(migrations, "migrations/"+dialect)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"dialect", dialect,
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return nil
}
