package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
)

// Dialects accepted by Migrate
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgUnknownDialect          = "unknown migration dialect"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Applied migration"
)
