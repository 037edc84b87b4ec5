package config

import "time"

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

// Defaults not expressible as struct tags
const (
	DefaultSessionTTL      = 30 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
