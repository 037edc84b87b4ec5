package config

import (
	"fmt"
	"os"
)

// EnvSchemaVersion is the .env layout this build was written against.
const EnvSchemaVersion = "1.0"

// Warnings reports settings that load fine but are unsafe or surprising in
// a real deployment. None of them stop the server.
func (c *Config) Warnings() []string {
	var warnings []string

	if v := os.Getenv("ENV_SCHEMA_VERSION"); v != "" && v != EnvSchemaVersion {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is %s, expected %s - your .env file may be outdated", v, EnvSchemaVersion))
	}

	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBPassword == exampleDBPassword || c.DBPassword == "postgres" {
			warnings = append(warnings, "DB_PASSWORD appears to be a default value - please use a secure password")
		}
	case StoreDriverMemory:
		warnings = append(warnings, "STORE_DRIVER=memory keeps progress only for the lifetime of the process")
	}

	if c.Environment == "production" && len(c.TrustedProxies) == 0 {
		warnings = append(warnings, "TRUSTED_PROXIES is empty - rate limiting keys on the direct peer address")
	}

	return warnings
}
