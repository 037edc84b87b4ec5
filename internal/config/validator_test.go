package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		schema string
		want   []string
	}{
		{
			name: "clean sqlite",
			cfg:  Config{StoreDriver: StoreDriverSQLite, APIKey: "k", Environment: "dev"},
		},
		{
			name: "example api key and memory store",
			cfg:  Config{StoreDriver: StoreDriverMemory, APIKey: exampleAPIKey},
			want: []string{"API_KEY", "STORE_DRIVER=memory"},
		},
		{
			name: "default postgres password",
			cfg:  Config{StoreDriver: StoreDriverPostgres, APIKey: "k", DBPassword: "postgres"},
			want: []string{"DB_PASSWORD"},
		},
		{
			name: "production without proxies",
			cfg:  Config{StoreDriver: StoreDriverSQLite, APIKey: "k", Environment: "production"},
			want: []string{"TRUSTED_PROXIES"},
		},
		{
			name:   "outdated env file",
			cfg:    Config{StoreDriver: StoreDriverSQLite, APIKey: "k"},
			schema: "0.9",
			want:   []string{"expected 1.0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_SCHEMA_VERSION", tt.schema)

			got := tt.cfg.Warnings()

			assert.Len(t, got, len(tt.want))
			for i, fragment := range tt.want {
				if i < len(got) {
					assert.Contains(t, got[i], fragment)
				}
			}
		})
	}
}
