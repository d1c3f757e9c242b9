package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults are filled in", func(t *testing.T) {
		path := writeConfig(t, `
server:
  host: localhost
  port: 8080
firebase:
  project_id: borrow-buddy-dev
  web_api_key: test-web-api-key
auth:
  jwt_secret: unit-test-secret-at-least-32-chars!!
`)

		cfg, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, StoreTypeFirestore, cfg.Store.Type)
		assert.Equal(t, AuthProviderFirebase, cfg.Auth.Provider)
		assert.Equal(t, 60, cfg.Auth.AccessTokenExpiry)
		assert.Equal(t, 60*24*7, cfg.Auth.RefreshTokenExpiry)
		assert.Equal(t, 3, cfg.Dashboard.RecentLimit)
		assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendPendingReminders)
		assert.Equal(t, "localhost:8080", cfg.GetServerAddress())
	})

	t.Run("Local auth requires the postgres store", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 8080
firebase:
  project_id: borrow-buddy-dev
auth:
  provider: local
  jwt_secret: unit-test-secret-at-least-32-chars!!
`)

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "postgres")
	})

	t.Run("Short JWT secret is rejected", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 8080
firebase:
  project_id: borrow-buddy-dev
  web_api_key: test-web-api-key
auth:
  jwt_secret: too-short
`)

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "32 characters")
	})

	t.Run("Environment overrides win", func(t *testing.T) {
		t.Setenv("STORE_TYPE", "postgres")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_USER", "borrowbuddy")
		t.Setenv("DB_NAME", "borrowbuddy")

		path := writeConfig(t, `
server:
  port: 8080
firebase:
  project_id: borrow-buddy-dev
  web_api_key: test-web-api-key
auth:
  jwt_secret: unit-test-secret-at-least-32-chars!!
database:
  port: 5432
  ssl_mode: disable
`)

		cfg, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, StoreTypePostgres, cfg.Store.Type)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Contains(t, cfg.GetDatabaseConnectionString(), "db.internal:5432/borrowbuddy")
	})
}
