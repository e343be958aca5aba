package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_PostgresDSN(t *testing.T) {
	t.Setenv("POSTGRES_USER", "agrodoc")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	t.Setenv("POSTGRES_DB", "agrodoc_db")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("AWS_USE_SECRETS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// The DSN must come from the resolved config, not raw env reads, so
	// credential overrides reach the connection.
	assert.Equal(t,
		"host=db.internal user=agrodoc password=s3cret dbname=agrodoc_db port=5433 sslmode=disable TimeZone=UTC",
		cfg.PostgresDSN())
}

func TestLoadConfig_OverriddenCredentialsReachDSN(t *testing.T) {
	t.Setenv("POSTGRES_USER", "env-user")
	t.Setenv("POSTGRES_PASSWORD", "env-pass")
	t.Setenv("POSTGRES_DB", "env-db")
	t.Setenv("AWS_USE_SECRETS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.PostgresUser = "secret-user"
	cfg.PostgresPassword = "secret-pass"

	assert.Contains(t, cfg.PostgresDSN(), "user=secret-user")
	assert.Contains(t, cfg.PostgresDSN(), "password=secret-pass")
}

func TestLoadConfig_IncompleteDatabaseConfig(t *testing.T) {
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("POSTGRES_DB", "")
	t.Setenv("AWS_USE_SECRETS", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
