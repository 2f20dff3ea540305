package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "super-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/renoplan")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/renoplan")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("PORT", "")
	t.Setenv("JWT_ISSUER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "renoplan", cfg.JWTIssuer)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/renoplan")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_ISSUER", "renoplan-staging")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "renoplan-staging", cfg.JWTIssuer)
}

func TestSecretDiagnostic_OmitsSecret(t *testing.T) {
	t.Parallel()

	cfg := Config{JWTSecret: "super-secret"}
	diag := cfg.SecretDiagnostic()
	assert.NotContains(t, diag, "super-secret")
	assert.Contains(t, diag, "12 bytes")
}
