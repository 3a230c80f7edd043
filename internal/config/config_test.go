package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_EXPIRY_HOURS", "")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	// デフォルトの有効期限は1時間
	assert.Equal(t, time.Hour, cfg.Auth.TokenExpiry)
	// 開発環境では開発用シークレットにフォールバックする
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.False(t, cfg.Cloudinary.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("JWT_SECRET", "injected-secret")
	t.Setenv("TOKEN_EXPIRY_HOURS", "24")
	t.Setenv("DB_NAME", "socialdb")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "injected-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenExpiry)
	assert.Equal(t, "socialdb", cfg.Database.DBName)
}

func TestLoad_ReleaseModeRequiresSecret(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET", "")

	// リリース環境ではシークレットなしで起動できない
	_, err := Load()
	assert.Error(t, err)

	// 明示的に注入すれば起動できる
	t.Setenv("JWT_SECRET", "injected-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "injected-secret", cfg.Auth.JWTSecret)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY_HOURS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.Auth.TokenExpiry)
}
