package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"usersvc/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/users")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("PORT", "")
	t.Setenv("VERIFY_EMAIL_EXPIRY_MIN", "")
	t.Setenv("USER_CACHE_TTL_SEC", "")

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, 2*time.Minute, cfg.VerifyEmailExpiry)
	assert.Equal(t, "verify_email", cfg.VerifyEmailTopic)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, time.Minute, cfg.UserCacheTTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/users")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("VERIFY_EMAIL_EXPIRY_MIN", "15")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "not-a-number")
	t.Setenv("ENV", "test")

	cfg := config.LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.VerifyEmailExpiry)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests) // valor inválido cai no padrão
	assert.True(t, cfg.IsTest())
}
