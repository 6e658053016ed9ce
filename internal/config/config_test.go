package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cfg := &Config{
		DatabaseURL:    "postgres://localhost/linkhop",
		AdminJWTSecret: "secret",
	}
	assert.NoError(t, cfg.Validate())

	cfg.DatabaseURL = ""
	err := cfg.Validate()
	assert.True(t, errors.Is(err, ErrConfiguration))

	cfg.DatabaseURL = "postgres://localhost/linkhop"
	cfg.AdminJWTSecret = ""
	err = cfg.Validate()
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "/", cfg.HomeURL)
	assert.Equal(t, "test123", cfg.TestTrackingCode)
	assert.Equal(t, 24, cfg.AdminJWTTTLHours)
	assert.Greater(t, cfg.RateLimitRedirectRPS, cfg.RateLimitRPS)
}
