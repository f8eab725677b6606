package main

import (
	"testing"
	"time"

	"catalog/internal/config"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	_, err := issue(config.Config{TokenTTL: time.Hour}, "ops")
	assert.Error(t, err)

	cfg := config.Config{JWTSecret: "test_jwt_secret", TokenTTL: time.Hour}
	token, err := issue(cfg, "ops")
	require.NoError(t, err)

	claims, err := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims["sub"])
}
