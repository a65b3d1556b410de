package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "resume_chat", cfg.MongoDatabase)
	assert.Equal(t, "gemini-2.0-flash", cfg.AIModel)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 7*24*60, cfg.JWTTTLMinutes)
	assert.False(t, cfg.AuthRequired)
	assert.False(t, cfg.Production())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("AI_MODEL", "gpt-4o-mini")
	t.Setenv("JWT_TTL_MINUTES", "60")
	t.Setenv("AUTH_REQUIRED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "gpt-4o-mini", cfg.AIModel)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.True(t, cfg.AuthRequired)
	assert.True(t, cfg.Production())
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")
	t.Setenv("AUTH_REQUIRED", "maybe")

	cfg := Load()

	assert.Equal(t, 7*24*60, cfg.JWTTTLMinutes)
	assert.False(t, cfg.AuthRequired)
}
