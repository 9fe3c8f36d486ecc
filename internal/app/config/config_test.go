package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("AUTH_EDITOR_GROUPS", "")
		t.Setenv("SESSION_MAX_AGE_IN_DAYS", "")

		cfg := NewInternalConfig()
		assert.Equal(t, "X-Pomerium-Jwt-Assertion", cfg.Auth.AssertionHeader)
		assert.Equal(t, 30, cfg.Session.MaxAgeInDays)
		assert.Empty(t, cfg.Auth.EditorGroups, "no editor groups means everyone may edit")
	})

	t.Run("Editor groups are read as CSV", func(t *testing.T) {
		t.Setenv("AUTH_EDITOR_GROUPS", "orca-editors, support-leads ,")

		cfg := NewInternalConfig()
		assert.Equal(t, []string{"orca-editors", "support-leads"}, cfg.Auth.EditorGroups)
	})

	t.Run("Invalid integers fall back to defaults", func(t *testing.T) {
		t.Setenv("SESSION_RECENT_ITEMS_LIMIT", "ten")

		cfg := NewInternalConfig()
		assert.Equal(t, 10, cfg.Session.RecentItemsLimit)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg := NewDriverConfig()
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.RabbitMQ.Enabled)
}
