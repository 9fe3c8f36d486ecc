package jwtmanager

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJWTManager(t *testing.T) {
	ctx := context.Background()
	data := map[string]json.RawMessage{"recent": json.RawMessage(`[{"userId":"abc"}]`)}

	t.Run("Round trip", func(t *testing.T) {
		manager, err := NewJWTManager("secret", "orca_recent_users", zap.NewNop())
		require.NoError(t, err)

		created, err := manager.CreateToken(&CreateTokenInput{Data: data, ExpiresAt: time.Now().Add(time.Hour)})
		require.NoError(t, err)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.True(t, verified.Valid)
		assert.JSONEq(t, `[{"userId":"abc"}]`, string(verified.Data["recent"]))
	})

	t.Run("Token from another cookie does not verify", func(t *testing.T) {
		users, _ := NewJWTManager("secret", "orca_recent_users", zap.NewNop())
		clinics, _ := NewJWTManager("secret", "orca_recent_clinics", zap.NewNop())

		created, err := users.CreateToken(&CreateTokenInput{Data: data, ExpiresAt: time.Now().Add(time.Hour)})
		require.NoError(t, err)

		verified, err := clinics.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.False(t, verified.Valid, "keys are derived per cookie name")
	})

	t.Run("Expired token", func(t *testing.T) {
		manager, _ := NewJWTManager("secret", "orca_flash", zap.NewNop())
		created, err := manager.CreateToken(&CreateTokenInput{Data: data, ExpiresAt: time.Now().Add(-time.Minute)})
		require.NoError(t, err)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.False(t, verified.Valid)
	})

	t.Run("Tampered token", func(t *testing.T) {
		manager, _ := NewJWTManager("secret", "orca_flash", zap.NewNop())
		created, _ := manager.CreateToken(&CreateTokenInput{Data: data, ExpiresAt: time.Now().Add(time.Hour)})

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token + "x"})
		require.NoError(t, err)
		assert.False(t, verified.Valid)
	})

	t.Run("Empty secret is refused", func(t *testing.T) {
		_, err := NewJWTManager("", "orca_flash", zap.NewNop())
		assert.Error(t, err)
	})
}
