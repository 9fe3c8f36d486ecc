package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Ping(ctx context.Context) error { return nil }
func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return nil
}
func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}
func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, nil
}
func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	return false, nil
}
func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func TestApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 30, 0, time.UTC)
	windowKey := "orca:limit:REPORTS:jane@tidepool.org:28575960"

	t.Run("Within quota", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, windowKey, 61*time.Second).Return(3, nil)

		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			Subject: "Jane@Tidepool.org", LimiterGroupName: "reports", WindowDurationSec: 60, MaxQuota: 5, NowUTC: now,
		})
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("Quota exceeded reports retry after", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, windowKey, 61*time.Second).Return(6, nil)

		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			Subject: "jane@tidepool.org", LimiterGroupName: "REPORTS", WindowDurationSec: 60, MaxQuota: 5, NowUTC: now,
		})
		require.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Equal(t, 31, out.RetryAfterSecs, "30 seconds left in the window plus one")
	})

	t.Run("Zero quota disables the limit", func(t *testing.T) {
		repo := new(MockRedisRepository)
		out, err := NewResourceLimiter(repo, zap.NewNop()).ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			Subject: "jane@tidepool.org", LimiterGroupName: "REPORTS",
		})
		require.NoError(t, err)
		assert.True(t, out.Allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})
}
