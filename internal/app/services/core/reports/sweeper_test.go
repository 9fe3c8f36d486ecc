package reports

import (
	"context"
	"errors"
	"orca-service/internal/app/config"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *MockLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockArchive) Archive(ctx context.Context, report *models.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockArchive) List(ctx context.Context) ([]models.ArchivedReport, error) {
	args := m.Called(ctx)
	archived, _ := args.Get(0).([]models.ArchivedReport)
	return archived, args.Error(1)
}

func (m *MockArchive) RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

func TestSweeperRunOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 30, 3, 0, 0, 0, time.UTC)
	cfg := &config.InternalConfig{Report: config.Report{RetentionInDays: 30, SweeperCronSpec: "@daily"}}

	newSweeper := func(locker *MockLocker, archive *MockArchive) *Sweeper {
		sweeper := NewSweeper(zap.NewNop(), cfg, locker, archive)
		sweeper.now = func() time.Time { return now }
		return sweeper
	}

	t.Run("Leader removes reports past retention", func(t *testing.T) {
		locker, archive := new(MockLocker), new(MockArchive)
		locker.On("TryLock", ctx, constvars.ReportSweeperLockKey, 2*time.Minute).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, constvars.ReportSweeperLockKey, "token").Return(nil)
		archive.On("RemoveOlderThan", ctx, now.Add(-30*24*time.Hour)).Return(3, nil)

		newSweeper(locker, archive).RunOnce(ctx)

		archive.AssertExpectations(t)
		locker.AssertCalled(t, "Unlock", mock.Anything, constvars.ReportSweeperLockKey, "token")
	})

	t.Run("Follower does not sweep", func(t *testing.T) {
		locker, archive := new(MockLocker), new(MockArchive)
		locker.On("TryLock", ctx, constvars.ReportSweeperLockKey, 2*time.Minute).Return(false, "", nil)

		newSweeper(locker, archive).RunOnce(ctx)

		archive.AssertNotCalled(t, "RemoveOlderThan", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock failure skips the sweep", func(t *testing.T) {
		locker, archive := new(MockLocker), new(MockArchive)
		locker.On("TryLock", ctx, constvars.ReportSweeperLockKey, 2*time.Minute).Return(false, "", errors.New("redis down"))

		newSweeper(locker, archive).RunOnce(ctx)

		archive.AssertNotCalled(t, "RemoveOlderThan", mock.Anything, mock.Anything)
	})

	t.Run("Sweep failure still releases the lock", func(t *testing.T) {
		locker, archive := new(MockLocker), new(MockArchive)
		locker.On("TryLock", ctx, constvars.ReportSweeperLockKey, 2*time.Minute).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, constvars.ReportSweeperLockKey, "token").Return(nil)
		archive.On("RemoveOlderThan", ctx, mock.Anything).Return(1, errors.New("denied"))

		newSweeper(locker, archive).RunOnce(ctx)

		locker.AssertCalled(t, "Unlock", mock.Anything, constvars.ReportSweeperLockKey, "token")
	})
}

func TestSweeperRetentionFallback(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 30, 3, 0, 0, 0, time.UTC)

	for _, days := range []int{0, -5} {
		locker, archive := new(MockLocker), new(MockArchive)
		locker.On("TryLock", ctx, constvars.ReportSweeperLockKey, 2*time.Minute).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, constvars.ReportSweeperLockKey, "token").Return(nil)
		archive.On("RemoveOlderThan", ctx, now.Add(-30*24*time.Hour)).Return(0, nil)

		cfg := &config.InternalConfig{Report: config.Report{RetentionInDays: days}}
		sweeper := NewSweeper(zap.NewNop(), cfg, locker, archive)
		sweeper.now = func() time.Time { return now }
		sweeper.RunOnce(ctx)

		archive.AssertExpectations(t)
	}
}

func TestSweeperStartDisabled(t *testing.T) {
	archive := new(MockArchive)
	archive.On("Enabled").Return(false)

	sweeper := NewSweeper(zap.NewNop(), &config.InternalConfig{}, new(MockLocker), archive)
	sweeper.Start(context.Background())

	assert.Nil(t, sweeper.cron)
	sweeper.Stop()
}
