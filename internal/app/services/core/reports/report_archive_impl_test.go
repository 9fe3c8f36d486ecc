package reports

import (
	"context"
	"errors"
	"orca-service/internal/app/config"
	"orca-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) error {
	return m.Called(ctx, bucketName, objectName, contentType, content).Error(0)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) ListObjects(ctx context.Context, bucketName, prefix string) ([]models.StoredObject, error) {
	args := m.Called(ctx, bucketName, prefix)
	objects, _ := args.Get(0).([]models.StoredObject)
	return objects, args.Error(1)
}

func (m *MockStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	return m.Called(ctx, bucketName, objectName).Error(0)
}

func archiveConfig(enabled bool) *config.InternalConfig {
	return &config.InternalConfig{Report: config.Report{
		ArchiveEnabled:            enabled,
		BucketName:                "orca-reports",
		PresignedUrlExpiryInHours: 2,
	}}
}

func TestReportArchive(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC) }

	t.Run("Archive puts the report under the reports prefix", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("PutObject", ctx, "orca-reports", "reports/01ABC_clinic-patients.xlsx", "application/x", []byte("xlsx")).Return(nil)

		archive := NewReportArchive(storage, archiveConfig(true), zap.NewNop())
		err := archive.Archive(ctx, &models.Report{ID: "01ABC", FileName: "clinic-patients.xlsx", ContentType: "application/x", Content: []byte("xlsx")})
		require.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("Disabled archive keeps nothing", func(t *testing.T) {
		storage := new(MockStorage)
		archive := NewReportArchive(storage, archiveConfig(false), zap.NewNop())

		assert.False(t, archive.Enabled())
		assert.NoError(t, archive.Archive(ctx, &models.Report{}))
		listed, err := archive.List(ctx)
		assert.NoError(t, err)
		assert.Nil(t, listed)
		storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Nil storage disables the archive", func(t *testing.T) {
		assert.False(t, NewReportArchive(nil, archiveConfig(true), zap.NewNop()).Enabled())
	})

	t.Run("List is newest first with presigned URLs", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "orca-reports", "reports/").Return([]models.StoredObject{
			{Name: "reports/old.xlsx", Size: 10, LastModified: day(1)},
			{Name: "reports/new.xlsx", Size: 20, LastModified: day(3)},
		}, nil)
		storage.On("GetObjectUrlWithExpiryTime", ctx, "orca-reports", mock.Anything, 2*time.Hour).
			Return("https://minio/signed", nil)

		listed, err := NewReportArchive(storage, archiveConfig(true), zap.NewNop()).List(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "new.xlsx", listed[0].ObjectName)
		assert.Equal(t, int64(20), listed[0].Size)
		assert.Equal(t, "https://minio/signed", listed[0].DownloadURL)
		assert.Equal(t, "old.xlsx", listed[1].ObjectName)
	})

	t.Run("RemoveOlderThan deletes only expired reports", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "orca-reports", "reports/").Return([]models.StoredObject{
			{Name: "reports/a.xlsx", LastModified: day(1)},
			{Name: "reports/b.xlsx", LastModified: day(2)},
			{Name: "reports/c.xlsx", LastModified: day(10)},
		}, nil)
		storage.On("RemoveObject", ctx, "orca-reports", "reports/a.xlsx").Return(nil)
		storage.On("RemoveObject", ctx, "orca-reports", "reports/b.xlsx").Return(nil)

		removed, err := NewReportArchive(storage, archiveConfig(true), zap.NewNop()).RemoveOlderThan(ctx, day(5))
		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		storage.AssertNotCalled(t, "RemoveObject", ctx, "orca-reports", "reports/c.xlsx")
	})

	t.Run("RemoveOlderThan stops at the first failure", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("ListObjects", ctx, "orca-reports", "reports/").Return([]models.StoredObject{
			{Name: "reports/a.xlsx", LastModified: day(1)},
			{Name: "reports/b.xlsx", LastModified: day(2)},
		}, nil)
		storage.On("RemoveObject", ctx, "orca-reports", "reports/a.xlsx").Return(nil)
		storage.On("RemoveObject", ctx, "orca-reports", "reports/b.xlsx").Return(errors.New("denied"))

		removed, err := NewReportArchive(storage, archiveConfig(true), zap.NewNop()).RemoveOlderThan(ctx, day(5))
		assert.Error(t, err)
		assert.Equal(t, 1, removed)
	})
}
