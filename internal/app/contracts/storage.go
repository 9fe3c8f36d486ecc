package contracts

import (
	"context"
	"orca-service/internal/app/models"
	"time"
)

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) error
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
	ListObjects(ctx context.Context, bucketName, prefix string) ([]models.StoredObject, error)
	RemoveObject(ctx context.Context, bucketName, objectName string) error
}

// ReportArchive keeps generated reports for later download.
type ReportArchive interface {
	Enabled() bool
	Archive(ctx context.Context, report *models.Report) error
	List(ctx context.Context) ([]models.ArchivedReport, error)
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
