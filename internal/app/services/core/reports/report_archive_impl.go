package reports

import (
	"context"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

type reportArchive struct {
	Storage    contracts.Storage
	BucketName string
	URLExpiry  time.Duration
	enabled    bool
	Log        *zap.Logger
}

// NewReportArchive stores reports under the reports/ prefix of the configured
// bucket. A nil storage or a disabled config gives an archive that keeps
// nothing.
func NewReportArchive(storage contracts.Storage, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ReportArchive {
	return &reportArchive{
		Storage:    storage,
		BucketName: internalConfig.Report.BucketName,
		URLExpiry:  time.Duration(internalConfig.Report.PresignedUrlExpiryInHours) * time.Hour,
		enabled:    storage != nil && internalConfig.Report.ArchiveEnabled,
		Log:        logger,
	}
}

func (a *reportArchive) Enabled() bool {
	return a.enabled
}

func (a *reportArchive) Archive(ctx context.Context, report *models.Report) error {
	if !a.enabled {
		return nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectName := constvars.ReportObjectPrefix + report.ID + "_" + report.FileName
	err := a.Storage.PutObject(ctx, a.BucketName, objectName, report.ContentType, report.Content)
	if err != nil {
		a.Log.Error("reportArchive.Archive error calling Storage.PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return err
	}

	a.Log.Info("reportArchive.Archive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingObjectSizeKey, len(report.Content)),
	)
	return nil
}

// List returns archived reports newest first, each with a presigned URL.
func (a *reportArchive) List(ctx context.Context) ([]models.ArchivedReport, error) {
	if !a.enabled {
		return nil, nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objects, err := a.Storage.ListObjects(ctx, a.BucketName, constvars.ReportObjectPrefix)
	if err != nil {
		a.Log.Error("reportArchive.List error calling Storage.ListObjects",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})

	archived := make([]models.ArchivedReport, 0, len(objects))
	for _, object := range objects {
		url, err := a.Storage.GetObjectUrlWithExpiryTime(ctx, a.BucketName, object.Name, a.URLExpiry)
		if err != nil {
			a.Log.Error("reportArchive.List error calling Storage.GetObjectUrlWithExpiryTime",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, object.Name),
				zap.Error(err),
			)
			return nil, err
		}
		archived = append(archived, models.ArchivedReport{
			ObjectName:   strings.TrimPrefix(object.Name, constvars.ReportObjectPrefix),
			Size:         object.Size,
			LastModified: object.LastModified,
			DownloadURL:  url,
		})
	}
	return archived, nil
}

// RemoveOlderThan deletes reports last modified before cutoff and returns how
// many were removed before any failure.
func (a *reportArchive) RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	if !a.enabled {
		return 0, nil
	}

	objects, err := a.Storage.ListObjects(ctx, a.BucketName, constvars.ReportObjectPrefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, object := range objects {
		if !object.LastModified.Before(cutoff) {
			continue
		}
		if err := a.Storage.RemoveObject(ctx, a.BucketName, object.Name); err != nil {
			a.Log.Error("reportArchive.RemoveOlderThan error calling Storage.RemoveObject",
				zap.String(constvars.LoggingObjectNameKey, object.Name),
				zap.Error(err),
			)
			return removed, err
		}
		removed++
	}

	a.Log.Info("reportArchive.RemoveOlderThan succeeded",
		zap.String(constvars.LoggingBucketNameKey, a.BucketName),
		zap.Int(constvars.LoggingRemovedCountKey, removed),
	)
	return removed, nil
}
