package exports

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/app/services/tidepool/client"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type exportTidepoolClient struct {
	Client *client.Client
	Log    *zap.Logger
}

func NewExportTidepoolClient(tidepoolClient *client.Client, logger *zap.Logger) contracts.ExportTidepoolClient {
	return &exportTidepoolClient{
		Client: tidepoolClient,
		Log:    logger,
	}
}

var exportContentTypes = map[string]string{
	constvars.ExportFormatJSON: constvars.MIMEApplicationJSON,
	constvars.ExportFormatXLSX: constvars.MIMEApplicationXLSX,
}

// ExportUserData opens the user's device data export in the requested format.
// The upstream body is handed back unread and the caller closes it.
func (c *exportTidepoolClient) ExportUserData(ctx context.Context, request *requests.DataExport) (*models.DataExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("exportTidepoolClient.ExportUserData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingFormatKey, request.Format),
	)

	contentType, ok := exportContentTypes[request.Format]
	if !ok {
		return nil, exceptions.ErrUnsupportedExportContentType(nil, request.Format)
	}

	query := url.Values{constvars.URLQueryParamFormat: {request.Format}}
	if request.BGUnits != "" {
		query.Set(constvars.URLQueryParamBGUnits, request.BGUnits)
	}
	if request.StartDate != "" {
		query.Set(constvars.URLQueryParamStartDate, request.StartDate)
	}
	if request.EndDate != "" {
		query.Set(constvars.URLQueryParamEndDate, request.EndDate)
	}

	resp, err := c.Client.Do(ctx, &client.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.TidepoolPathExport, url.PathEscape(request.UserID)),
		Query:    query,
		Accept:   contentType,
		Resource: constvars.TidepoolResourceExport,
		Stream:   true,
	})
	if err != nil {
		return nil, err
	}

	answered, _, err := mime.ParseMediaType(resp.Header.Get(constvars.HeaderContentType))
	if err != nil || answered != contentType {
		c.Log.Error("exportTidepoolClient.ExportUserData unexpected content type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.HeaderContentType, resp.Header.Get(constvars.HeaderContentType)),
		)
		resp.Body.Close()
		return nil, exceptions.ErrUnsupportedExportContentType(err, resp.Header.Get(constvars.HeaderContentType))
	}

	c.Log.Info("exportTidepoolClient.ExportUserData opened",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingObjectSizeKey, resp.ContentLength),
	)
	return &models.DataExport{
		FileName:    utils.GenerateFileName(constvars.ExportFilePrefix, request.UserID, request.Format, time.Now().UTC()),
		ContentType: contentType,
		Body:        resp.Body,
	}, nil
}
