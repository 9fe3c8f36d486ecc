package clinicians

import (
	"context"
	"fmt"
	"net/url"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/services/tidepool/client"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/tidepool_dto"

	"go.uber.org/zap"
)

type clinicianTidepoolClient struct {
	Client *client.Client
	Log    *zap.Logger
}

func NewClinicianTidepoolClient(tidepoolClient *client.Client, logger *zap.Logger) contracts.ClinicianTidepoolClient {
	return &clinicianTidepoolClient{
		Client: tidepoolClient,
		Log:    logger,
	}
}

func (c *clinicianTidepoolClient) FindAll(ctx context.Context, clinicID string, query *requests.ListQuery) ([]tidepool_dto.Clinician, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicianTidepoolClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	clinicians := []tidepool_dto.Clinician{}
	path := fmt.Sprintf(constvars.TidepoolPathClinicians, url.PathEscape(clinicID))
	err := c.Client.Get(ctx, path, client.EncodeListQuery(query), constvars.TidepoolResourceClinician, &clinicians)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicianTidepoolClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(clinicians)),
	)
	return clinicians, nil
}

func (c *clinicianTidepoolClient) FindClinicianByID(ctx context.Context, clinicID, clinicianID string) (*tidepool_dto.Clinician, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicianTidepoolClient.FindClinicianByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
	)

	clinician := new(tidepool_dto.Clinician)
	path := fmt.Sprintf(constvars.TidepoolPathClinician, url.PathEscape(clinicID), url.PathEscape(clinicianID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourceClinician, clinician); err != nil {
		return nil, err
	}
	return clinician, nil
}

// UpdateClinician replaces the clinician record; the API expects the full
// document, not just the changed roles.
func (c *clinicianTidepoolClient) UpdateClinician(ctx context.Context, clinicID, clinicianID string, clinician *tidepool_dto.Clinician) (*tidepool_dto.Clinician, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicianTidepoolClient.UpdateClinician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
		zap.Strings(constvars.LoggingRolesKey, clinician.Roles),
	)

	updated := new(tidepool_dto.Clinician)
	path := fmt.Sprintf(constvars.TidepoolPathClinician, url.PathEscape(clinicID), url.PathEscape(clinicianID))
	err := c.Client.Send(ctx, constvars.MethodPut, path, clinician, constvars.TidepoolResourceClinician, updated)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicianTidepoolClient.UpdateClinician succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRolesKey, updated.Roles),
	)
	return updated, nil
}
