package clinics

import (
	"context"
	"fmt"
	"net/url"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/services/tidepool/client"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/tidepool_dto"
	"strings"

	"go.uber.org/zap"
)

type clinicTidepoolClient struct {
	Client *client.Client
	Log    *zap.Logger
}

func NewClinicTidepoolClient(tidepoolClient *client.Client, logger *zap.Logger) contracts.ClinicTidepoolClient {
	return &clinicTidepoolClient{
		Client: tidepoolClient,
		Log:    logger,
	}
}

func (c *clinicTidepoolClient) FindAll(ctx context.Context, query *requests.ListQuery) ([]tidepool_dto.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicTidepoolClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	clinics := []tidepool_dto.Clinic{}
	err := c.Client.Get(ctx, constvars.TidepoolPathClinics, client.EncodeListQuery(query), constvars.TidepoolResourceClinic, &clinics)
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicTidepoolClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(clinics)),
	)
	return clinics, nil
}

func (c *clinicTidepoolClient) FindClinicByID(ctx context.Context, clinicID string) (*tidepool_dto.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicTidepoolClient.FindClinicByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	clinic := new(tidepool_dto.Clinic)
	path := fmt.Sprintf(constvars.TidepoolPathClinic, url.PathEscape(clinicID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourceClinic, clinic); err != nil {
		return nil, err
	}
	return clinic, nil
}

// FindClinicByShareCode looks the clinic up by its human readable code.
// Share codes are matched case-insensitively.
func (c *clinicTidepoolClient) FindClinicByShareCode(ctx context.Context, shareCode string) (*tidepool_dto.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicTidepoolClient.FindClinicByShareCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, shareCode),
	)

	clinic := new(tidepool_dto.Clinic)
	path := fmt.Sprintf(constvars.TidepoolPathClinicByShareCode, url.PathEscape(strings.ToUpper(shareCode)))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourceClinic, clinic); err != nil {
		return nil, err
	}
	return clinic, nil
}

func (c *clinicTidepoolClient) FindClinicsByClinician(ctx context.Context, userID string) ([]tidepool_dto.ClinicianClinicRelationship, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicTidepoolClient.FindClinicsByClinician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	relationships := []tidepool_dto.ClinicianClinicRelationship{}
	path := fmt.Sprintf(constvars.TidepoolPathClinicianClinics, url.PathEscape(userID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourceClinic, &relationships); err != nil {
		return nil, err
	}
	return relationships, nil
}

func (c *clinicTidepoolClient) FindClinicsByPatient(ctx context.Context, userID string) ([]tidepool_dto.PatientClinicRelationship, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicTidepoolClient.FindClinicsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	relationships := []tidepool_dto.PatientClinicRelationship{}
	path := fmt.Sprintf(constvars.TidepoolPathPatientClinics, url.PathEscape(userID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourceClinic, &relationships); err != nil {
		return nil, err
	}
	return relationships, nil
}
