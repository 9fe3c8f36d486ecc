package prescriptions

import (
	"context"
	"fmt"
	"net/url"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/services/tidepool/client"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/tidepool_dto"

	"go.uber.org/zap"
)

type prescriptionTidepoolClient struct {
	Client *client.Client
	Log    *zap.Logger
}

func NewPrescriptionTidepoolClient(tidepoolClient *client.Client, logger *zap.Logger) contracts.PrescriptionTidepoolClient {
	return &prescriptionTidepoolClient{
		Client: tidepoolClient,
		Log:    logger,
	}
}

func (c *prescriptionTidepoolClient) FindAllByClinic(ctx context.Context, clinicID, state string) ([]tidepool_dto.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("prescriptionTidepoolClient.FindAllByClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	var query url.Values
	if state != "" {
		query = url.Values{constvars.URLQueryParamState: {state}}
	}

	prescriptions := []tidepool_dto.Prescription{}
	path := fmt.Sprintf(constvars.TidepoolPathClinicPrescriptions, url.PathEscape(clinicID))
	if err := c.Client.Get(ctx, path, query, constvars.TidepoolResourcePrescription, &prescriptions); err != nil {
		return nil, err
	}

	c.Log.Info("prescriptionTidepoolClient.FindAllByClinic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (c *prescriptionTidepoolClient) FindPrescriptionByID(ctx context.Context, clinicID, prescriptionID string) (*tidepool_dto.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("prescriptionTidepoolClient.FindPrescriptionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription := new(tidepool_dto.Prescription)
	path := fmt.Sprintf(constvars.TidepoolPathClinicPrescription, url.PathEscape(clinicID), url.PathEscape(prescriptionID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourcePrescription, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

func (c *prescriptionTidepoolClient) FindAllByPatient(ctx context.Context, userID string) ([]tidepool_dto.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("prescriptionTidepoolClient.FindAllByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	prescriptions := []tidepool_dto.Prescription{}
	path := fmt.Sprintf(constvars.TidepoolPathPatientPrescriptions, url.PathEscape(userID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourcePrescription, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}
