package patients

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

type patientTidepoolClient struct {
	Client *client.Client
	Log    *zap.Logger
}

func NewPatientTidepoolClient(tidepoolClient *client.Client, logger *zap.Logger) contracts.PatientTidepoolClient {
	return &patientTidepoolClient{
		Client: tidepoolClient,
		Log:    logger,
	}
}

// FindAll returns one page of the clinic's patients together with the total
// count the API reports.
func (c *patientTidepoolClient) FindAll(ctx context.Context, clinicID string, query *requests.ListQuery) (*tidepool_dto.PatientsResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientTidepoolClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	patients := new(tidepool_dto.PatientsResponse)
	path := fmt.Sprintf(constvars.TidepoolPathPatients, url.PathEscape(clinicID))
	err := c.Client.Get(ctx, path, client.EncodeListQuery(query), constvars.TidepoolResourcePatient, patients)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientTidepoolClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, patients.Meta.Count),
	)
	return patients, nil
}

func (c *patientTidepoolClient) FindPatientByID(ctx context.Context, clinicID, patientID string) (*tidepool_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientTidepoolClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient := new(tidepool_dto.Patient)
	path := fmt.Sprintf(constvars.TidepoolPathPatient, url.PathEscape(clinicID), url.PathEscape(patientID))
	if err := c.Client.Get(ctx, path, nil, constvars.TidepoolResourcePatient, patient); err != nil {
		return nil, err
	}
	return patient, nil
}
