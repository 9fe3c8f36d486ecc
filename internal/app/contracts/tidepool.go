package contracts

import (
	"context"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/tidepool_dto"
)

type TidepoolTokenProvider interface {
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

type UserTidepoolClient interface {
	FindUser(ctx context.Context, userIDOrEmail string) (*tidepool_dto.User, error)
	FindProfile(ctx context.Context, userID string) (*tidepool_dto.Profile, error)
}

type ClinicTidepoolClient interface {
	FindAll(ctx context.Context, query *requests.ListQuery) ([]tidepool_dto.Clinic, error)
	FindClinicByID(ctx context.Context, clinicID string) (*tidepool_dto.Clinic, error)
	FindClinicByShareCode(ctx context.Context, shareCode string) (*tidepool_dto.Clinic, error)
	FindClinicsByClinician(ctx context.Context, userID string) ([]tidepool_dto.ClinicianClinicRelationship, error)
	FindClinicsByPatient(ctx context.Context, userID string) ([]tidepool_dto.PatientClinicRelationship, error)
}

type ClinicianTidepoolClient interface {
	FindAll(ctx context.Context, clinicID string, query *requests.ListQuery) ([]tidepool_dto.Clinician, error)
	FindClinicianByID(ctx context.Context, clinicID, clinicianID string) (*tidepool_dto.Clinician, error)
	UpdateClinician(ctx context.Context, clinicID, clinicianID string, clinician *tidepool_dto.Clinician) (*tidepool_dto.Clinician, error)
}

type PatientTidepoolClient interface {
	FindAll(ctx context.Context, clinicID string, query *requests.ListQuery) (*tidepool_dto.PatientsResponse, error)
	FindPatientByID(ctx context.Context, clinicID, patientID string) (*tidepool_dto.Patient, error)
}

type PrescriptionTidepoolClient interface {
	FindAllByClinic(ctx context.Context, clinicID, state string) ([]tidepool_dto.Prescription, error)
	FindPrescriptionByID(ctx context.Context, clinicID, prescriptionID string) (*tidepool_dto.Prescription, error)
	FindAllByPatient(ctx context.Context, userID string) ([]tidepool_dto.Prescription, error)
}

type ExportTidepoolClient interface {
	ExportUserData(ctx context.Context, request *requests.DataExport) (*models.DataExport, error)
}
