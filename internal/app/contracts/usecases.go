package contracts

import (
	"context"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	SearchUsers(ctx context.Context, search string) ([]responses.UserSummary, error)
	FindUserDetail(ctx context.Context, userID string) (*responses.UserDetail, error)
	ExportUserData(ctx context.Context, request *requests.DataExport) (*models.DataExport, error)
}

type ClinicUsecase interface {
	SearchClinics(ctx context.Context, search string, pagination *requests.Pagination) ([]responses.ClinicSummary, error)
	FindClinicDetail(ctx context.Context, clinicID string) (*responses.ClinicDetail, error)
}

type ClinicianUsecase interface {
	LookupClinician(ctx context.Context, search string) (*responses.ClinicianLookup, error)
	FindClinicClinicians(ctx context.Context, clinicID, search string, pagination *requests.Pagination) (*responses.ClinicianList, error)
	FindClinicianDetail(ctx context.Context, clinicID, clinicianID string) (*responses.ClinicianDetail, error)
	UpdateClinicianRoles(ctx context.Context, request *requests.UpdateClinicianRoles) error
}

type PatientUsecase interface {
	LookupPatient(ctx context.Context, search string) (*responses.PatientLookup, error)
	FindClinicPatients(ctx context.Context, clinicID, search string, pagination *requests.Pagination) (*responses.PatientList, int, error)
	FindPatientDetail(ctx context.Context, clinicID, patientID string) (*responses.PatientDetail, error)
}

type PrescriptionUsecase interface {
	FindClinicPrescriptions(ctx context.Context, clinicID, state, search string) (*responses.PrescriptionList, error)
	FindPrescriptionDetail(ctx context.Context, clinicID, prescriptionID, bgUnits string) (*responses.PrescriptionDetail, error)
}

type ReportUsecase interface {
	ListReports(ctx context.Context) (*responses.ReportCatalog, error)
	ClinicPatientsReport(ctx context.Context, request *requests.ClinicReport) (*models.Report, error)
	ClinicCliniciansReport(ctx context.Context, request *requests.ClinicReport) (*models.Report, error)
	ClinicMergeReport(ctx context.Context, request *requests.ClinicMergeReport) (*responses.ClinicMergeReport, *models.Report, error)
}

type AuditPublisher interface {
	Publish(ctx context.Context, event *models.AuditEvent) error
}

type AuthorizationService interface {
	RoleFor(identity *models.Identity) string
	Authorize(role, method, path string) (bool, error)
}
