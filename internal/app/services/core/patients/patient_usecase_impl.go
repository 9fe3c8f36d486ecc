package patients

import (
	"context"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/mapper"
	"orca-service/internal/pkg/tidepool_dto"
	"orca-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type patientUsecase struct {
	UserClient    contracts.UserTidepoolClient
	ClinicClient  contracts.ClinicTidepoolClient
	PatientClient contracts.PatientTidepoolClient
	Log           *zap.Logger
}

func NewPatientUsecase(
	userClient contracts.UserTidepoolClient,
	clinicClient contracts.ClinicTidepoolClient,
	patientClient contracts.PatientTidepoolClient,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		UserClient:    userClient,
		ClinicClient:  clinicClient,
		PatientClient: patientClient,
		Log:           logger,
	}
}

func (uc *patientUsecase) LookupPatient(ctx context.Context, search string) (*responses.PatientLookup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.LookupPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, search),
	)

	search = strings.TrimSpace(search)
	lookup := &responses.PatientLookup{
		Search:      search,
		Memberships: []responses.ClinicMembership{},
	}
	switch utils.ClassifySearchTerm(search) {
	case utils.SearchKindEmail, utils.SearchKindUserID:
	default:
		return lookup, nil
	}

	user, err := uc.UserClient.FindUser(ctx, search)
	if err != nil {
		if exceptions.IsNotFound(err) {
			return lookup, nil
		}
		uc.Log.Error("patientUsecase.LookupPatient error calling UserClient.FindUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	summary := mapper.ToUserSummary(user, nil)
	lookup.User = &summary

	relationships, err := uc.ClinicClient.FindClinicsByPatient(ctx, user.UserID)
	if err != nil {
		uc.Log.Error("patientUsecase.LookupPatient error calling ClinicClient.FindClinicsByPatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	for _, relationship := range relationships {
		lookup.Memberships = append(lookup.Memberships, responses.ClinicMembership{
			Clinic: mapper.ToClinicSummary(&relationship.Clinic),
			Link:   mapper.PatientLink(relationship.Clinic.ID, user.UserID),
		})
	}

	uc.Log.Info("patientUsecase.LookupPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(lookup.Memberships)),
	)
	return lookup, nil
}

// FindClinicPatients returns one page of the clinic's patients and the total
// count the API reports for the search.
func (uc *patientUsecase) FindClinicPatients(ctx context.Context, clinicID, search string, pagination *requests.Pagination) (*responses.PatientList, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindClinicPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingSearchKey, search),
		zap.Int(constvars.LoggingPageKey, pagination.Page),
		zap.Int(constvars.LoggingPageSizeKey, pagination.PageSize),
	)

	search = strings.TrimSpace(search)
	var (
		clinic   *tidepool_dto.Clinic
		patients *tidepool_dto.PatientsResponse
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, clinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.PatientClient.FindAll(groupCtx, clinicID, &requests.ListQuery{
			Search: search,
			Offset: pagination.Offset(),
			Limit:  pagination.PageSize,
		})
		patients = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("patientUsecase.FindClinicPatients error loading clinic patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	now := time.Now()
	list := &responses.PatientList{
		Clinic:   mapper.ToClinicSummary(clinic),
		Search:   search,
		Patients: make([]responses.PatientSummary, 0, len(patients.Data)),
	}
	for i := range patients.Data {
		list.Patients = append(list.Patients, mapper.ToPatientSummary(&patients.Data[i], clinic, now))
	}

	uc.Log.Info("patientUsecase.FindClinicPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, patients.Meta.Count),
	)
	return list, patients.Meta.Count, nil
}

func (uc *patientUsecase) FindPatientDetail(ctx context.Context, clinicID, patientID string) (*responses.PatientDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindPatientDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var (
		clinic  *tidepool_dto.Clinic
		patient *tidepool_dto.Patient
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, clinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.PatientClient.FindPatientByID(groupCtx, clinicID, patientID)
		patient = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("patientUsecase.FindPatientDetail error loading patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	detail := &responses.PatientDetail{
		Clinic:        mapper.ToClinicSummary(clinic),
		Patient:       mapper.ToPatientSummary(patient, clinic, time.Now()),
		TargetDevices: patient.TargetDevices,
		Permissions:   patient.PermissionNames(),
		CreatedDate:   utils.FormatDate(patient.CreatedTime),
		UpdatedDate:   utils.FormatDate(patient.UpdatedTime),
	}

	uc.Log.Info("patientUsecase.FindPatientDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return detail, nil
}
