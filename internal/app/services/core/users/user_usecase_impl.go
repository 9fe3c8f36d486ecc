package users

import (
	"context"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
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

type userUsecase struct {
	UserClient         contracts.UserTidepoolClient
	ClinicClient       contracts.ClinicTidepoolClient
	PrescriptionClient contracts.PrescriptionTidepoolClient
	ExportClient       contracts.ExportTidepoolClient
	Audit              contracts.AuditPublisher
	Log                *zap.Logger
}

func NewUserUsecase(
	userClient contracts.UserTidepoolClient,
	clinicClient contracts.ClinicTidepoolClient,
	prescriptionClient contracts.PrescriptionTidepoolClient,
	exportClient contracts.ExportTidepoolClient,
	audit contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserClient:         userClient,
		ClinicClient:       clinicClient,
		PrescriptionClient: prescriptionClient,
		ExportClient:       exportClient,
		Audit:              audit,
		Log:                logger,
	}
}

// SearchUsers resolves an email or user id to at most one account. Any other
// kind of term finds nothing since the API has no free text user search.
func (uc *userUsecase) SearchUsers(ctx context.Context, search string) ([]responses.UserSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.SearchUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, search),
	)

	search = strings.TrimSpace(search)
	switch utils.ClassifySearchTerm(search) {
	case utils.SearchKindEmail, utils.SearchKindUserID:
	default:
		return []responses.UserSummary{}, nil
	}

	user, err := uc.UserClient.FindUser(ctx, search)
	if err != nil {
		if exceptions.IsNotFound(err) {
			return []responses.UserSummary{}, nil
		}
		uc.Log.Error("userUsecase.SearchUsers error calling UserClient.FindUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profile, err := uc.UserClient.FindProfile(ctx, user.UserID)
	if err != nil {
		uc.Log.Warn("userUsecase.SearchUsers profile unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.UserID),
			zap.Error(err),
		)
		profile = nil
	}

	uc.Log.Info("userUsecase.SearchUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.UserID),
	)
	return []responses.UserSummary{mapper.ToUserSummary(user, profile)}, nil
}

func (uc *userUsecase) FindUserDetail(ctx context.Context, userID string) (*responses.UserDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindUserDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.UserClient.FindUser(ctx, userID)
	if err != nil {
		uc.Log.Error("userUsecase.FindUserDetail error calling UserClient.FindUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var (
		profile          *tidepool_dto.Profile
		clinicianClinics []tidepool_dto.ClinicianClinicRelationship
		patientClinics   []tidepool_dto.PatientClinicRelationship
		prescriptions    []tidepool_dto.Prescription
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.UserClient.FindProfile(groupCtx, user.UserID)
		if err != nil && !exceptions.IsNotFound(err) {
			return err
		}
		profile = found
		return nil
	})
	if user.IsClinician() {
		group.Go(func() error {
			found, err := uc.ClinicClient.FindClinicsByClinician(groupCtx, user.UserID)
			clinicianClinics = found
			return err
		})
	} else {
		group.Go(func() error {
			found, err := uc.ClinicClient.FindClinicsByPatient(groupCtx, user.UserID)
			patientClinics = found
			return err
		})
		group.Go(func() error {
			found, err := uc.PrescriptionClient.FindAllByPatient(groupCtx, user.UserID)
			prescriptions = found
			return err
		})
	}
	if err := group.Wait(); err != nil {
		uc.Log.Error("userUsecase.FindUserDetail error loading user sections",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	detail := &responses.UserDetail{
		User:    mapper.ToUserSummary(user, profile),
		Profile: mapper.ToProfileView(profile, time.Now()),
	}
	for _, relationship := range clinicianClinics {
		detail.ClinicianClinics = append(detail.ClinicianClinics, responses.ClinicMembership{
			Clinic: mapper.ToClinicSummary(&relationship.Clinic),
			Roles:  relationship.Clinician.Roles,
			Link:   mapper.ClinicianLink(relationship.Clinic.ID, user.UserID),
		})
	}
	for _, relationship := range patientClinics {
		detail.PatientClinics = append(detail.PatientClinics, responses.ClinicMembership{
			Clinic: mapper.ToClinicSummary(&relationship.Clinic),
			Link:   mapper.PatientLink(relationship.Clinic.ID, user.UserID),
		})
	}
	for i := range prescriptions {
		detail.Prescriptions = append(detail.Prescriptions, mapper.ToPrescriptionSummary(&prescriptions[i]))
	}

	uc.Log.Info("userUsecase.FindUserDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.UserID),
	)
	return detail, nil
}

func (uc *userUsecase) ExportUserData(ctx context.Context, request *requests.DataExport) (*models.DataExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ExportUserData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingFormatKey, request.Format),
	)

	export, err := uc.ExportClient.ExportUserData(ctx, request)
	if err != nil {
		uc.Log.Error("userUsecase.ExportUserData error calling ExportClient.ExportUserData",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	event := models.NewAuditEvent(ctx, models.AuditActionDataExported, request.UserID, map[string]string{
		"format":    request.Format,
		"bgUnits":   request.BGUnits,
		"startDate": request.StartDate,
		"endDate":   request.EndDate,
	})
	if err := uc.Audit.Publish(ctx, event); err != nil {
		uc.Log.Warn("userUsecase.ExportUserData audit event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("userUsecase.ExportUserData succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, export.FileName),
	)
	return export, nil
}
