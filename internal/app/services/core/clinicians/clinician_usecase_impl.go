package clinicians

import (
	"context"
	"fmt"
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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var roleChoices = []string{constvars.ClinicianRoleAdmin, constvars.ClinicianRoleMember}

type clinicianUsecase struct {
	UserClient      contracts.UserTidepoolClient
	ClinicClient    contracts.ClinicTidepoolClient
	ClinicianClient contracts.ClinicianTidepoolClient
	Audit           contracts.AuditPublisher
	Log             *zap.Logger
}

func NewClinicianUsecase(
	userClient contracts.UserTidepoolClient,
	clinicClient contracts.ClinicTidepoolClient,
	clinicianClient contracts.ClinicianTidepoolClient,
	audit contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.ClinicianUsecase {
	return &clinicianUsecase{
		UserClient:      userClient,
		ClinicClient:    clinicClient,
		ClinicianClient: clinicianClient,
		Audit:           audit,
		Log:             logger,
	}
}

// LookupClinician resolves an email or user id to an account and lists the
// clinics it is a clinician of.
func (uc *clinicianUsecase) LookupClinician(ctx context.Context, search string) (*responses.ClinicianLookup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicianUsecase.LookupClinician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, search),
	)

	search = strings.TrimSpace(search)
	lookup := &responses.ClinicianLookup{
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
		uc.Log.Error("clinicianUsecase.LookupClinician error calling UserClient.FindUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	summary := mapper.ToUserSummary(user, nil)
	lookup.User = &summary

	relationships, err := uc.ClinicClient.FindClinicsByClinician(ctx, user.UserID)
	if err != nil {
		uc.Log.Error("clinicianUsecase.LookupClinician error calling ClinicClient.FindClinicsByClinician",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	for _, relationship := range relationships {
		lookup.Memberships = append(lookup.Memberships, responses.ClinicMembership{
			Clinic: mapper.ToClinicSummary(&relationship.Clinic),
			Roles:  relationship.Clinician.Roles,
			Link:   mapper.ClinicianLink(relationship.Clinic.ID, user.UserID),
		})
	}

	uc.Log.Info("clinicianUsecase.LookupClinician succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(lookup.Memberships)),
	)
	return lookup, nil
}

func (uc *clinicianUsecase) FindClinicClinicians(ctx context.Context, clinicID, search string, pagination *requests.Pagination) (*responses.ClinicianList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicianUsecase.FindClinicClinicians called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingSearchKey, search),
		zap.Int(constvars.LoggingPageKey, pagination.Page),
		zap.Int(constvars.LoggingPageSizeKey, pagination.PageSize),
	)

	search = strings.TrimSpace(search)
	var (
		clinic     *tidepool_dto.Clinic
		clinicians []tidepool_dto.Clinician
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, clinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.ClinicianClient.FindAll(groupCtx, clinicID, &requests.ListQuery{
			Search: search,
			Offset: pagination.Offset(),
			Limit:  pagination.PageSize,
		})
		clinicians = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("clinicianUsecase.FindClinicClinicians error loading clinic clinicians",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.Error(err),
		)
		return nil, err
	}

	list := &responses.ClinicianList{
		Clinic:     mapper.ToClinicSummary(clinic),
		Search:     search,
		Clinicians: make([]responses.ClinicianSummary, 0, len(clinicians)),
	}
	for i := range clinicians {
		list.Clinicians = append(list.Clinicians, mapper.ToClinicianSummary(&clinicians[i]))
	}

	uc.Log.Info("clinicianUsecase.FindClinicClinicians succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(list.Clinicians)),
	)
	return list, nil
}

func (uc *clinicianUsecase) FindClinicianDetail(ctx context.Context, clinicID, clinicianID string) (*responses.ClinicianDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicianUsecase.FindClinicianDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
	)

	var (
		clinic    *tidepool_dto.Clinic
		clinician *tidepool_dto.Clinician
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, clinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.ClinicianClient.FindClinicianByID(groupCtx, clinicID, clinicianID)
		clinician = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("clinicianUsecase.FindClinicianDetail error loading clinician",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	role := constvars.ClinicianRoleMember
	if clinician.IsAdmin() {
		role = constvars.ClinicianRoleAdmin
	}
	detail := &responses.ClinicianDetail{
		Clinic:    mapper.ToClinicSummary(clinic),
		Clinician: mapper.ToClinicianSummary(clinician),
		RoleForm: responses.ClinicianRoleForm{
			Role:       role,
			Prescriber: clinician.IsPrescriber(),
			Choices:    roleChoices,
		},
	}

	uc.Log.Info("clinicianUsecase.FindClinicianDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
	)
	return detail, nil
}

// UpdateClinicianRoles replaces the clinician's roles with the chosen role,
// plus PRESCRIBER when requested.
func (uc *clinicianUsecase) UpdateClinicianRoles(ctx context.Context, request *requests.UpdateClinicianRoles) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicianUsecase.UpdateClinicianRoles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingClinicianIDKey, request.ClinicianID),
	)

	clinician, err := uc.ClinicianClient.FindClinicianByID(ctx, request.ClinicID, request.ClinicianID)
	if err != nil {
		uc.Log.Error("clinicianUsecase.UpdateClinicianRoles error calling ClinicianClient.FindClinicianByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	previousRoles := clinician.Roles
	roles := []string{request.Role}
	if request.Prescriber {
		roles = append(roles, constvars.ClinicianRolePrescriber)
	}
	clinician.Roles = roles

	if _, err := uc.ClinicianClient.UpdateClinician(ctx, request.ClinicID, request.ClinicianID, clinician); err != nil {
		uc.Log.Error("clinicianUsecase.UpdateClinicianRoles error calling ClinicianClient.UpdateClinician",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingRolesKey, roles),
			zap.Error(err),
		)
		return err
	}

	target := fmt.Sprintf("clinics/%s/clinicians/%s", request.ClinicID, request.ClinicianID)
	event := models.NewAuditEvent(ctx, models.AuditActionClinicianRolesUpdated, target, map[string]string{
		"previousRoles": strings.Join(previousRoles, ","),
		"roles":         strings.Join(roles, ","),
	})
	if err := uc.Audit.Publish(ctx, event); err != nil {
		uc.Log.Warn("clinicianUsecase.UpdateClinicianRoles audit event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("clinicianUsecase.UpdateClinicianRoles succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRolesKey, roles),
	)
	return nil
}
