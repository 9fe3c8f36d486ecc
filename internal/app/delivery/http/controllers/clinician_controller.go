package controllers

import (
	"fmt"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/mapper"
	"orca-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClinicianController struct {
	Log              *zap.Logger
	ClinicianUsecase contracts.ClinicianUsecase
	SessionService   contracts.SessionService
	InternalConfig   *config.InternalConfig
}

func NewClinicianController(logger *zap.Logger, clinicianUsecase contracts.ClinicianUsecase, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *ClinicianController {
	return &ClinicianController{
		Log:              logger,
		ClinicianUsecase: clinicianUsecase,
		SessionService:   sessionService,
		InternalConfig:   internalConfig,
	}
}

// LookupClinician resolves a user by email or id and lists the clinics they
// work at. A single membership redirects to it.
func (ctrl *ClinicianController) LookupClinician(w http.ResponseWriter, r *http.Request) {
	search := utils.GetSearchQuery(r)
	recent := ctrl.SessionService.RecentClinicians(r)
	if search == "" {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchCliniciansSuccessfully, &responses.ClinicianLookup{
			Memberships: []responses.ClinicMembership{},
			Recent:      recent,
		})
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.ClinicianUsecase.LookupClinician(ctx, search)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if membership, ok := utils.SingleMatch(result.Memberships); ok {
		utils.BuildRedirectResponse(w, r, membership.Link)
		return
	}

	result.Recent = recent
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchCliniciansSuccessfully, result)
}

func (ctrl *ClinicianController) FindClinicClinicians(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if err := utils.ValidateUrlParamID(clinicID, constvars.URLParamClinicID, utils.IsObjectID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	search := utils.GetSearchQuery(r)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.ClinicianUsecase.FindClinicClinicians(ctx, clinicID, search, pagination)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if search != "" {
		// pending invites have no user id to link to
		if clinician, ok := utils.SingleMatch(result.Clinicians); ok && clinician.ID != "" {
			utils.BuildRedirectResponse(w, r, mapper.ClinicianLink(clinicID, clinician.ID))
			return
		}
	}

	paginationData := utils.BuildOpenPaginationResponse(len(result.Clinicians), pagination.Page, pagination.PageSize, fmt.Sprintf(constvars.AppPathClinicClinicians, clinicID))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetCliniciansSuccessfully, paginationData, result)
}

func (ctrl *ClinicianController) FindClinician(w http.ResponseWriter, r *http.Request) {
	clinicID, clinicianID, err := clinicianParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.ClinicianUsecase.FindClinicianDetail(ctx, clinicID, clinicianID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.SessionService.PushRecentClinician(w, r, models.RecentClinician{
		ClinicianID: clinicianID,
		ClinicID:    clinicID,
		ClinicName:  result.Clinic.Name,
		Name:        result.Clinician.Name,
		Email:       result.Clinician.Email,
	})
	logRecentPushError(ctrl.Log, r, "ClinicianController.FindClinician", err)

	toast := popToast(ctrl.Log, ctrl.SessionService, w, r)
	utils.BuildSuccessResponseWithToast(w, constvars.StatusOK, constvars.GetClinicianSuccessfully, toast, result)
}

// UpdateClinicianRoles handles the role edit form. Invalid input answers 400
// with per-field errors. Anything the API rejects is flashed and the browser
// is sent back to the clinician page.
func (ctrl *ClinicianController) UpdateClinicianRoles(w http.ResponseWriter, r *http.Request) {
	clinicID, clinicianID, err := clinicianParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateClinicianRoles)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.ClinicID = clinicID
	request.ClinicianID = clinicianID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	backTo := mapper.ClinicianLink(clinicID, clinicianID)
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := ctrl.ClinicianUsecase.UpdateClinicianRoles(ctx, request); err != nil {
		ctrl.Log.Error("ClinicianController.UpdateClinicianRoles error updating roles",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.String(constvars.LoggingClinicianIDKey, clinicianID),
			zap.Error(err),
		)
		message := fmt.Sprintf(constvars.ClinicianRolesUpdateFailedFlashText, exceptions.ClientMessageOf(err))
		if flashErr := ctrl.SessionService.FlashError(w, r, message); flashErr != nil {
			utils.BuildErrorResponse(ctrl.Log, w, flashErr)
			return
		}
		utils.BuildRedirectResponse(w, r, backTo)
		return
	}

	ctrl.Log.Info("ClinicianController.UpdateClinicianRoles succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingClinicianIDKey, clinicianID),
		zap.String(constvars.LoggingRedirectKey, backTo),
	)
	utils.BuildRedirectResponse(w, r, backTo)
}

func clinicianParams(r *http.Request) (string, string, error) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if err := utils.ValidateUrlParamID(clinicID, constvars.URLParamClinicID, utils.IsObjectID); err != nil {
		return "", "", err
	}
	clinicianID := chi.URLParam(r, constvars.URLParamClinicianID)
	if err := utils.ValidateUrlParamID(clinicianID, constvars.URLParamClinicianID, utils.IsTidepoolUserID); err != nil {
		return "", "", err
	}
	return clinicID, clinicianID, nil
}
