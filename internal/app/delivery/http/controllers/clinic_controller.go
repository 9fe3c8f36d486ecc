package controllers

import (
	"fmt"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClinicController struct {
	Log            *zap.Logger
	ClinicUsecase  contracts.ClinicUsecase
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewClinicController(logger *zap.Logger, clinicUsecase contracts.ClinicUsecase, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *ClinicController {
	return &ClinicController{
		Log:            logger,
		ClinicUsecase:  clinicUsecase,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ClinicController) SearchClinics(w http.ResponseWriter, r *http.Request) {
	search := utils.GetSearchQuery(r)
	result := &responses.ClinicSearch{
		Search:  search,
		Results: []responses.ClinicSummary{},
		Recent:  ctrl.SessionService.RecentClinics(r),
	}
	if search == "" {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchClinicsSuccessfully, result)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	clinics, err := ctrl.ClinicUsecase.SearchClinics(ctx, search, utils.BuildPaginationRequest(r))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if clinic, ok := utils.SingleMatch(clinics); ok {
		utils.BuildRedirectResponse(w, r, fmt.Sprintf(constvars.AppPathClinic, clinic.ID))
		return
	}

	result.Results = clinics
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchClinicsSuccessfully, result)
}

func (ctrl *ClinicController) FindClinic(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if err := utils.ValidateUrlParamID(clinicID, constvars.URLParamClinicID, utils.IsObjectID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.ClinicUsecase.FindClinicDetail(ctx, clinicID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.SessionService.PushRecentClinic(w, r, models.RecentClinic{
		ClinicID:  result.ID,
		Name:      result.Name,
		ShareCode: result.ShareCode,
	})
	logRecentPushError(ctrl.Log, r, "ClinicController.FindClinic", err)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicSuccessfully, result)
}
