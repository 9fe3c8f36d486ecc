package controllers

import (
	"fmt"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
	InternalConfig      *config.InternalConfig
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase, internalConfig *config.InternalConfig) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *PrescriptionController) FindClinicPrescriptions(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if err := utils.ValidateUrlParamID(clinicID, constvars.URLParamClinicID, utils.IsObjectID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	search := utils.GetSearchQuery(r)
	state := r.URL.Query().Get(constvars.URLQueryParamState)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.FindClinicPrescriptions(ctx, clinicID, state, search)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if result.ExactMatchID != "" {
		utils.BuildRedirectResponse(w, r, fmt.Sprintf(constvars.AppPathClinicPrescription, clinicID, result.ExactMatchID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessfully, result)
}

func (ctrl *PrescriptionController) FindPrescription(w http.ResponseWriter, r *http.Request) {
	request := &requests.PrescriptionView{
		ClinicID:       chi.URLParam(r, constvars.URLParamClinicID),
		PrescriptionID: chi.URLParam(r, constvars.URLParamPrescriptionID),
		BGUnits:        r.URL.Query().Get(constvars.URLQueryParamBGUnits),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.FindPrescriptionDetail(ctx, request.ClinicID, request.PrescriptionID, request.BGUnits)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionSuccessfully, result)
}
