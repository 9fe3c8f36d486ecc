package controllers

import (
	"fmt"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/mapper"
	"orca-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) LookupPatient(w http.ResponseWriter, r *http.Request) {
	search := utils.GetSearchQuery(r)
	recent := ctrl.SessionService.RecentPatients(r)
	if search == "" {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchPatientsSuccessfully, &responses.PatientLookup{
			Memberships: []responses.ClinicMembership{},
			Recent:      recent,
		})
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.PatientUsecase.LookupPatient(ctx, search)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if membership, ok := utils.SingleMatch(result.Memberships); ok {
		utils.BuildRedirectResponse(w, r, membership.Link)
		return
	}

	result.Recent = recent
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchPatientsSuccessfully, result)
}

func (ctrl *PatientController) FindClinicPatients(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if err := utils.ValidateUrlParamID(clinicID, constvars.URLParamClinicID, utils.IsObjectID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	search := utils.GetSearchQuery(r)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, total, err := ctrl.PatientUsecase.FindClinicPatients(ctx, clinicID, search, pagination)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if search != "" {
		if patient, ok := utils.SingleMatch(result.Patients); ok {
			utils.BuildRedirectResponse(w, r, mapper.PatientLink(clinicID, patient.ID))
			return
		}
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, fmt.Sprintf(constvars.AppPathClinicPatients, clinicID))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPatientsSuccessfully, paginationData, result)
}

func (ctrl *PatientController) FindPatient(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	if err := utils.ValidateUrlParamID(clinicID, constvars.URLParamClinicID, utils.IsObjectID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if err := utils.ValidateUrlParamID(patientID, constvars.URLParamPatientID, utils.IsTidepoolUserID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindPatientDetail(ctx, clinicID, patientID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.SessionService.PushRecentPatient(w, r, models.RecentPatient{
		PatientID:  patientID,
		ClinicID:   clinicID,
		ClinicName: result.Clinic.Name,
		FullName:   result.Patient.FullName,
		Email:      result.Patient.Email,
		BirthDate:  result.Patient.BirthDate,
	})
	logRecentPushError(ctrl.Log, r, "PatientController.FindPatient", err)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessfully, result)
}
