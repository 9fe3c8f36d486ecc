package controllers

import (
	"context"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	ReportUsecase  contracts.ReportUsecase
	InternalConfig *config.InternalConfig
}

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase, internalConfig *config.InternalConfig) *ReportController {
	return &ReportController{
		Log:            logger,
		ReportUsecase:  reportUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.ReportUsecase.ListReports(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessfully, result)
}

func (ctrl *ReportController) ClinicPatientsReport(w http.ResponseWriter, r *http.Request) {
	ctrl.clinicReport(w, r, ctrl.ReportUsecase.ClinicPatientsReport)
}

func (ctrl *ReportController) ClinicCliniciansReport(w http.ResponseWriter, r *http.Request) {
	ctrl.clinicReport(w, r, ctrl.ReportUsecase.ClinicCliniciansReport)
}

// ClinicMergeReport answers with the analysis as JSON, or with the workbook
// when format=xlsx.
func (ctrl *ReportController) ClinicMergeReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ClinicMergeReport)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	analysis, report, err := ctrl.ReportUsecase.ClinicMergeReport(ctx, request)
	if err != nil {
		if request.Format == constvars.ExportFormatXLSX {
			buildUsecasePlainTextErrorResponse(ctrl.Log, w, err)
			return
		}
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if report != nil {
		ctrl.writeReport(w, r, report)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicMergeReportSuccessfully, analysis)
}

func (ctrl *ReportController) clinicReport(w http.ResponseWriter, r *http.Request, generate func(context.Context, *requests.ClinicReport) (*models.Report, error)) {
	request := new(requests.ClinicReport)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	report, err := generate(ctx, request)
	if err != nil {
		buildUsecasePlainTextErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.writeReport(w, r, report)
}

func (ctrl *ReportController) writeReport(w http.ResponseWriter, r *http.Request, report *models.Report) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ReportController.writeReport sending report",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, report.ID),
		zap.String(constvars.LoggingReportTypeKey, report.Type),
		zap.Int(constvars.LoggingObjectSizeKey, len(report.Content)),
	)
	utils.BuildFileResponse(w, report.ContentType, report.FileName, report.Content)
}
