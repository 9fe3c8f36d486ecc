package reports

import (
	"context"
	"fmt"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/tidepool_dto"
	"orca-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var reportTypes = []responses.ReportType{
	{
		Key:         models.ReportTypeClinicPatients,
		Name:        "Clinic patients",
		Description: "Every patient of a clinic with birth date, MRN and tags.",
		Fields:      []string{"clinicId"},
	},
	{
		Key:         models.ReportTypeClinicClinicians,
		Name:        "Clinic clinicians",
		Description: "Every clinician of a clinic with roles and invite status.",
		Fields:      []string{"clinicId"},
	},
	{
		Key:         models.ReportTypeClinicMerge,
		Name:        "Clinic merge",
		Description: "Duplicate patients, shared clinicians and new tags when merging one clinic into another.",
		Fields:      []string{"sourceClinicId", "targetClinicId", "format"},
	},
}

type reportUsecase struct {
	ClinicClient    contracts.ClinicTidepoolClient
	ClinicianClient contracts.ClinicianTidepoolClient
	PatientClient   contracts.PatientTidepoolClient
	Archive         contracts.ReportArchive
	Audit           contracts.AuditPublisher
	PageSize        int
	Log             *zap.Logger
	now             func() time.Time
}

func NewReportUsecase(
	clinicClient contracts.ClinicTidepoolClient,
	clinicianClient contracts.ClinicianTidepoolClient,
	patientClient contracts.PatientTidepoolClient,
	archive contracts.ReportArchive,
	audit contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReportUsecase {
	pageSize := internalConfig.Tidepool.PageSize
	if pageSize <= 0 {
		pageSize = constvars.AppMaxPageSize
	}
	return &reportUsecase{
		ClinicClient:    clinicClient,
		ClinicianClient: clinicianClient,
		PatientClient:   patientClient,
		Archive:         archive,
		Audit:           audit,
		PageSize:        pageSize,
		Log:             logger,
		now:             time.Now,
	}
}

func (uc *reportUsecase) ListReports(ctx context.Context) (*responses.ReportCatalog, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ListReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	catalog := &responses.ReportCatalog{Types: reportTypes}
	if !uc.Archive.Enabled() {
		return catalog, nil
	}

	archived, err := uc.Archive.List(ctx)
	if err != nil {
		uc.Log.Error("reportUsecase.ListReports error calling Archive.List",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	catalog.Archived = archived

	uc.Log.Info("reportUsecase.ListReports succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(archived)),
	)
	return catalog, nil
}

func (uc *reportUsecase) ClinicPatientsReport(ctx context.Context, request *requests.ClinicReport) (*models.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ClinicPatientsReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
	)

	var (
		clinic   *tidepool_dto.Clinic
		patients []tidepool_dto.Patient
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, request.ClinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.fetchAllPatients(groupCtx, request.ClinicID)
		patients = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("reportUsecase.ClinicPatientsReport error loading clinic patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	rows := make([][]interface{}, 0, len(patients))
	for _, patient := range patients {
		rows = append(rows, []interface{}{
			patient.ID,
			patient.FullName,
			patient.Email,
			patient.BirthDate,
			patient.Mrn,
			strings.Join(clinic.TagNames(patient.Tags), ", "),
			patient.CreatedTime,
		})
	}
	content, err := renderWorkbook([]sheet{{
		Name:    "Patients",
		Headers: []string{"User ID", "Full Name", "Email", "Birth Date", "MRN", "Tags", "Created"},
		Rows:    rows,
	}})
	if err != nil {
		uc.Log.Error("reportUsecase.ClinicPatientsReport error rendering workbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReportBuild(err, models.ReportTypeClinicPatients)
	}

	report := uc.newReport(models.ReportTypeClinicPatients, clinic.Name, content)
	uc.finish(ctx, report, request.ClinicID)
	return report, nil
}

func (uc *reportUsecase) ClinicCliniciansReport(ctx context.Context, request *requests.ClinicReport) (*models.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ClinicCliniciansReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
	)

	var (
		clinic     *tidepool_dto.Clinic
		clinicians []tidepool_dto.Clinician
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, request.ClinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.fetchAllClinicians(groupCtx, request.ClinicID)
		clinicians = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("reportUsecase.ClinicCliniciansReport error loading clinic clinicians",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	rows := make([][]interface{}, 0, len(clinicians))
	for _, clinician := range clinicians {
		rows = append(rows, []interface{}{
			clinician.ID,
			clinician.Name,
			clinician.Email,
			strings.Join(clinician.Roles, ", "),
			strconv.FormatBool(clinician.IsPendingInvite()),
			clinician.CreatedTime,
		})
	}
	content, err := renderWorkbook([]sheet{{
		Name:    "Clinicians",
		Headers: []string{"User ID", "Name", "Email", "Roles", "Pending Invite", "Created"},
		Rows:    rows,
	}})
	if err != nil {
		uc.Log.Error("reportUsecase.ClinicCliniciansReport error rendering workbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReportBuild(err, models.ReportTypeClinicClinicians)
	}

	report := uc.newReport(models.ReportTypeClinicClinicians, clinic.Name, content)
	uc.finish(ctx, report, request.ClinicID)
	return report, nil
}

// ClinicMergeReport always returns the analysis. The report file is only
// built for the xlsx format.
func (uc *reportUsecase) ClinicMergeReport(ctx context.Context, request *requests.ClinicMergeReport) (*responses.ClinicMergeReport, *models.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ClinicMergeReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSourceClinicIDKey, request.SourceClinicID),
		zap.String(constvars.LoggingTargetClinicIDKey, request.TargetClinicID),
		zap.String(constvars.LoggingFormatKey, request.Format),
	)

	source, target := new(MergeInput), new(MergeInput)
	group, groupCtx := errgroup.WithContext(ctx)
	uc.loadMergeInput(groupCtx, group, request.SourceClinicID, source)
	uc.loadMergeInput(groupCtx, group, request.TargetClinicID, target)
	if err := group.Wait(); err != nil {
		uc.Log.Error("reportUsecase.ClinicMergeReport error loading clinics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	analysis := AnalyzeMerge(source, target, uc.now())
	if request.Format != constvars.ExportFormatXLSX {
		uc.publish(ctx, models.ReportTypeClinicMerge, "", mergeTarget(request), constvars.ExportFormatJSON)
		uc.Log.Info("reportUsecase.ClinicMergeReport succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, analysis.Summary.LikelyDuplicates),
		)
		return analysis, nil, nil
	}

	content, err := renderWorkbook(mergeSheets(analysis))
	if err != nil {
		uc.Log.Error("reportUsecase.ClinicMergeReport error rendering workbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrReportBuild(err, models.ReportTypeClinicMerge)
	}

	report := uc.newReport(models.ReportTypeClinicMerge, source.Clinic.Name+" "+target.Clinic.Name, content)
	uc.finish(ctx, report, mergeTarget(request))
	return analysis, report, nil
}

func (uc *reportUsecase) loadMergeInput(ctx context.Context, group *errgroup.Group, clinicID string, input *MergeInput) {
	group.Go(func() error {
		clinic, err := uc.ClinicClient.FindClinicByID(ctx, clinicID)
		if err != nil {
			return err
		}
		input.Clinic = *clinic
		return nil
	})
	group.Go(func() error {
		patients, err := uc.fetchAllPatients(ctx, clinicID)
		input.Patients = patients
		return err
	})
	group.Go(func() error {
		clinicians, err := uc.fetchAllClinicians(ctx, clinicID)
		input.Clinicians = clinicians
		return err
	})
}

func mergeTarget(request *requests.ClinicMergeReport) string {
	return fmt.Sprintf("clinics/%s->clinics/%s", request.SourceClinicID, request.TargetClinicID)
}

// fetchAllPatients pages through the clinic's patients until the API total
// is reached or a short page comes back.
func (uc *reportUsecase) fetchAllPatients(ctx context.Context, clinicID string) ([]tidepool_dto.Patient, error) {
	var all []tidepool_dto.Patient
	for offset := 0; ; offset += uc.PageSize {
		page, err := uc.PatientClient.FindAll(ctx, clinicID, &requests.ListQuery{Offset: offset, Limit: uc.PageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		if len(page.Data) < uc.PageSize || (page.Meta.Count > 0 && len(all) >= page.Meta.Count) {
			return all, nil
		}
	}
}

func (uc *reportUsecase) fetchAllClinicians(ctx context.Context, clinicID string) ([]tidepool_dto.Clinician, error) {
	var all []tidepool_dto.Clinician
	for offset := 0; ; offset += uc.PageSize {
		page, err := uc.ClinicianClient.FindAll(ctx, clinicID, &requests.ListQuery{Offset: offset, Limit: uc.PageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < uc.PageSize {
			return all, nil
		}
	}
}

func (uc *reportUsecase) newReport(reportType, subject string, content []byte) *models.Report {
	generatedAt := uc.now()
	return &models.Report{
		ID:          ulid.Make().String(),
		Type:        reportType,
		FileName:    utils.GenerateFileName(reportType, subject, constvars.ExportFormatXLSX, generatedAt),
		ContentType: constvars.MIMEApplicationXLSX,
		Content:     content,
		GeneratedAt: generatedAt,
	}
}

// finish archives the report and publishes the audit event. Neither failure
// fails the request.
func (uc *reportUsecase) finish(ctx context.Context, report *models.Report, target string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.Archive.Archive(ctx, report); err != nil {
		uc.Log.Warn("reportUsecase.finish report not archived",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportIDKey, report.ID),
			zap.Error(err),
		)
	}
	uc.publish(ctx, report.Type, report.ID, target, constvars.ExportFormatXLSX)

	uc.Log.Info("reportUsecase.finish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, report.ID),
		zap.String(constvars.LoggingReportTypeKey, report.Type),
		zap.Int(constvars.LoggingObjectSizeKey, len(report.Content)),
	)
}

func (uc *reportUsecase) publish(ctx context.Context, reportType, reportID, target, format string) {
	event := models.NewAuditEvent(ctx, models.AuditActionReportGenerated, target, map[string]string{
		"reportType": reportType,
		"reportId":   reportID,
		"format":     format,
	})
	if err := uc.Audit.Publish(ctx, event); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("reportUsecase.publish audit event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportTypeKey, reportType),
			zap.Error(err),
		)
	}
}

func mergeSheets(analysis *responses.ClinicMergeReport) []sheet {
	summary := analysis.Summary
	summarySheet := sheet{
		Name:    "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]interface{}{
			{"Source clinic", analysis.Source.Name},
			{"Target clinic", analysis.Target.Name},
			{"Source patients", summary.SourcePatients},
			{"Target patients", summary.TargetPatients},
			{"Duplicate accounts", summary.DuplicateAccounts},
			{"Likely duplicates", summary.LikelyDuplicates},
			{"Resulting patients", summary.ResultingPatients},
			{"Source clinicians", summary.SourceClinicians},
			{"Target clinicians", summary.TargetClinicians},
			{"Shared clinicians", summary.SharedClinicians},
			{"Resulting clinicians", summary.ResultingClinicians},
			{"Source tags", summary.SourceTags},
			{"Target tags", summary.TargetTags},
			{"New tags", summary.NewTags},
			{"Resulting tags", summary.ResultingTags},
		},
	}

	patientHeaders := []string{"Source ID", "Source Name", "Source Birth Date", "Source MRN", "Target ID", "Target Name", "Target Birth Date", "Target MRN", "Reasons"}
	duplicates := sheet{Name: "Duplicate Accounts", Headers: patientHeaders}
	for _, pair := range analysis.DuplicateAccounts {
		duplicates.Rows = append(duplicates.Rows, patientPairRow(pair))
	}
	likely := sheet{Name: "Likely Duplicates", Headers: patientHeaders}
	for _, pair := range analysis.LikelyDuplicates {
		likely.Rows = append(likely.Rows, patientPairRow(pair))
	}

	clinicians := sheet{
		Name:    "Shared Clinicians",
		Headers: []string{"Source Email", "Source Name", "Source Roles", "Target Email", "Target Name", "Target Roles"},
	}
	for _, pair := range analysis.SharedClinicians {
		clinicians.Rows = append(clinicians.Rows, []interface{}{
			pair.Source.Email, pair.Source.Name, strings.Join(pair.Source.Roles, ", "),
			pair.Target.Email, pair.Target.Name, strings.Join(pair.Target.Roles, ", "),
		})
	}

	tags := sheet{Name: "Tags", Headers: []string{"Tag", "Status"}}
	for _, tag := range analysis.NewTags {
		tags.Rows = append(tags.Rows, []interface{}{tag, "new"})
	}
	for _, tag := range analysis.SharedTags {
		tags.Rows = append(tags.Rows, []interface{}{tag, "shared"})
	}

	return []sheet{summarySheet, duplicates, likely, clinicians, tags}
}

func patientPairRow(pair responses.MergePatientPair) []interface{} {
	return []interface{}{
		pair.Source.ID, pair.Source.FullName, pair.Source.BirthDate, pair.Source.Mrn,
		pair.Target.ID, pair.Target.FullName, pair.Target.BirthDate, pair.Target.Mrn,
		strings.Join(pair.Reasons, ", "),
	}
}
