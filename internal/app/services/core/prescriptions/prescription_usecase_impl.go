package prescriptions

import (
	"context"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/mapper"
	"orca-service/internal/pkg/tidepool_dto"
	"orca-service/internal/pkg/utils"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	unitsBasalRate  = "U/hr"
	unitsInsulin    = "U"
	unitsCarbRatio  = "g/U"
	unitsPerInsulin = "/U"
)

type prescriptionUsecase struct {
	ClinicClient       contracts.ClinicTidepoolClient
	PrescriptionClient contracts.PrescriptionTidepoolClient
	Log                *zap.Logger
}

func NewPrescriptionUsecase(
	clinicClient contracts.ClinicTidepoolClient,
	prescriptionClient contracts.PrescriptionTidepoolClient,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		ClinicClient:       clinicClient,
		PrescriptionClient: prescriptionClient,
		Log:                logger,
	}
}

// FindClinicPrescriptions lists the clinic's prescriptions in state (all when
// empty). search keeps those whose id or access code equals it, or whose
// patient name or email contains it. Only an id or access code match is
// reported as ExactMatchID.
func (uc *prescriptionUsecase) FindClinicPrescriptions(ctx context.Context, clinicID, state, search string) (*responses.PrescriptionList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindClinicPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingSearchKey, search),
	)

	var (
		clinic        *tidepool_dto.Clinic
		prescriptions []tidepool_dto.Prescription
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, clinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.PrescriptionClient.FindAllByClinic(groupCtx, clinicID, state)
		prescriptions = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("prescriptionUsecase.FindClinicPrescriptions error loading prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.Error(err),
		)
		return nil, err
	}

	search = strings.TrimSpace(search)
	list := &responses.PrescriptionList{
		Clinic:        mapper.ToClinicSummary(clinic),
		State:         state,
		Search:        search,
		Prescriptions: []responses.PrescriptionSummary{},
	}
	var exact []string
	for i := range prescriptions {
		summary := mapper.ToPrescriptionSummary(&prescriptions[i])
		if matchesSearch(summary, search) {
			list.Prescriptions = append(list.Prescriptions, summary)
		}
		if isExactMatch(summary, search) {
			exact = append(exact, summary.ID)
		}
	}
	if len(exact) == 1 {
		list.ExactMatchID = exact[0]
	}

	uc.Log.Info("prescriptionUsecase.FindClinicPrescriptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(list.Prescriptions)),
	)
	return list, nil
}

func isExactMatch(summary responses.PrescriptionSummary, search string) bool {
	if search == "" {
		return false
	}
	return summary.ID == search || strings.EqualFold(summary.AccessCode, search)
}

func matchesSearch(summary responses.PrescriptionSummary, search string) bool {
	if search == "" || isExactMatch(summary, search) {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(summary.PatientName), needle) ||
		strings.Contains(strings.ToLower(summary.Email), needle)
}

// FindPrescriptionDetail converts glucose values to bgUnits, falling back to
// the clinic preference and then mg/dL.
func (uc *prescriptionUsecase) FindPrescriptionDetail(ctx context.Context, clinicID, prescriptionID, bgUnits string) (*responses.PrescriptionDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindPrescriptionDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	var (
		clinic       *tidepool_dto.Clinic
		prescription *tidepool_dto.Prescription
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := uc.ClinicClient.FindClinicByID(groupCtx, clinicID)
		clinic = found
		return err
	})
	group.Go(func() error {
		found, err := uc.PrescriptionClient.FindPrescriptionByID(groupCtx, clinicID, prescriptionID)
		prescription = found
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("prescriptionUsecase.FindPrescriptionDetail error loading prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	units, ok := utils.NormalizeBGUnits(bgUnits)
	if !ok {
		units, ok = utils.NormalizeBGUnits(clinic.PreferredBgUnits)
	}
	if !ok {
		units = constvars.BGUnitsMgdl
	}

	detail := &responses.PrescriptionDetail{
		Clinic:         mapper.ToClinicSummary(clinic),
		Prescription:   mapper.ToPrescriptionSummary(prescription),
		ExpirationDate: utils.FormatDate(prescription.ExpirationTime),
	}
	if revision := prescription.LatestRevision; revision != nil {
		attributes := revision.Attributes
		detail.RevisionID = revision.RevisionID
		detail.AccountType = attributes.AccountType
		detail.CaregiverName = mapper.JoinName(attributes.CaregiverFirstName, attributes.CaregiverLastName)
		detail.BirthDate = utils.FormatDate(attributes.Birthday)
		detail.Mrn = attributes.Mrn
		detail.Sex = attributes.Sex
		detail.YearOfDiagnosis = attributes.YearOfDiagnosis
		detail.Training = attributes.Training
		if attributes.Weight != nil {
			detail.Weight = formatAmount(attributes.Weight.Value) + " " + attributes.Weight.Units
		}
		if attributes.InitialSettings != nil {
			detail.TherapySettings = therapySettingsView(attributes.InitialSettings, units)
		}
	}

	uc.Log.Info("prescriptionUsecase.FindPrescriptionDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return detail, nil
}

func therapySettingsView(settings *tidepool_dto.InitialSettings, units string) *responses.TherapySettingsView {
	from, ok := utils.NormalizeBGUnits(settings.BloodGlucoseUnits)
	if !ok {
		from = constvars.BGUnitsMgdl
	}

	view := &responses.TherapySettingsView{
		BGUnits:      units,
		InsulinModel: settings.InsulinModel,
		PumpID:       settings.PumpID,
		CgmID:        settings.CgmID,
	}
	for _, target := range settings.BloodGlucoseTargetSchedule {
		view.GlucoseTargets = append(view.GlucoseTargets, responses.ScheduleEntry{
			StartTime: utils.FormatTimeOfDay(target.Start),
			Value: utils.FormatBGRange(
				utils.ConvertBG(target.Low, from, units),
				utils.ConvertBG(target.High, from, units),
				units,
			),
		})
	}
	if threshold := settings.BloodGlucoseSuspendThreshold; threshold != nil {
		thresholdUnits := threshold.Units
		if _, ok := utils.NormalizeBGUnits(thresholdUnits); !ok {
			thresholdUnits = from
		}
		view.SuspendThreshold = utils.FormatBG(utils.ConvertBG(threshold.Value, thresholdUnits, units), units)
	}
	if maximum := settings.BasalRateMaximum; maximum != nil {
		view.BasalRateMaximum = formatAmount(maximum.Value) + " " + unitsBasalRate
	}
	if maximum := settings.BolusAmountMaximum; maximum != nil {
		view.BolusAmountMaximum = formatAmount(maximum.Value) + " " + unitsInsulin
	}
	for _, rate := range settings.BasalRateSchedule {
		view.BasalRates = append(view.BasalRates, responses.ScheduleEntry{
			StartTime: utils.FormatTimeOfDay(rate.Start),
			Value:     formatAmount(rate.Rate) + " " + unitsBasalRate,
		})
	}
	for _, ratio := range settings.CarbohydrateRatioSchedule {
		view.CarbohydrateRatios = append(view.CarbohydrateRatios, responses.ScheduleEntry{
			StartTime: utils.FormatTimeOfDay(ratio.Start),
			Value:     formatAmount(ratio.Amount) + " " + unitsCarbRatio,
		})
	}
	for _, sensitivity := range settings.InsulinSensitivitySchedule {
		view.InsulinSensitivityFactor = append(view.InsulinSensitivityFactor, responses.ScheduleEntry{
			StartTime: utils.FormatTimeOfDay(sensitivity.Start),
			Value:     utils.FormatBG(utils.ConvertBG(sensitivity.Amount, from, units), units) + unitsPerInsulin,
		})
	}
	return view
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
