package tidepool_dto

type Prescription struct {
	ID               string                `json:"id" validate:"required"`
	ClinicID         string                `json:"clinicId,omitempty"`
	PatientUserID    string                `json:"patientUserId,omitempty"`
	AccessCode       string                `json:"accessCode,omitempty"`
	State            string                `json:"state" validate:"required"`
	LatestRevision   *PrescriptionRevision `json:"latestRevision,omitempty"`
	ExpirationTime   string                `json:"expirationTime,omitempty"`
	PrescriberUserID string                `json:"prescriberUserId,omitempty"`
	CreatorUserID    string                `json:"createdUserId,omitempty"`
	CreatedTime      string                `json:"createdTime,omitempty"`
	ModifiedTime     string                `json:"modifiedTime,omitempty"`
}

type PrescriptionRevision struct {
	RevisionID int                    `json:"revisionId"`
	Attributes PrescriptionAttributes `json:"attributes"`
}

type PrescriptionAttributes struct {
	AccountType             string           `json:"accountType,omitempty"`
	CaregiverFirstName      string           `json:"caregiverFirstName,omitempty"`
	CaregiverLastName       string           `json:"caregiverLastName,omitempty"`
	FirstName               string           `json:"firstName,omitempty"`
	LastName                string           `json:"lastName,omitempty"`
	Birthday                string           `json:"birthday,omitempty"`
	Mrn                     string           `json:"mrn,omitempty"`
	Email                   string           `json:"email,omitempty"`
	Sex                     string           `json:"sex,omitempty"`
	Weight                  *Measurement     `json:"weight,omitempty"`
	YearOfDiagnosis         int              `json:"yearOfDiagnosis,omitempty"`
	InitialSettings         *InitialSettings `json:"initialSettings,omitempty"`
	Training                string           `json:"training,omitempty"`
	TherapySettings         string           `json:"therapySettings,omitempty"`
	PrescriberTermsAccepted bool             `json:"prescriberTermsAccepted"`
	State                   string           `json:"state,omitempty"`
}

type Measurement struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

type InitialSettings struct {
	BloodGlucoseUnits            string                `json:"bloodGlucoseUnits,omitempty"`
	BasalRateMaximum             *Measurement          `json:"basalRateMaximum,omitempty"`
	BolusAmountMaximum           *Measurement          `json:"bolusAmountMaximum,omitempty"`
	BloodGlucoseSuspendThreshold *Measurement          `json:"bloodGlucoseSuspendThreshold,omitempty"`
	BloodGlucoseTargetSchedule   []BloodGlucoseTarget  `json:"bloodGlucoseTargetSchedule,omitempty"`
	BasalRateSchedule            []BasalRateStart      `json:"basalRateSchedule,omitempty"`
	CarbohydrateRatioSchedule    []ScheduleAmountStart `json:"carbohydrateRatioSchedule,omitempty"`
	InsulinSensitivitySchedule   []ScheduleAmountStart `json:"insulinSensitivitySchedule,omitempty"`
	InsulinModel                 string                `json:"insulinModel,omitempty"`
	PumpID                       string                `json:"pumpId,omitempty"`
	CgmID                        string                `json:"cgmId,omitempty"`
}

// Start values are milliseconds since local midnight.
type BloodGlucoseTarget struct {
	Start int64   `json:"start"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

type BasalRateStart struct {
	Start int64   `json:"start"`
	Rate  float64 `json:"rate"`
}

type ScheduleAmountStart struct {
	Start  int64   `json:"start"`
	Amount float64 `json:"amount"`
}
