package responses

type PrescriptionSummary struct {
	ID           string `json:"id"`
	ClinicID     string `json:"clinicId,omitempty"`
	State        string `json:"state"`
	AccessCode   string `json:"accessCode,omitempty"`
	PatientName  string `json:"patientName,omitempty"`
	Email        string `json:"email,omitempty"`
	CreatedDate  string `json:"createdDate,omitempty"`
	ModifiedDate string `json:"modifiedDate,omitempty"`
}

type PrescriptionList struct {
	Clinic        ClinicSummary         `json:"clinic"`
	State         string                `json:"state,omitempty"`
	Search        string                `json:"search,omitempty"`
	Prescriptions []PrescriptionSummary `json:"prescriptions"`
	// ExactMatchID is set when search equals the id or access code of exactly
	// one prescription.
	ExactMatchID  string                `json:"-"`
}

type ScheduleEntry struct {
	StartTime string `json:"startTime"`
	Value     string `json:"value"`
}

type TherapySettingsView struct {
	BGUnits                  string          `json:"bgUnits"`
	GlucoseTargets           []ScheduleEntry `json:"glucoseTargets,omitempty"`
	SuspendThreshold         string          `json:"suspendThreshold,omitempty"`
	BasalRateMaximum         string          `json:"basalRateMaximum,omitempty"`
	BolusAmountMaximum       string          `json:"bolusAmountMaximum,omitempty"`
	BasalRates               []ScheduleEntry `json:"basalRates,omitempty"`
	CarbohydrateRatios       []ScheduleEntry `json:"carbohydrateRatios,omitempty"`
	InsulinSensitivityFactor []ScheduleEntry `json:"insulinSensitivityFactors,omitempty"`
	InsulinModel             string          `json:"insulinModel,omitempty"`
	PumpID                   string          `json:"pumpId,omitempty"`
	CgmID                    string          `json:"cgmId,omitempty"`
}

type PrescriptionDetail struct {
	Clinic          ClinicSummary        `json:"clinic"`
	Prescription    PrescriptionSummary  `json:"prescription"`
	RevisionID      int                  `json:"revisionId"`
	AccountType     string               `json:"accountType,omitempty"`
	CaregiverName   string               `json:"caregiverName,omitempty"`
	BirthDate       string               `json:"birthDate,omitempty"`
	Mrn             string               `json:"mrn,omitempty"`
	Sex             string               `json:"sex,omitempty"`
	Weight          string               `json:"weight,omitempty"`
	YearOfDiagnosis int                  `json:"yearOfDiagnosis,omitempty"`
	Training        string               `json:"training,omitempty"`
	TherapySettings *TherapySettingsView `json:"therapySettings,omitempty"`
	ExpirationDate  string               `json:"expirationDate,omitempty"`
}
