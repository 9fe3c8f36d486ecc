package responses

import "orca-service/internal/app/models"

type ReportType struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

type ReportCatalog struct {
	Types    []ReportType            `json:"types"`
	Archived []models.ArchivedReport `json:"archived,omitempty"`
}

type MergeSummary struct {
	SourcePatients      int `json:"sourcePatients"`
	TargetPatients      int `json:"targetPatients"`
	DuplicateAccounts   int `json:"duplicateAccounts"`
	LikelyDuplicates    int `json:"likelyDuplicates"`
	ResultingPatients   int `json:"resultingPatients"`
	SourceClinicians    int `json:"sourceClinicians"`
	TargetClinicians    int `json:"targetClinicians"`
	SharedClinicians    int `json:"sharedClinicians"`
	ResultingClinicians int `json:"resultingClinicians"`
	SourceTags          int `json:"sourceTags"`
	TargetTags          int `json:"targetTags"`
	NewTags             int `json:"newTags"`
	ResultingTags       int `json:"resultingTags"`
}

type MergePatientPair struct {
	Source  PatientSummary `json:"source"`
	Target  PatientSummary `json:"target"`
	Reasons []string       `json:"reasons"`
}

type MergeClinicianPair struct {
	Source ClinicianSummary `json:"source"`
	Target ClinicianSummary `json:"target"`
}

type ClinicMergeReport struct {
	GeneratedAt       string               `json:"generatedAt"`
	Source            ClinicSummary        `json:"source"`
	Target            ClinicSummary        `json:"target"`
	Summary           MergeSummary         `json:"summary"`
	DuplicateAccounts []MergePatientPair   `json:"duplicateAccounts"`
	LikelyDuplicates  []MergePatientPair   `json:"likelyDuplicates"`
	SharedClinicians  []MergeClinicianPair `json:"sharedClinicians"`
	NewTags           []string             `json:"newTags"`
	SharedTags        []string             `json:"sharedTags"`
}
