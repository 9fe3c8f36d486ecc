package responses

import "orca-service/internal/app/models"

type UserSummary struct {
	UserID        string   `json:"userId"`
	Email         string   `json:"email,omitempty"`
	FullName      string   `json:"fullName,omitempty"`
	Kind          string   `json:"kind"`
	Roles         []string `json:"roles,omitempty"`
	EmailVerified bool     `json:"emailVerified"`
	TermsAccepted string   `json:"termsAccepted,omitempty"`
	CreatedDate   string   `json:"createdDate,omitempty"`
}

type UserSearch struct {
	Search  string              `json:"search,omitempty"`
	Results []UserSummary       `json:"results"`
	Recent  []models.RecentUser `json:"recent"`
}

type ProfileView struct {
	FullName      string   `json:"fullName,omitempty"`
	BirthDate     string   `json:"birthDate,omitempty"`
	Age           *int     `json:"age,omitempty"`
	DiagnosisDate string   `json:"diagnosisDate,omitempty"`
	DiagnosisType string   `json:"diagnosisType,omitempty"`
	Mrn           string   `json:"mrn,omitempty"`
	TargetDevices []string `json:"targetDevices,omitempty"`
	ClinicName    string   `json:"clinicName,omitempty"`
	ClinicRole    string   `json:"clinicRole,omitempty"`
	NPI           string   `json:"npi,omitempty"`
}

type UserDetail struct {
	User             UserSummary           `json:"user"`
	Profile          *ProfileView          `json:"profile,omitempty"`
	ClinicianClinics []ClinicMembership    `json:"clinicianClinics,omitempty"`
	PatientClinics   []ClinicMembership    `json:"patientClinics,omitempty"`
	Prescriptions    []PrescriptionSummary `json:"prescriptions,omitempty"`
}

// ClinicMembership is one clinic a user belongs to, either as clinician or
// as patient.
type ClinicMembership struct {
	Clinic ClinicSummary `json:"clinic"`
	Roles  []string      `json:"roles,omitempty"`
	Link   string        `json:"link"`
}
