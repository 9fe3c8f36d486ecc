package responses

import "orca-service/internal/app/models"

type PatientSummary struct {
	ID        string   `json:"id"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email,omitempty"`
	BirthDate string   `json:"birthDate"`
	Age       *int     `json:"age,omitempty"`
	Mrn       string   `json:"mrn,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

type PatientDetail struct {
	Clinic        ClinicSummary  `json:"clinic"`
	Patient       PatientSummary `json:"patient"`
	TargetDevices []string       `json:"targetDevices,omitempty"`
	Permissions   []string       `json:"permissions,omitempty"`
	CreatedDate   string         `json:"createdDate,omitempty"`
	UpdatedDate   string         `json:"updatedDate,omitempty"`
}

type PatientList struct {
	Clinic   ClinicSummary    `json:"clinic"`
	Search   string           `json:"search,omitempty"`
	Patients []PatientSummary `json:"patients"`
}

type PatientLookup struct {
	Search      string                 `json:"search,omitempty"`
	User        *UserSummary           `json:"user,omitempty"`
	Memberships []ClinicMembership     `json:"memberships"`
	Recent      []models.RecentPatient `json:"recent"`
}
