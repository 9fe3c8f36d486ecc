package models

type RecentUser struct {
	UserID   string `json:"userId"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

func (r RecentUser) RecencyKey() string { return r.UserID }

type RecentClinic struct {
	ClinicID  string `json:"clinicId"`
	Name      string `json:"name"`
	ShareCode string `json:"shareCode,omitempty"`
}

func (r RecentClinic) RecencyKey() string { return r.ClinicID }

// Clinicians and patients are clinic scoped, so the same user seen through
// two clinics gives two entries.
type RecentClinician struct {
	ClinicianID string `json:"clinicianId"`
	ClinicID    string `json:"clinicId"`
	ClinicName  string `json:"clinicName,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
}

func (r RecentClinician) RecencyKey() string { return r.ClinicID + "/" + r.ClinicianID }

type RecentPatient struct {
	PatientID  string `json:"patientId"`
	ClinicID   string `json:"clinicId"`
	ClinicName string `json:"clinicName,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	Email      string `json:"email,omitempty"`
	BirthDate  string `json:"birthDate,omitempty"`
}

func (r RecentPatient) RecencyKey() string { return r.ClinicID + "/" + r.PatientID }
