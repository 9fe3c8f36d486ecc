package tidepool_dto

import (
	"orca-service/internal/pkg/constvars"
	"slices"
)

type User struct {
	UserID        string   `json:"userid" validate:"required"`
	Username      string   `json:"username,omitempty"`
	Emails        []string `json:"emails,omitempty"`
	Roles         []string `json:"roles,omitempty"`
	EmailVerified bool     `json:"emailVerified"`
	TermsAccepted string   `json:"termsAccepted,omitempty"`
	CreatedTime   string   `json:"createdTime,omitempty"`
	ModifiedTime  string   `json:"modifiedTime,omitempty"`
}

func (u *User) IsClinician() bool {
	return slices.Contains(u.Roles, constvars.UserRoleClinic) || slices.Contains(u.Roles, constvars.UserRoleClinician)
}

// IsCustodial reports accounts created on behalf of a patient that have no
// login of their own.
func (u *User) IsCustodial() bool {
	return u.Username == "" && len(u.Emails) == 0
}

func (u *User) PrimaryEmail() string {
	if u.Username != "" {
		return u.Username
	}
	if len(u.Emails) > 0 {
		return u.Emails[0]
	}
	return ""
}

func (u *User) Kind() string {
	switch {
	case u.IsClinician():
		return constvars.UserKindClinician
	case u.IsCustodial():
		return constvars.UserKindCustodial
	case !u.EmailVerified:
		return constvars.UserKindUnverified
	default:
		return constvars.UserKindPatient
	}
}

type Profile struct {
	FullName  string            `json:"fullName,omitempty"`
	Patient   *ProfilePatient   `json:"patient,omitempty"`
	Clinic    *ProfileClinic    `json:"clinic,omitempty"`
	Clinician *ProfileClinician `json:"clinician,omitempty"`
}

type ProfilePatient struct {
	FullName       string   `json:"fullName,omitempty"`
	Birthday       string   `json:"birthday,omitempty"`
	DiagnosisDate  string   `json:"diagnosisDate,omitempty"`
	DiagnosisType  string   `json:"diagnosisType,omitempty"`
	Mrn            string   `json:"mrn,omitempty"`
	Email          string   `json:"email,omitempty"`
	TargetDevices  []string `json:"targetDevices,omitempty"`
	TargetTimezone string   `json:"targetTimezone,omitempty"`
	About          string   `json:"about,omitempty"`
}

type ProfileClinic struct {
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	NPI       string `json:"npi,omitempty"`
}

type ProfileClinician struct {
	Role string `json:"role,omitempty"`
	NPI  string `json:"npi,omitempty"`
}
