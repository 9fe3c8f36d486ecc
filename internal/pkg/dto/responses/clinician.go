package responses

import "orca-service/internal/app/models"

type ClinicianSummary struct {
	ID           string   `json:"id,omitempty"`
	InviteID     string   `json:"inviteId,omitempty"`
	Email        string   `json:"email"`
	Name         string   `json:"name,omitempty"`
	Roles        []string `json:"roles"`
	IsAdmin      bool     `json:"isAdmin"`
	IsPrescriber bool     `json:"isPrescriber"`
	Pending      bool     `json:"pending"`
	CreatedDate  string   `json:"createdDate,omitempty"`
}

// ClinicianRoleForm pre-fills the role edit form.
type ClinicianRoleForm struct {
	Role       string   `json:"role"`
	Prescriber bool     `json:"prescriber"`
	Choices    []string `json:"choices"`
}

type ClinicianDetail struct {
	Clinic    ClinicSummary     `json:"clinic"`
	Clinician ClinicianSummary  `json:"clinician"`
	RoleForm  ClinicianRoleForm `json:"roleForm"`
}

type ClinicianList struct {
	Clinic     ClinicSummary      `json:"clinic"`
	Search     string             `json:"search,omitempty"`
	Clinicians []ClinicianSummary `json:"clinicians"`
}

type ClinicianLookup struct {
	Search      string                   `json:"search,omitempty"`
	User        *UserSummary             `json:"user,omitempty"`
	Memberships []ClinicMembership       `json:"memberships"`
	Recent      []models.RecentClinician `json:"recent"`
}
