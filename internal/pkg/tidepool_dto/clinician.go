package tidepool_dto

import (
	"orca-service/internal/pkg/constvars"
	"slices"
)

type Clinician struct {
	ID          string   `json:"id,omitempty"`
	InviteID    string   `json:"inviteId,omitempty"`
	Email       string   `json:"email" validate:"required"`
	Name        string   `json:"name,omitempty"`
	Roles       []string `json:"roles" validate:"required,min=1"`
	CreatedTime string   `json:"createdTime,omitempty"`
	UpdatedTime string   `json:"updatedTime,omitempty"`
}

func (c *Clinician) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

func (c *Clinician) IsAdmin() bool {
	return c.HasRole(constvars.ClinicianRoleAdmin)
}

func (c *Clinician) IsPrescriber() bool {
	return c.HasRole(constvars.ClinicianRolePrescriber)
}

// IsPendingInvite reports a clinician that was invited but has not accepted.
func (c *Clinician) IsPendingInvite() bool {
	return c.ID == "" && c.InviteID != ""
}

type ClinicianClinicRelationship struct {
	Clinic    Clinic    `json:"clinic"`
	Clinician Clinician `json:"clinician"`
}
