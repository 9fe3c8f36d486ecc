package tidepool_dto

import "sort"

type Patient struct {
	ID            string                 `json:"id" validate:"required"`
	Email         string                 `json:"email,omitempty"`
	FullName      string                 `json:"fullName" validate:"required"`
	BirthDate     string                 `json:"birthDate" validate:"required"`
	Mrn           string                 `json:"mrn,omitempty"`
	TargetDevices []string               `json:"targetDevices,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	Permissions   map[string]interface{} `json:"permissions,omitempty"`
	CreatedTime   string                 `json:"createdTime,omitempty"`
	UpdatedTime   string                 `json:"updatedTime,omitempty"`
}

func (p *Patient) PermissionNames() []string {
	names := make([]string, 0, len(p.Permissions))
	for name := range p.Permissions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type PatientsResponse struct {
	Data []Patient `json:"data" validate:"dive"`
	Meta struct {
		Count int `json:"count"`
	} `json:"meta"`
}

type PatientClinicRelationship struct {
	Clinic  Clinic  `json:"clinic"`
	Patient Patient `json:"patient"`
}
