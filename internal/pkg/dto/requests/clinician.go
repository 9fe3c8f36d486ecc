package requests

type UpdateClinicianRoles struct {
	ClinicID    string `json:"-" form:"-" validate:"required,object_id"`
	ClinicianID string `json:"-" form:"-" validate:"required"`
	Role        string `json:"role" form:"role" validate:"required,clinician_role"`
	Prescriber  bool   `json:"prescriber" form:"prescriber"`
}
