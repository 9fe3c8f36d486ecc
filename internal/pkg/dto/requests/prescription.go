package requests

type PrescriptionView struct {
	ClinicID       string `json:"-" form:"-" validate:"required,object_id"`
	PrescriptionID string `json:"-" form:"-" validate:"required,object_id"`
	BGUnits        string `json:"bgUnits" form:"bgUnits" validate:"omitempty,bg_units"`
}
