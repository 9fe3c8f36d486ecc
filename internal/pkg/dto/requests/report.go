package requests

type ClinicReport struct {
	ClinicID string `json:"clinicId" form:"clinicId" validate:"required,object_id"`
}

type ClinicMergeReport struct {
	SourceClinicID string `json:"sourceClinicId" form:"sourceClinicId" validate:"required,object_id"`
	TargetClinicID string `json:"targetClinicId" form:"targetClinicId" validate:"required,object_id,nefield=SourceClinicID"`
	Format         string `json:"format" form:"format" validate:"omitempty,export_format"`
}
