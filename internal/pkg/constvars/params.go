package constvars

const (
	URLParamUserID         = "user_id"
	URLParamClinicID       = "clinic_id"
	URLParamClinicianID    = "clinician_id"
	URLParamPatientID      = "patient_id"
	URLParamPrescriptionID = "prescription_id"
)

const (
	URLQueryParamSearch    = "search"
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamState     = "state"
	URLQueryParamFormat    = "format"
	URLQueryParamBGUnits   = "bgUnits"
	URLQueryParamStartDate = "startDate"
	URLQueryParamEndDate   = "endDate"
)

const (
	FormFieldRole           = "role"
	FormFieldPrescriber     = "prescriber"
	FormFieldClinicID       = "clinicId"
	FormFieldSourceClinicID = "sourceClinicId"
	FormFieldTargetClinicID = "targetClinicId"
	FormFieldFormat         = "format"
)
