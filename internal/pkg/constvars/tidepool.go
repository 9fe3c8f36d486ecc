package constvars

const (
	TidepoolHeaderSessionToken = "X-Tidepool-Session-Token"
	TidepoolHeaderServerName   = "X-Tidepool-Server-Name"
	TidepoolHeaderServerSecret = "X-Tidepool-Server-Secret"
)

const (
	TidepoolPathServerLogin          = "/auth/serverlogin"
	TidepoolPathUser                 = "/auth/user/%s"
	TidepoolPathProfile              = "/metadata/%s/profile"
	TidepoolPathClinics              = "/v1/clinics"
	TidepoolPathClinic               = "/v1/clinics/%s"
	TidepoolPathClinicByShareCode    = "/v1/clinics/share_code/%s"
	TidepoolPathClinicians           = "/v1/clinics/%s/clinicians"
	TidepoolPathClinician            = "/v1/clinics/%s/clinicians/%s"
	TidepoolPathPatients             = "/v1/clinics/%s/patients"
	TidepoolPathPatient              = "/v1/clinics/%s/patients/%s"
	TidepoolPathClinicianClinics     = "/v1/clinicians/%s/clinics"
	TidepoolPathPatientClinics       = "/v1/patients/%s/clinics"
	TidepoolPathClinicPrescriptions  = "/v1/clinics/%s/prescriptions"
	TidepoolPathClinicPrescription   = "/v1/clinics/%s/prescriptions/%s"
	TidepoolPathPatientPrescriptions = "/v1/patients/%s/prescriptions"
	TidepoolPathExport               = "/export/%s"
)

// Resource names used in error and log messages.
const (
	TidepoolResourceServerToken  = "server token"
	TidepoolResourceUser         = "user"
	TidepoolResourceProfile      = "profile"
	TidepoolResourceClinic       = "clinic"
	TidepoolResourceClinician    = "clinician"
	TidepoolResourcePatient      = "patient"
	TidepoolResourcePrescription = "prescription"
	TidepoolResourceExport       = "data export"
)

const (
	ClinicianRoleAdmin      = "CLINIC_ADMIN"
	ClinicianRoleMember     = "CLINIC_MEMBER"
	ClinicianRolePrescriber = "PRESCRIBER"
)

const (
	UserRoleClinic     = "clinic"
	UserRoleClinician  = "clinician"
	UserRoleBrokered   = "brokered"
	UserKindPatient    = "patient"
	UserKindClinician  = "clinician"
	UserKindCustodial  = "custodial"
	UserKindUnverified = "unverified"
)

const (
	BGUnitsMgdl = "mg/dL"
	BGUnitsMmol = "mmol/L"

	// mg/dL per mmol/L of glucose.
	BGConversionFactor = 18.01559
)

const (
	ExportFormatJSON = "json"
	ExportFormatXLSX = "xlsx"
)

const (
	PrescriptionStateDraft     = "draft"
	PrescriptionStatePending   = "pending"
	PrescriptionStateSubmitted = "submitted"
	PrescriptionStateClaimed   = "claimed"
	PrescriptionStateExpired   = "expired"
	PrescriptionStateActive    = "active"
	PrescriptionStateInactive  = "inactive"
)

const (
	TidepoolServerTokenRedisKey = "orca:tidepool:server_token"
	TidepoolDefaultTokenTTL     = 50
	TidepoolErrorBodyLimit      = 64 << 10
)

const (
	ExportFilePrefix = "tidepool-export"
)
