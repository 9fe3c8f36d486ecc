package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
)

const (
	REQUEST_ID_PREFIX = "ORCA_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPage         = 1
	AppDefaultPageSize     = 25
	AppMaxPageSize         = 100
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Roles granted by the authorization middleware.
const (
	OrcaRoleViewer = "viewer"
	OrcaRoleEditor = "editor"
)

const (
	ResourceHome          = "home"
	ResourceUsers         = "users"
	ResourceClinics       = "clinics"
	ResourceClinicians    = "clinicians"
	ResourcePatients      = "patients"
	ResourcePrescriptions = "prescriptions"
	ResourceReports       = "reports"
	ResourceExports       = "exports"
)

// Paths of this service's own pages, used for redirects and links.
const (
	AppPathUser               = "/users/%s"
	AppPathClinic             = "/clinics/%s"
	AppPathClinicClinicians   = "/clinics/%s/clinicians"
	AppPathClinicClinician    = "/clinics/%s/clinicians/%s"
	AppPathClinicPatients     = "/clinics/%s/patients"
	AppPathClinicPatient      = "/clinics/%s/patients/%s"
	AppPathClinicPrescription = "/clinics/%s/prescriptions/%s"
)

const (
	ReportObjectPrefix       = "reports/"
	ReportSweeperLockKey     = "orca:reports:sweeper:leader"
	ReportSweeperLockTTL     = 2
	ReportLimiterGroup       = "REPORTS"
	ReportLimiterWindowInSec = 60
)

const (
	ReportMergeReasonMrn       = "same MRN"
	ReportMergeReasonEmail     = "same email"
	ReportMergeReasonNameBirth = "same name and birth date"
)
