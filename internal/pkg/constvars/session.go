package constvars

const (
	CookieRecentUsers      = "orca_recent_users"
	CookieRecentClinics    = "orca_recent_clinics"
	CookieRecentClinicians = "orca_recent_clinicians"
	CookieRecentPatients   = "orca_recent_patients"
	CookieFlash            = "orca_flash"
)

const (
	SessionKeyRecent     = "recent"
	SessionKeyFlashError = "error"
	SessionFlashPrefix   = "__flash_"
	SessionClaimData     = "data"
	SessionHKDFInfo      = "orca-cookie:"
)

const (
	DefaultRecentItemsLimit   = 10
	DefaultSessionMaxAgeInDay = 30
)
