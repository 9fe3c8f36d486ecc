package constvars

const (
	RegexEmail            = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD     = `^\d{4}-\d{2}-\d{2}$`
	RegexTidepoolUserID   = `^([a-f0-9]{10}|[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})$`
	RegexObjectID         = `^[a-f0-9]{24}$`
	RegexClinicShareCode  = `^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`
	RegexPrescriptionCode = `^[A-Z0-9]{6}$`
)
