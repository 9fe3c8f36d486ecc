package constvars

const (
	HomeLoadedSuccessfully              = "home loaded successfully"
	HealthCheckSuccessfully             = "service is healthy"
	SearchUsersSuccessfully             = "search users successfully"
	GetUserSuccessfully                 = "get user successfully"
	SearchClinicsSuccessfully           = "search clinics successfully"
	GetClinicSuccessfully               = "get clinic successfully"
	SearchCliniciansSuccessfully        = "search clinicians successfully"
	GetCliniciansSuccessfully           = "get clinicians successfully"
	GetClinicianSuccessfully            = "get clinician successfully"
	SearchPatientsSuccessfully          = "search patients successfully"
	GetPatientsSuccessfully             = "get patients successfully"
	GetPatientSuccessfully              = "get patient successfully"
	GetPrescriptionsSuccessfully        = "get prescriptions successfully"
	GetPrescriptionSuccessfully         = "get prescription successfully"
	GetReportsSuccessfully              = "get reports successfully"
	ClinicMergeReportSuccessfully       = "clinic merge report generated successfully"
	ClinicianRolesUpdatedSuccessfully   = "clinician roles updated"
	ClinicianRolesUpdateFailedFlashText = "Failed to update clinician roles: %s"
)
