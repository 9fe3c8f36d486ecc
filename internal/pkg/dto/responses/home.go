package responses

import "orca-service/internal/app/models"

type Home struct {
	Identity         *models.Identity         `json:"identity"`
	RecentUsers      []models.RecentUser      `json:"recentUsers"`
	RecentClinics    []models.RecentClinic    `json:"recentClinics"`
	RecentClinicians []models.RecentClinician `json:"recentClinicians"`
	RecentPatients   []models.RecentPatient   `json:"recentPatients"`
}
