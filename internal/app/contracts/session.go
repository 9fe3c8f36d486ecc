package contracts

import (
	"net/http"
	"orca-service/internal/app/models"
)

// SessionStore reads and writes one signed cookie.
type SessionStore interface {
	Name() string
	Get(r *http.Request) *models.Session
	Commit(w http.ResponseWriter, session *models.Session) error
	Destroy(w http.ResponseWriter)
}

// SessionService exposes the recently viewed lists and the flash message
// carried across redirects.
type SessionService interface {
	RecentUsers(r *http.Request) []models.RecentUser
	RecentClinics(r *http.Request) []models.RecentClinic
	RecentClinicians(r *http.Request) []models.RecentClinician
	RecentPatients(r *http.Request) []models.RecentPatient
	PushRecentUser(w http.ResponseWriter, r *http.Request, item models.RecentUser) error
	PushRecentClinic(w http.ResponseWriter, r *http.Request, item models.RecentClinic) error
	PushRecentClinician(w http.ResponseWriter, r *http.Request, item models.RecentClinician) error
	PushRecentPatient(w http.ResponseWriter, r *http.Request, item models.RecentPatient) error
	FlashError(w http.ResponseWriter, r *http.Request, message string) error
	PopFlashError(w http.ResponseWriter, r *http.Request) (string, error)
}
