package cookiesession

import (
	"net/http"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/recency"

	"go.uber.org/zap"
)

type sessionService struct {
	users       contracts.SessionStore
	clinics     contracts.SessionStore
	clinicians  contracts.SessionStore
	patients    contracts.SessionStore
	flash       contracts.SessionStore
	recentLimit int
	Log         *zap.Logger
}

type SessionStores struct {
	Users      contracts.SessionStore
	Clinics    contracts.SessionStore
	Clinicians contracts.SessionStore
	Patients   contracts.SessionStore
	Flash      contracts.SessionStore
}

func NewSessionService(stores SessionStores, recentLimit int, logger *zap.Logger) contracts.SessionService {
	if recentLimit <= 0 {
		recentLimit = constvars.DefaultRecentItemsLimit
	}
	return &sessionService{
		users:       stores.Users,
		clinics:     stores.Clinics,
		clinicians:  stores.Clinicians,
		patients:    stores.Patients,
		flash:       stores.Flash,
		recentLimit: recentLimit,
		Log:         logger,
	}
}

func (s *sessionService) RecentUsers(r *http.Request) []models.RecentUser {
	return readRecent[models.RecentUser](s.Log, s.users, r)
}

func (s *sessionService) RecentClinics(r *http.Request) []models.RecentClinic {
	return readRecent[models.RecentClinic](s.Log, s.clinics, r)
}

func (s *sessionService) RecentClinicians(r *http.Request) []models.RecentClinician {
	return readRecent[models.RecentClinician](s.Log, s.clinicians, r)
}

func (s *sessionService) RecentPatients(r *http.Request) []models.RecentPatient {
	return readRecent[models.RecentPatient](s.Log, s.patients, r)
}

func (s *sessionService) PushRecentUser(w http.ResponseWriter, r *http.Request, item models.RecentUser) error {
	return pushRecent(s.Log, s.users, w, r, item, s.recentLimit)
}

func (s *sessionService) PushRecentClinic(w http.ResponseWriter, r *http.Request, item models.RecentClinic) error {
	return pushRecent(s.Log, s.clinics, w, r, item, s.recentLimit)
}

func (s *sessionService) PushRecentClinician(w http.ResponseWriter, r *http.Request, item models.RecentClinician) error {
	return pushRecent(s.Log, s.clinicians, w, r, item, s.recentLimit)
}

func (s *sessionService) PushRecentPatient(w http.ResponseWriter, r *http.Request, item models.RecentPatient) error {
	return pushRecent(s.Log, s.patients, w, r, item, s.recentLimit)
}

func (s *sessionService) FlashError(w http.ResponseWriter, r *http.Request, message string) error {
	session := s.flash.Get(r)
	if err := session.Flash(constvars.SessionKeyFlashError, message); err != nil {
		return err
	}
	return s.flash.Commit(w, session)
}

// PopFlashError returns the pending error message, if any, and clears it.
func (s *sessionService) PopFlashError(w http.ResponseWriter, r *http.Request) (string, error) {
	session := s.flash.Get(r)

	var message string
	found, err := session.PopFlash(constvars.SessionKeyFlashError, &message)
	if !found {
		return "", nil
	}
	if commitErr := s.flash.Commit(w, session); commitErr != nil {
		return "", commitErr
	}
	if err != nil {
		return "", err
	}
	return message, nil
}

func readRecent[T recency.Keyed](log *zap.Logger, store contracts.SessionStore, r *http.Request) []T {
	list := []T{}
	if _, err := store.Get(r).Get(constvars.SessionKeyRecent, &list); err != nil {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		log.Warn("sessionService ignoring unreadable recent list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCookieNameKey, store.Name()),
			zap.Error(err),
		)
		return []T{}
	}
	return list
}

func pushRecent[T recency.Keyed](log *zap.Logger, store contracts.SessionStore, w http.ResponseWriter, r *http.Request, item T, limit int) error {
	session := store.Get(r)
	list := readRecent[T](log, store, r)
	if err := session.Set(constvars.SessionKeyRecent, recency.Push(list, item, limit)); err != nil {
		return err
	}
	return store.Commit(w, session)
}
