package cookiesession

import (
	"net/http"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/app/services/shared/jwtmanager"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type cookieStore struct {
	name   string
	maxAge time.Duration
	secure bool
	tokens *jwtmanager.JWTManager
	Log    *zap.Logger
}

// NewCookieStore returns a store for one named cookie. The payload is a signed
// JWT whose expiry matches the cookie's Max-Age.
func NewCookieStore(name, secret string, maxAge time.Duration, secure bool, logger *zap.Logger) (contracts.SessionStore, error) {
	tokens, err := jwtmanager.NewJWTManager(secret, name, logger)
	if err != nil {
		return nil, err
	}

	return &cookieStore{
		name:   name,
		maxAge: maxAge,
		secure: secure,
		tokens: tokens,
		Log:    logger,
	}, nil
}

func (s *cookieStore) Name() string {
	return s.name
}

// Get never fails: a missing, tampered or expired cookie yields an empty
// session.
func (s *cookieStore) Get(r *http.Request) *models.Session {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return models.NewSession(nil)
	}

	verified, err := s.tokens.VerifyToken(r.Context(), &jwtmanager.VerifyTokenInput{Token: cookie.Value})
	if err != nil || !verified.Valid {
		return models.NewSession(nil)
	}
	return models.NewSession(verified.Data)
}

// Commit writes the session back. An empty session clears the cookie.
func (s *cookieStore) Commit(w http.ResponseWriter, session *models.Session) error {
	if session.IsEmpty() {
		s.Destroy(w)
		return nil
	}

	expiresAt := time.Now().Add(s.maxAge)
	created, err := s.tokens.CreateToken(&jwtmanager.CreateTokenInput{
		Data:      session.Values(),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		s.Log.Error("cookieStore.Commit error signing cookie",
			zap.String(constvars.LoggingCookieNameKey, s.name),
			zap.Error(err),
		)
		return exceptions.ErrSessionSign(err, s.name)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    created.Token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *cookieStore) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// NewSessionStores builds the five cookie stores the app uses.
func NewSessionStores(secret string, maxAge time.Duration, secure bool, logger *zap.Logger) (SessionStores, error) {
	var stores SessionStores
	targets := []struct {
		name  string
		store *contracts.SessionStore
	}{
		{constvars.CookieRecentUsers, &stores.Users},
		{constvars.CookieRecentClinics, &stores.Clinics},
		{constvars.CookieRecentClinicians, &stores.Clinicians},
		{constvars.CookieRecentPatients, &stores.Patients},
		{constvars.CookieFlash, &stores.Flash},
	}

	for _, target := range targets {
		store, err := NewCookieStore(target.name, secret, maxAge, secure, logger)
		if err != nil {
			return SessionStores{}, err
		}
		*target.store = store
	}
	return stores, nil
}
