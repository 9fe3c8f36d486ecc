package middlewares

import (
	"errors"
	"net/http"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const devIdentitySubject = "orca-developer"

// assertionClaims are the claims the identity-aware proxy puts in its
// assertion. The proxy has already verified the signature.
type assertionClaims struct {
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Groups []string `json:"groups"`
	jwt.RegisteredClaims
}

// Authenticate resolves the staff identity from the proxy assertion header
// and stores it, with its role, on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		identity, err := m.identityFromRequest(r)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		identity.Role = m.AuthorizationService.RoleFor(identity)

		m.Log.Debug("Middlewares.Authenticate identity resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityEmailKey, identity.Email),
			zap.String(constvars.LoggingIdentityRoleKey, identity.Role),
		)

		ctx := models.ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) identityFromRequest(r *http.Request) (*models.Identity, error) {
	now := m.now()
	authConfig := m.InternalConfig.Auth

	if authConfig.DevBypass {
		return &models.Identity{
			Subject:   devIdentitySubject,
			Email:     authConfig.DevEmail,
			Name:      "Developer",
			ExpiresAt: now.Add(24 * time.Hour),
			DevBypass: true,
		}, nil
	}

	token := strings.TrimSpace(r.Header.Get(authConfig.AssertionHeader))
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims := new(assertionClaims)
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(now) {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("assertion expired"))
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil, exceptions.ErrIdentityIncomplete(nil)
	}

	return &models.Identity{
		Subject:   claims.Subject,
		Email:     email,
		Name:      claims.Name,
		Groups:    claims.Groups,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
