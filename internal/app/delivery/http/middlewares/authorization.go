package middlewares

import (
	"net/http"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authorize checks the identity's role against the method and path. It runs
// after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		identity, ok := models.IdentityFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		allowed, err := m.AuthorizationService.Authorize(identity.Role, r.Method, r.URL.Path)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !allowed {
			m.Log.Warn("Middlewares.Authorize denied request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIdentityEmailKey, identity.Email),
				zap.String(constvars.LoggingIdentityRoleKey, identity.Role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrForbidden(nil, identity.Role, r.Method, r.URL.Path))
			return
		}

		next.ServeHTTP(w, r)
	})
}
