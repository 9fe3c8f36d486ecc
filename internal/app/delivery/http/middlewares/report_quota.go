package middlewares

import (
	"net/http"
	"orca-service/internal/app/models"
	"orca-service/internal/app/services/shared/ratelimiter"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

// ReportQuota limits report generation per identity within a fixed window.
// A failing redis lets the request through.
func (m *Middlewares) ReportQuota(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.ReportLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		identity, ok := models.IdentityFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		out, err := m.ReportLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			Subject:           identity.Email,
			LimiterGroupName:  constvars.ReportLimiterGroup,
			WindowDurationSec: constvars.ReportLimiterWindowInSec,
			MaxQuota:          m.InternalConfig.Report.MaxPerMinute,
			NowUTC:            m.now().UTC(),
		})
		if err != nil {
			m.Log.Warn("Middlewares.ReportQuota limiter unavailable, allowing request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIdentityEmailKey, identity.Email),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !out.Allowed {
			m.Log.Info("Middlewares.ReportQuota quota exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingIdentityEmailKey, identity.Email),
				zap.Int("retry_after_secs", out.RetryAfterSecs),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReportQuotaExceeded(nil, out.RetryAfterSecs))
			return
		}

		next.ServeHTTP(w, r)
	})
}
