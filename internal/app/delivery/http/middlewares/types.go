package middlewares

import (
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/services/shared/ratelimiter"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                  *zap.Logger
	AuthorizationService contracts.AuthorizationService
	ReportLimiter        *ratelimiter.ResourceLimiter
	InternalConfig       *config.InternalConfig
	now                  func() time.Time
}

func NewMiddlewares(
	logger *zap.Logger,
	authorizationService contracts.AuthorizationService,
	reportLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:                  logger,
		AuthorizationService: authorizationService,
		ReportLimiter:        reportLimiter,
		InternalConfig:       internalConfig,
		now:                  time.Now,
	}
}
