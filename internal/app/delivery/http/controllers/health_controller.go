package controllers

import (
	"context"
	"net/http"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type HealthController struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
}

func NewHealthController(logger *zap.Logger, redisRepository contracts.RedisRepository) *HealthController {
	return &HealthController{
		Log:             logger,
		RedisRepository: redisRepository,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := ctrl.RedisRepository.Ping(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRedisPing(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessfully, nil)
}
