package controllers

import (
	"context"
	"errors"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

// requestContext keeps the request id and identity set by the middlewares and
// bounds the whole handler by the configured timeout.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func buildUsecasePlainTextErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildPlainTextErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildPlainTextErrorResponse(log, w, err)
}

// popToast consumes the pending flash error. A broken flash cookie is logged
// and dropped, the page still renders.
func popToast(log *zap.Logger, sessionService contracts.SessionService, w http.ResponseWriter, r *http.Request) *responses.Toast {
	message, err := sessionService.PopFlashError(w, r)
	if err != nil {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		log.Warn("controllers.popToast error reading flash cookie",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	if message == "" {
		return nil
	}
	return &responses.Toast{Type: responses.ToastTypeError, Message: message}
}

func logRecentPushError(log *zap.Logger, r *http.Request, caller string, err error) {
	if err == nil {
		return
	}
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	log.Warn(caller+" error saving recent item",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
}
