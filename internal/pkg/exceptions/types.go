package exceptions

import (
	"fmt"
	"orca-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customErr.Fields = ValidationErrorsByField(err)
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrIdentityIncomplete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthIdentityIncomplete)
	}
	ErrForbidden = func(err error, role, method, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevAuthForbidden, role, method, path))
	}
	ErrAuthorizationEngine = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthorizationEngine)
	}

	// Session cookies
	ErrSessionSign = func(err error, cookieName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSessionSign, cookieName))
	}
	ErrSessionEncode = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSessionEncode, key))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevReadBody)
	}

	// Tidepool API
	ErrTidepoolServerLogin = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevTidepoolServerLogin)
	}
	ErrTidepoolThrottled = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevTidepoolThrottled)
	}
	ErrTidepoolGetResource = func(err error, resource string, upstreamStatus int) *CustomError {
		return BuildNewCustomError(err, UpstreamStatusToLocal(upstreamStatus), upstreamClientMessage(err, upstreamStatus), fmt.Sprintf(constvars.ErrDevTidepoolGetResource, resource))
	}
	ErrTidepoolUpdateResource = func(err error, resource string, upstreamStatus int) *CustomError {
		return BuildNewCustomError(err, UpstreamStatusToLocal(upstreamStatus), upstreamClientMessage(err, upstreamStatus), fmt.Sprintf(constvars.ErrDevTidepoolUpdateResource, resource))
	}
	ErrTidepoolNotFound = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientResourceNotFound, resource), fmt.Sprintf(constvars.ErrDevTidepoolResourceNotFound, resource))
	}
	ErrTidepoolDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevTidepoolDecodeResponse, resource))
	}
	ErrTidepoolInvalidResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevTidepoolInvalidResponse, resource))
	}
	ErrUnsupportedExportContentType = func(err error, contentType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientExportFailed, fmt.Sprintf(constvars.ErrDevUnsupportedExportContentType, contentType))
	}

	// Reports
	ErrReportBuild = func(err error, reportType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientReportFailed, fmt.Sprintf(constvars.ErrDevReportBuild, reportType))
	}
	ErrReportQuotaExceeded = func(err error, retryAfterSecs int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, fmt.Sprintf(constvars.ErrClientReportQuotaExceeded, retryAfterSecs), constvars.ErrDevReportQuotaExceeded)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisPing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisPing)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPresignObject, bucketName))
	}
	ErrMinioListObjects = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToListObjects, bucketName))
	}
	ErrMinioRemoveObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToRemoveObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)

// UpstreamStatusToLocal maps a Tidepool API status to the status this service
// answers with. Credential problems between this service and the API are not
// something the browser user can fix, so they surface as 500.
func UpstreamStatusToLocal(upstreamStatus int) int {
	switch {
	case upstreamStatus == constvars.StatusNotFound:
		return constvars.StatusNotFound
	case upstreamStatus == constvars.StatusUnauthorized, upstreamStatus == constvars.StatusForbidden:
		return constvars.StatusInternalServerError
	case upstreamStatus >= 400 && upstreamStatus < 500:
		return constvars.StatusBadRequest
	default:
		return constvars.StatusInternalServerError
	}
}

func upstreamClientMessage(err error, upstreamStatus int) string {
	if err == nil || upstreamStatus < 400 || upstreamStatus >= 500 ||
		upstreamStatus == constvars.StatusUnauthorized || upstreamStatus == constvars.StatusForbidden {
		return constvars.ErrClientUpstreamUnavailable
	}
	return fmt.Sprintf(constvars.ErrClientUpstreamRejected, err.Error())
}
