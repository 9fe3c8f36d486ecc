package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"required_with":  "is required when %s is present",
	"email":          "must be a valid email",
	"alphanum":       "must contain only alphanumeric characters",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"len":            "must be %s characters long",
	"oneof":          "must be one of [%s]",
	"nefield":        "must be different from %s",
	"gte":            "must be greater than or equal to %s",
	"lte":            "must be less than or equal to %s",
	"datetime":       "must be a date formatted as %s",
	"bg_units":       "must be one of [mg/dL, mmol/L]",
	"share_code":     "must be a clinic share code like ABCD-1234-EFGH",
	"object_id":      "must be a 24 character hexadecimal id",
	"tidepool_id":    "must be a valid Tidepool user id",
	"gtefield":       "must be on or after %s",
	"export_format":  "must be one of [json, xlsx]",
	"clinician_role": "must be one of [CLINIC_ADMIN, CLINIC_MEMBER]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"required_with": true,
	"min":           true,
	"max":           true,
	"len":           true,
	"oneof":         true,
	"nefield":       true,
	"gte":           true,
	"lte":           true,
	"datetime":      true,
	"gtefield":      true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientUpstreamUnavailable           = "the Tidepool API could not complete the request"
	ErrClientUpstreamRejected              = "the Tidepool API rejected the request: %s"
	ErrClientExportFailed                  = "data export failed"
	ErrClientReportFailed                  = "report generation failed"
	ErrClientReportQuotaExceeded           = "too many reports requested, try again in %d seconds"
	ErrClientValidationFailed              = "please correct the highlighted fields"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "validation failed"
	ErrDevURLParamIDValidationFailed   = "url param %s validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON"
	ErrDevCannotParseForm              = "cannot parse form body"
	ErrDevCannotMarshalJSON            = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevServerProcess                = "server failed to process the request"
	ErrDevAuthTokenMissing             = "upstream assertion header missing"
	ErrDevAuthTokenInvalidOrExpired    = "upstream assertion invalid or expired"
	ErrDevAuthIdentityIncomplete       = "upstream assertion lacks an email claim"
	ErrDevAuthForbidden                = "role %s is not allowed to %s %s"
	ErrDevAuthorizationEngine          = "authorization engine failed"
	ErrDevCreateHTTPRequest            = "failed to create HTTP request"
	ErrDevSendHTTPRequest              = "failed to send HTTP request"
	ErrDevReadBody                     = "failed to read response body"
	ErrDevTidepoolGetResource          = "failed to get %s from the Tidepool API"
	ErrDevTidepoolUpdateResource       = "failed to update %s through the Tidepool API"
	ErrDevTidepoolResourceNotFound     = "%s not found in the Tidepool API"
	ErrDevTidepoolDecodeResponse       = "failed to decode %s response from the Tidepool API"
	ErrDevTidepoolInvalidResponse      = "%s response from the Tidepool API failed schema validation"
	ErrDevTidepoolServerLogin          = "Tidepool server login failed"
	ErrDevTidepoolThrottled            = "outbound Tidepool request throttle wait failed"
	ErrDevSessionSign                  = "failed to sign session cookie %s"
	ErrDevSessionEncode                = "failed to encode session value %s"
	ErrDevReportBuild                  = "failed to build %s report"
	ErrDevReportSameClinic             = "merge source and target are the same clinic"
	ErrDevReportQuotaExceeded          = "report quota exceeded for identity"
	ErrDevRedisGetNoData               = "no data found in redis for key %s"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data into redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevRedisUnlock                  = "failed to release redis lock"
	ErrDevRedisPing                    = "redis did not answer PING"
	ErrDevMinioFailedToCreateObject    = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject   = "failed to presign object in bucket %s"
	ErrDevMinioFailedToListObjects     = "failed to list objects in bucket %s"
	ErrDevMinioFailedToRemoveObject    = "failed to remove object from bucket %s"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevUnsupportedExportContentType = "unexpected export content type %s"
)

const (
	ResponseUnknown = "unknown"
)
