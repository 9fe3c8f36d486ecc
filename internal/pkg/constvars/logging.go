package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingURLKey            = "url"
	LoggingSearchKey         = "search"
	LoggingCountKey          = "count"
	LoggingPageKey           = "page"
	LoggingPageSizeKey       = "page_size"
	LoggingIdentityEmailKey  = "identity_email"
	LoggingIdentityRoleKey   = "identity_role"
	LoggingUserIDKey         = "user_id"
	LoggingClinicIDKey       = "clinic_id"
	LoggingSourceClinicIDKey = "source_clinic_id"
	LoggingTargetClinicIDKey = "target_clinic_id"
	LoggingClinicianIDKey    = "clinician_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingRolesKey          = "roles"
	LoggingCookieNameKey     = "cookie_name"
	LoggingRedirectKey       = "redirect_to"
	LoggingReportIDKey       = "report_id"
	LoggingReportTypeKey     = "report_type"
	LoggingObjectNameKey     = "object_name"
	LoggingBucketNameKey     = "bucket_name"
	LoggingQueueNameKey      = "queue_name"
	LoggingAuditActionKey    = "audit_action"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockStoredKey     = "lock_stored_value"
	LoggingLockExpectedKey   = "lock_expected_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingFormatKey         = "format"
	LoggingRemovedCountKey   = "removed_count"
	LoggingObjectSizeKey     = "object_size"
	LoggingFileNameKey       = "file_name"
	LoggingBytesWrittenKey   = "bytes_written"
	LoggingUpstreamStatusKey = "upstream_status"
	LoggingResourceKey       = "resource"
)
