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
	LoggingOperationKey      = "operation"
	LoggingErrorTypeKey      = "error_type"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingUserIDKey         = "user_id"
	LoggingUsernameKey       = "username"
	LoggingRoleKey           = "role"
	LoggingPatientIDKey      = "patient_id"
	LoggingConsultationIDKey = "consultation_id"
	LoggingProtocolIDKey     = "protocol_id"
	LoggingPathwayKey        = "pathway"
	LoggingCIDKey            = "cid"
	LoggingRedisKey          = "redis_key"
	LoggingQueueKey          = "queue"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingCountKey          = "count"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingRetryAfterKey     = "retry_after"
	LoggingStorageDriverKey  = "storage_driver"
)
