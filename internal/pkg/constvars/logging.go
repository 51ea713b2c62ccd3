package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOwnerKey          = "owner"
	LoggingDataKey           = "data"
	LoggingStepKey           = "step"
	LoggingFieldKey          = "field"
	LoggingRedisKey          = "redis_key"
	LoggingObjectKey         = "object_key"
	LoggingQueueKey          = "queue"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorMessageKey   = "error_message"
	LoggingCompletionKey     = "completion_percentage"

	LoggingIsClientRequestIDKey = "is_client_request_id"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"

	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
