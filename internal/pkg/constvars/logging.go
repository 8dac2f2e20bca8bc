package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
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
	LoggingErrorBodyKey      = "error_body"
)

const (
	LoggingUserIDKey          = "user_id"
	LoggingOrderIDKey         = "order_id"
	LoggingPaymentIDKey       = "payment_id"
	LoggingAppointmentIDKey   = "appointment_id"
	LoggingAmountKey          = "amount"
	LoggingMinorAmountKey     = "minor_amount"
	LoggingCurrencyKey        = "currency"
	LoggingGatewayKey         = "gateway"
	LoggingReceiptKey         = "receipt"
	LoggingEmailProviderKey   = "email_provider"
	LoggingEmailSubjectKey    = "email_subject"
	LoggingReminderJobIDKey   = "reminder_job_id"
	LoggingReminderTimeKey    = "reminder_time"
	LoggingFailedCountKey     = "failed_count"
	LoggingQueueNameKey       = "queue_name"
	LoggingFetchedCountKey    = "fetched_count"
	LoggingClaimedCountKey    = "claimed_count"
	LoggingCheckoutStateKey   = "checkout_state"
	LoggingPersistedKey       = "persisted"
	LoggingAlreadyRecordedKey = "already_recorded"
)

const (
	LoggingRedisKey             = "redis_key"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockValueKey         = "lock_value"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
)
