package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"numeric":           "must be a number",
	"len":               "must be %s characters long",
	"oneof":             "must be one of [%s]",
	"gt":                "must be greater than %s",
	"gte":               "must be greater than or equal to %s",
	"lte":               "must be less than or equal to %s",
	"url":               "must be a valid URL",
	"uuid":              "must be a valid UUID",
	"datetime":          "must match the format %s",
	"appointment_time":  "must be a time slot like 9:00 AM",
	"phone_number":      "must be a valid phone number",
	"required_with":     "is required when %s is present",
	"required_without":  "is required when %s is not present",
	"excludesall":       "must not contain any of [%s]",
	"gateway_reference": "must be a gateway reference without the '|' character",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"gt":               true,
	"gte":              true,
	"lte":              true,
	"oneof":            true,
	"datetime":         true,
	"required_with":    true,
	"required_without": true,
	"excludesall":      true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientPaymentUnavailable            = "payment is temporarily unavailable, please try again later"
	ErrClientPaymentVerificationFailed     = "payment verification failed, if you were charged please contact support"
	ErrClientBookingNotFound               = "we could not find the booking for this payment, please contact support"
	ErrClientNotificationFailed            = "failed to send the notification email"
	ErrClientReminderTooLate               = "the appointment has already started, a reminder can no longer be scheduled"
	ErrClientInvalidAppointmentSchedule    = "the appointment date or time is invalid"
	ErrClientTooManyRequests               = "too many requests, please try again in a moment"
	ErrClientPaymentFailed                 = "the payment did not go through, please try again"
	ErrClientAmountOutOfRange              = "the amount is too large"
	ErrClientAppointmentNotFound           = "we could not find this appointment"
	ErrClientAppointmentNotUpcoming        = "reminders can only be scheduled for upcoming appointments"
)

// Error messages for developers
const (
	ErrDevInvalidInput                  = "invalid input"
	ErrDevValidationFailed              = "validation failed"
	ErrDevCannotParseJSON               = "cannot parse JSON"
	ErrDevCannotMarshalJSON             = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded        = "server deadline exceeded"
	ErrDevServerProcess                 = "server failed to process the request"
	ErrDevMissingRequestID              = "request id missing from context"
	ErrDevConfigurationMissingKeys      = "missing required configuration keys: %s"
	ErrDevAuthTokenMissing              = "authorization bearer token missing"
	ErrDevAuthTokenInvalidOrExpired     = "authorization token invalid or expired"
	ErrDevAuthIdentityResolution        = "failed to resolve identity from auth provider"
	ErrDevAuthIdentityMissingClaims     = "token is valid but carries no subject or email"
	ErrDevGatewayOrderCreation          = "payment gateway %s rejected order creation with status %d: %s"
	ErrDevGatewayFetchOrder             = "payment gateway %s rejected order lookup with status %d: %s"
	ErrDevGatewayRequest                = "payment gateway %s request failed"
	ErrDevGatewayUnsupported            = "unsupported payment gateway %q"
	ErrDevPaymentSignatureMismatch      = "payment signature does not match order_id|payment_id"
	ErrDevPaymentSignatureMissingSecret = "payment signature secret is not configured"
	ErrDevPaymentSignatureMalformed     = "payment signature input is malformed"
	ErrDevBookingIntentNotFound         = "booking intent for order %s not found in cache or gateway notes"
	ErrDevBookingIntentOwnership        = "booking intent for order %s belongs to another user"
	ErrDevUnverifiedPaymentProof        = "payment proof was not produced by signature verification"
	ErrDevAppointmentPersistence        = "failed to persist appointment for payment %s"
	ErrDevNotificationProvider          = "email provider %s rejected message with status %d: %s"
	ErrDevNotificationProviderMissing   = "email provider credential is not configured"
	ErrDevNotificationSend              = "email provider %s send failed"
	ErrDevNotificationTemplate          = "failed to render %s email template"
	ErrDevReminderTooLate               = "appointment at %s already started"
	ErrDevAppointmentSchedule           = "cannot parse appointment date %q and time %q"
	ErrDevAmountOutOfRange              = "amount %d %s does not fit in int64 minor units"
	ErrDevAppointmentNotFound           = "appointment %s not found"
	ErrDevAppointmentOwnership          = "appointment %s belongs to another user"
	ErrDevAppointmentNotUpcoming        = "appointment %s has status %s"
	ErrDevCheckoutInvalidTransition     = "checkout cannot handle %s while in state %s"
	ErrDevCheckoutOrderMismatch         = "checkout received payment for order %s while awaiting order %s"
	ErrDevCheckoutPaymentFailed         = "gateway reported payment failure %s: %s"
	ErrDevBackendResponse               = "backend responded with status %d"
	ErrDevRateLimited                   = "rate limit for %s exceeded, retry after %d seconds"

	ErrDevDBFailedToInsertData = "failed to insert data into postgres"
	ErrDevDBFailedToFindData   = "failed to find data in postgres"

	ErrDevRedisSetData           = "failed to set data in redis"
	ErrDevRedisGetNoData         = "failed to get data from redis with key %s"
	ErrDevRedisDeleteData        = "failed to delete data from redis"
	ErrDevRedisRightPushToList   = "failed to push data to redis list"
	ErrDevRedisIncrement         = "failed to increment redis counter %s"
	ErrDevRedisSortedSetAdd      = "failed to add member to redis sorted set %s"
	ErrDevRedisSortedSetRange    = "failed to range redis sorted set %s"
	ErrDevRedisSortedSetRemove   = "failed to remove member from redis sorted set %s"
	ErrDevRedisUnlock            = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"
	ErrDevRabbitMQFetchMessage   = "failed to fetch message from rabbitmq queue %s"
	ErrDevRabbitMQAckMessage     = "failed to ack rabbitmq message"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevReadHTTPResponse  = "failed to read HTTP response body"
)

// Machine readable codes returned next to the client message
const (
	ErrCodeConfiguration  = "CONFIGURATION_ERROR"
	ErrCodeAuthentication = "AUTHENTICATION_ERROR"
	ErrCodeGateway        = "GATEWAY_ERROR"
	ErrCodeVerification   = "VERIFICATION_FAILED"
	ErrCodePersistence    = "PERSISTENCE_ERROR"
	ErrCodeNotification   = "NOTIFICATION_ERROR"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeBookingIntent  = "BOOKING_INTENT_ERROR"
	ErrCodeReminder       = "REMINDER_ERROR"
	ErrCodeAppointment    = "APPOINTMENT_ERROR"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeCheckout       = "CHECKOUT_ERROR"
	ErrCodePaymentFailed  = "PAYMENT_FAILED"
)
