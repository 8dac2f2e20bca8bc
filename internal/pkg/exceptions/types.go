package exceptions

import (
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"strings"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, FormatFirstValidationError(err), fmt.Sprintf("%s: %s", constvars.ErrDevValidationFailed, FormatAllValidationErrors(err))).WithCode(constvars.ErrCodeValidation)
		customErr.cause = err
		return customErr
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON).WithCode(constvars.ErrCodeValidation)
	}
	ErrAmountOutOfRange = func(amount int64, currency string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientAmountOutOfRange, fmt.Sprintf(constvars.ErrDevAmountOutOfRange, amount, currency)).WithCode(constvars.ErrCodeValidation)
	}
	ErrInvalidAppointmentSchedule = func(err error, date, timeLabel string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidAppointmentSchedule, fmt.Sprintf(constvars.ErrDevAppointmentSchedule, date, timeLabel)).WithCode(constvars.ErrCodeValidation)
	}

	// Configuration
	ErrConfiguration = func(missingKeys []string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevConfigurationMissingKeys, strings.Join(missingKeys, ", "))).WithCode(constvars.ErrCodeConfiguration)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing).WithCode(constvars.ErrCodeAuthentication)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired).WithCode(constvars.ErrCodeAuthentication)
	}
	ErrIdentityResolution = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthIdentityResolution).WithCode(constvars.ErrCodeAuthentication)
	}
	ErrIdentityMissingClaims = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthIdentityMissingClaims).WithCode(constvars.ErrCodeAuthentication)
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, "INVALID_API_KEY").WithCode(constvars.ErrCodeAuthentication)
	}

	// Payment gateway
	ErrGatewayOrderCreation = func(gateway string, statusCode int, body string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientPaymentUnavailable, fmt.Sprintf(constvars.ErrDevGatewayOrderCreation, gateway, statusCode, body)).WithCode(constvars.ErrCodeGateway).WithDetails(body)
	}
	ErrGatewayFetchOrder = func(gateway string, statusCode int, body string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientPaymentUnavailable, fmt.Sprintf(constvars.ErrDevGatewayFetchOrder, gateway, statusCode, body)).WithCode(constvars.ErrCodeGateway).WithDetails(body)
	}
	ErrGatewayRequest = func(err error, gateway string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentUnavailable, fmt.Sprintf(constvars.ErrDevGatewayRequest, gateway)).WithCode(constvars.ErrCodeGateway)
	}
	ErrGatewayUnsupported = func(gateway string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevGatewayUnsupported, gateway)).WithCode(constvars.ErrCodeConfiguration)
	}

	// Signature verification
	ErrPaymentVerificationFailed = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPaymentVerificationFailed, devMessage).WithCode(constvars.ErrCodeVerification)
	}

	// Booking
	ErrBookingIntentNotFound = func(err error, orderID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientBookingNotFound, fmt.Sprintf(constvars.ErrDevBookingIntentNotFound, orderID)).WithCode(constvars.ErrCodeBookingIntent)
	}
	ErrBookingIntentOwnership = func(orderID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevBookingIntentOwnership, orderID)).WithCode(constvars.ErrCodeBookingIntent)
	}
	ErrUnverifiedPaymentProof = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientPaymentVerificationFailed, constvars.ErrDevUnverifiedPaymentProof).WithCode(constvars.ErrCodeVerification)
	}
	ErrAppointmentPersistence = func(err error, paymentID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.BookingConfirmedPendingRecord, fmt.Sprintf(constvars.ErrDevAppointmentPersistence, paymentID)).WithCode(constvars.ErrCodePersistence)
	}

	// Notification
	ErrNotificationFailed = func(provider string, statusCode int, body string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientNotificationFailed, fmt.Sprintf(constvars.ErrDevNotificationProvider, provider, statusCode, body)).WithCode(constvars.ErrCodeNotification)
	}
	ErrNotificationSend = func(err error, provider string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientNotificationFailed, fmt.Sprintf(constvars.ErrDevNotificationSend, provider)).WithCode(constvars.ErrCodeNotification)
	}
	ErrNotificationProviderNotConfigured = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevNotificationProviderMissing).WithCode(constvars.ErrCodeConfiguration)
	}
	ErrNotificationTemplate = func(err error, template string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientNotificationFailed, fmt.Sprintf(constvars.ErrDevNotificationTemplate, template)).WithCode(constvars.ErrCodeNotification)
	}

	// Appointment
	ErrAppointmentNotFound = func(appointmentID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, fmt.Sprintf(constvars.ErrDevAppointmentNotFound, appointmentID)).WithCode(constvars.ErrCodeAppointment)
	}
	ErrAppointmentOwnership = func(appointmentID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevAppointmentOwnership, appointmentID)).WithCode(constvars.ErrCodeAppointment)
	}

	// Reminder
	ErrReminderTooLate = func(appointmentAt string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientReminderTooLate, fmt.Sprintf(constvars.ErrDevReminderTooLate, appointmentAt)).WithCode(constvars.ErrCodeReminder)
	}
	ErrAppointmentNotUpcoming = func(appointmentID, status string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientAppointmentNotUpcoming, fmt.Sprintf(constvars.ErrDevAppointmentNotUpcoming, appointmentID, status)).WithCode(constvars.ErrCodeReminder)
	}

	// Rate limit
	ErrTooManyRequests = func(resource string, retryAfterSecs int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRateLimited, resource, retryAfterSecs)).WithCode(constvars.ErrCodeRateLimited)
	}

	// Postgres DB
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindData)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisPushToList = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisRightPushToList)
	}
	ErrRedisIncrement = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisIncrement, redisKey))
	}
	ErrRedisSortedSetAdd = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisSortedSetAdd, redisKey))
	}
	ErrRedisSortedSetRange = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisSortedSetRange, redisKey))
	}
	ErrRedisSortedSetRemove = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisSortedSetRemove, redisKey))
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrRabbitMQFetchMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQFetchMessage, queueName))
	}
	ErrRabbitMQAckMessage = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQAckMessage)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadHTTPResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadHTTPResponse)
	}

	// Checkout
	ErrCheckoutInvalidTransition = func(event, state string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCheckoutInvalidTransition, event, state)).WithCode(constvars.ErrCodeCheckout)
	}
	ErrCheckoutOrderMismatch = func(expected, got string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientPaymentVerificationFailed, fmt.Sprintf(constvars.ErrDevCheckoutOrderMismatch, got, expected)).WithCode(constvars.ErrCodeVerification)
	}
	ErrCheckoutPaymentFailed = func(reasonCode, description string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusPaymentRequired, constvars.ErrClientPaymentFailed, fmt.Sprintf(constvars.ErrDevCheckoutPaymentFailed, reasonCode, description)).WithCode(constvars.ErrCodePaymentFailed)
	}
	// ErrBackendResponse rebuilds a CustomError from an error envelope returned by this service.
	ErrBackendResponse = func(statusCode int, clientMessage, code, devMessage, details string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientSomethingWrongWithApplication
		}
		if devMessage == "" {
			devMessage = fmt.Sprintf(constvars.ErrDevBackendResponse, statusCode)
		}
		return BuildNewCustomError(nil, statusCode, clientMessage, devMessage).WithCode(code).WithDetails(details)
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
