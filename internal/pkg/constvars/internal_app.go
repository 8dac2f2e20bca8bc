package constvars

type ContextKey string

const (
	ServiceName      = "mediconnect-service"
	ResourcePayments = "payments"
	RedactedValue    = "[REDACTED]"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
	CONTEXT_INTERNAL_API_KEY_AUTH    ContextKey = "internal_api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "MDCN_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DefaultConsultationType = "Video Consultation"

	// AppointmentDateLayout and AppointmentTimeLayout match the booking wizard's
	// date picker output and its static slot labels ("9:00 AM" ... "4:30 PM").
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "3:04 PM"
)
