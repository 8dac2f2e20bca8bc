package constvars

import "time"

const (
	PaymentGatewayRazorpay = "razorpay"
	PaymentGatewaySandbox  = "sandbox"
)

const (
	CurrencyINR = "INR"

	// ReceiptFormat is suffixed with the order creation time in unix milliseconds.
	ReceiptFormat = "order_%d"

	SandboxOrderIDPrefix = "order_sbx_"
	SandboxPublicKey     = "sbx_public_key"
)

// Order note keys. Gateways cap note values, so symptoms are truncated to NoteValueMaxLength.
const (
	NoteUserID          = "user_id"
	NoteUserEmail       = "user_email"
	NoteDoctorName      = "doctor_name"
	NoteSpecialty       = "specialty"
	NoteAppointmentDate = "appointment_date"
	NoteAppointmentTime = "appointment_time"
	NotePatientName     = "patient_name"
	NotePatientPhone    = "patient_phone"
	NoteSymptoms        = "symptoms"

	NoteValueMaxLength = 256
)

const (
	RazorpayOrdersPath = "/orders"
	RazorpayOrderPath  = "/orders/%s"
)

const (
	RedisKeyBookingIntentFormat   = "booking:intent:%s"
	RedisKeyReconciliationList    = "reconciliation:appointments"
	RedisKeyReminderScheduledZSet = "reminders:scheduled"
	RedisKeyReminderWorkerLock    = "reminders:worker:lock"

	RedisKeyConfirmationSentFormat = "confirmation:sent:%s"
	ConfirmationSentMarkerTTL      = 30 * 24 * time.Hour
)
