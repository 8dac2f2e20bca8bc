package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Payment messages
	OrderCreatedSuccess     = "payment order created successfully"
	PaymentVerifiedSuccess  = "payment verified successfully"
	BookingConfirmedSuccess = "booking confirmed successfully"

	// A verified charge that could not be recorded is still a confirmed booking for the patient.
	BookingConfirmedPendingRecord = "booking confirmed, our team will finalize your appointment record shortly"

	// Notification messages
	ConfirmationEmailSentSuccess = "confirmation email sent successfully"
	ReminderEmailSentSuccess     = "reminder email sent successfully"
	ReminderScheduledSuccess     = "reminder scheduled successfully"

	HealthCheckSuccess = "service is healthy"
)
