package constvars

const (
	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
)

const (
	EmailDefaultSender              = "MediConnect <onboarding@resend.dev>"
	EmailConfirmationSubjectMessage = "Appointment Confirmation - MediConnect"
	EmailReminderSubjectFormat      = "Your Consultation Starts in %d Minutes - MediConnect"
	EmailTemplateConfirmation       = "confirmation"
	EmailTemplateReminder           = "reminder"
	EmailSupportAddress             = "support@mediconnect.com"
	EmailAppointmentsPathFormat     = "%s/appointments"
	EmailConsultationLinkPathFormat = "%s/consultation/%s"
)
