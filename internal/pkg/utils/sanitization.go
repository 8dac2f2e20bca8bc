package utils

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateOrderRequest(input *requests.CreateOrder) {
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	if input.Currency == "" {
		input.Currency = constvars.CurrencyINR
	}
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.PatientPhone = NormalizePhoneDigits(input.PatientPhone)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}

func SanitizeVerifyPaymentRequest(input *requests.VerifyPayment) {
	input.OrderID = strings.TrimSpace(input.OrderID)
	input.PaymentID = strings.TrimSpace(input.PaymentID)
	input.Signature = strings.ToLower(strings.TrimSpace(input.Signature))
}

func SanitizeConfirmBookingRequest(input *requests.ConfirmBooking) {
	input.OrderID = strings.TrimSpace(input.OrderID)
	input.PaymentID = strings.TrimSpace(input.PaymentID)
	input.Signature = strings.ToLower(strings.TrimSpace(input.Signature))
	input.ConsultationType = strings.TrimSpace(input.ConsultationType)
}

func SanitizeSendConfirmationEmailRequest(input *requests.SendConfirmationEmail) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.ConsultationType = strings.TrimSpace(input.ConsultationType)
}

func SanitizeSendReminderEmailRequest(input *requests.SendReminderEmail) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.ConsultationLink = strings.TrimSpace(input.ConsultationLink)
}

func SanitizeScheduleAppointmentRequest(input *requests.ScheduleAppointment) {
	input.AppointmentID = strings.TrimSpace(strings.ToLower(input.AppointmentID))
}

// TruncateNoteValue cuts s to max runes. Gateway note values are length limited.
func TruncateNoteValue(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
