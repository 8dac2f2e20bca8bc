package models

type AppointmentStatus string

const (
	AppointmentUpcoming  AppointmentStatus = "upcoming"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is the durable booking record. PaymentID is unique across all rows.
type Appointment struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	DoctorName      string            `json:"doctorName"`
	Specialty       string            `json:"specialty"`
	AppointmentDate string            `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	PatientName     string            `json:"patientName"`
	PatientPhone    string            `json:"patientPhone"`
	Symptoms        string            `json:"symptoms,omitempty"`
	PaymentID       string            `json:"paymentId"`
	OrderID         string            `json:"orderId"`
	Amount          int64             `json:"amount"`
	Currency        string            `json:"currency"`
	Status          AppointmentStatus `json:"status"`
	TimeModel
}

func NewAppointmentFromIntent(intent *BookingIntent, paymentID string) *Appointment {
	appointment := &Appointment{
		UserID:          intent.UserID,
		DoctorName:      intent.DoctorName,
		Specialty:       intent.Specialty,
		AppointmentDate: intent.AppointmentDate,
		AppointmentTime: intent.AppointmentTime,
		PatientName:     intent.PatientName,
		PatientPhone:    intent.PatientPhone,
		Symptoms:        intent.Symptoms,
		PaymentID:       paymentID,
		OrderID:         intent.OrderID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          AppointmentUpcoming,
	}
	appointment.SetCreatedAtUpdatedAt()
	return appointment
}

// ConfirmationResult reports what the confirmation sequence achieved. Recorded is
// false only when the appointment insert failed and needs manual reconciliation.
type ConfirmationResult struct {
	AppointmentID     string `json:"appointmentId,omitempty"`
	Recorded          bool   `json:"recorded"`
	AlreadyRecorded   bool   `json:"alreadyRecorded"`
	ConfirmationSent  bool   `json:"confirmationSent"`
	ReminderScheduled bool   `json:"reminderScheduled"`
}
