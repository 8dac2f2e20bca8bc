package requests

import "time"

// ScheduleAppointment is the caller facing reminder request. Everything else
// is read from the stored appointment and the caller's identity.
type ScheduleAppointment struct {
	AppointmentID string `json:"appointmentId" validate:"required,uuid"`
}

type ScheduleReminder struct {
	AppointmentID       string    `validate:"required,max=64"`
	AppointmentDateTime time.Time `validate:"required"`
	Email               string    `validate:"required,email"`
	PatientName         string    `validate:"required,max=120"`
	DoctorName          string    `validate:"required,max=120"`
	Specialty           string    `validate:"required,max=120"`
}
