package models

import "time"

// ReminderJob is a reminder email waiting for its fire time.
type ReminderJob struct {
	ID               string    `json:"id"`
	AppointmentID    string    `json:"appointmentId"`
	AppointmentAt    time.Time `json:"appointmentAt"`
	FireAt           time.Time `json:"fireAt"`
	Email            string    `json:"email"`
	PatientName      string    `json:"patientName"`
	DoctorName       string    `json:"doctorName"`
	Specialty        string    `json:"specialty"`
	ConsultationLink string    `json:"consultationLink,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
