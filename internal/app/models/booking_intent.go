package models

import (
	"mediconnect-service/internal/pkg/constvars"
	"time"
)

// BookingIntent is what the patient asked for before paying. It is cached per
// order and mirrored into the gateway order notes.
type BookingIntent struct {
	OrderID          string    `json:"orderId"`
	Receipt          string    `json:"receipt"`
	Gateway          string    `json:"gateway"`
	UserID           string    `json:"userId"`
	UserEmail        string    `json:"userEmail"`
	DoctorName       string    `json:"doctorName"`
	Specialty        string    `json:"specialty"`
	AppointmentDate  string    `json:"appointmentDate"`
	AppointmentTime  string    `json:"appointmentTime"`
	PatientName      string    `json:"patientName"`
	PatientPhone     string    `json:"patientPhone"`
	Symptoms         string    `json:"symptoms,omitempty"`
	ConsultationType string    `json:"consultationType,omitempty"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (b *BookingIntent) Notes() map[string]string {
	notes := map[string]string{
		constvars.NoteUserID:          b.UserID,
		constvars.NoteUserEmail:       b.UserEmail,
		constvars.NoteDoctorName:      b.DoctorName,
		constvars.NoteSpecialty:       b.Specialty,
		constvars.NoteAppointmentDate: b.AppointmentDate,
		constvars.NoteAppointmentTime: b.AppointmentTime,
		constvars.NotePatientName:     b.PatientName,
		constvars.NotePatientPhone:    b.PatientPhone,
	}
	if b.Symptoms != "" {
		notes[constvars.NoteSymptoms] = b.Symptoms
	}
	return notes
}

// BookingIntentFromOrder rebuilds an intent from the notes of a gateway order.
// It returns nil when the notes do not carry a user id.
func BookingIntentFromOrder(order *PaymentOrder) *BookingIntent {
	if order == nil || order.Notes[constvars.NoteUserID] == "" {
		return nil
	}
	notes := order.Notes
	return &BookingIntent{
		OrderID:         order.ID,
		Receipt:         order.Receipt,
		Gateway:         order.Gateway,
		UserID:          notes[constvars.NoteUserID],
		UserEmail:       notes[constvars.NoteUserEmail],
		DoctorName:      notes[constvars.NoteDoctorName],
		Specialty:       notes[constvars.NoteSpecialty],
		AppointmentDate: notes[constvars.NoteAppointmentDate],
		AppointmentTime: notes[constvars.NoteAppointmentTime],
		PatientName:     notes[constvars.NotePatientName],
		PatientPhone:    notes[constvars.NotePatientPhone],
		Symptoms:        notes[constvars.NoteSymptoms],
		Amount:          order.Amount,
		Currency:        order.Currency,
		CreatedAt:       order.CreatedAt,
	}
}

// PaymentOrder is an order as the gateway reports it. Amounts here and on
// BookingIntent are in minor units.
type PaymentOrder struct {
	ID        string            `json:"id"`
	Gateway   string            `json:"gateway"`
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Receipt   string            `json:"receipt"`
	Status    string            `json:"status"`
	Notes     map[string]string `json:"notes"`
	CreatedAt time.Time         `json:"createdAt"`
}
