package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
)

type AppointmentRepository interface {
	// CreateIfAbsent inserts appointment unless a row with the same payment id
	// exists. It returns the stored row and whether this call created it.
	CreateIfAbsent(ctx context.Context, appointment *models.Appointment) (*models.Appointment, bool, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
}
