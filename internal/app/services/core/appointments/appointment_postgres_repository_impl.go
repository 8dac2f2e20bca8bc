package appointments

import (
	"context"
	"database/sql"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/queries"

	"github.com/google/uuid"
)

type appointmentPostgresRepository struct {
	DB *sql.DB
}

func NewAppointmentPostgresRepository(db *sql.DB) contracts.AppointmentRepository {
	return &appointmentPostgresRepository{
		DB: db,
	}
}

// CreateIfAbsent relies on the unique payment_id constraint. A conflicting
// insert returns no row, in which case the existing appointment is loaded.
func (repo *appointmentPostgresRepository) CreateIfAbsent(ctx context.Context, appointment *models.Appointment) (*models.Appointment, bool, error) {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}

	var insertedID string
	err := repo.DB.QueryRowContext(ctx, queries.InsertAppointmentIfAbsent,
		appointment.ID,
		appointment.UserID,
		appointment.DoctorName,
		appointment.Specialty,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.PatientName,
		appointment.PatientPhone,
		appointment.Symptoms,
		appointment.PaymentID,
		appointment.OrderID,
		appointment.Amount,
		appointment.Currency,
		appointment.Status,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	).Scan(&insertedID)
	if err == nil {
		created := *appointment
		created.ID = insertedID
		return &created, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, exceptions.ErrPostgresDBInsertData(err)
	}

	existing, err := repo.FindByPaymentID(ctx, appointment.PaymentID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, exceptions.ErrPostgresDBFindData(sql.ErrNoRows)
	}
	return existing, false, nil
}

func (repo *appointmentPostgresRepository) FindByPaymentID(ctx context.Context, paymentID string) (*models.Appointment, error) {
	return repo.findOne(ctx, queries.GetAppointmentByPaymentID, paymentID)
}

func (repo *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return repo.findOne(ctx, queries.GetAppointmentByID, appointmentID)
}

// findOne returns nil without an error when no row matches.
func (repo *appointmentPostgresRepository) findOne(ctx context.Context, query string, arg string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.DB.QueryRowContext(ctx, query, arg).Scan(
		&appointment.ID,
		&appointment.UserID,
		&appointment.DoctorName,
		&appointment.Specialty,
		&appointment.AppointmentDate,
		&appointment.AppointmentTime,
		&appointment.PatientName,
		&appointment.PatientPhone,
		&appointment.Symptoms,
		&appointment.PaymentID,
		&appointment.OrderID,
		&appointment.Amount,
		&appointment.Currency,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &appointment, nil
}
