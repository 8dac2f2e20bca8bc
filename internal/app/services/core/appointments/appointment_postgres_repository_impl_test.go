package appointments

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appointmentColumns = []string{
	"id", "user_id", "doctor_name", "specialty", "appointment_date", "appointment_time",
	"patient_name", "patient_phone", "symptoms", "payment_id", "order_id", "amount",
	"currency", "status", "created_at", "updated_at",
}

func sampleAppointment() *models.Appointment {
	return models.NewAppointmentFromIntent(&models.BookingIntent{
		OrderID:         "order_1",
		UserID:          "user-1",
		DoctorName:      "Dr. Sarah Williams",
		Specialty:       "General Medicine",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "10:30 AM",
		PatientName:     "Asha Rao",
		PatientPhone:    "919876543210",
		Amount:          49900,
		Currency:        "INR",
	}, "pay_1")
}

func TestAppointmentPostgresRepository_CreateIfAbsent_Inserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertAppointmentIfAbsent)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("8f3c7b52-1d1e-4c55-9a0b-2f6f6b0f9a11"))

	repo := NewAppointmentPostgresRepository(db)
	stored, created, err := repo.CreateIfAbsent(context.Background(), sampleAppointment())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "8f3c7b52-1d1e-4c55-9a0b-2f6f6b0f9a11", stored.ID)
	assert.Equal(t, "pay_1", stored.PaymentID)
	assert.Equal(t, models.AppointmentUpcoming, stored.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentPostgresRepository_CreateIfAbsent_ReturnsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertAppointmentIfAbsent)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetAppointmentByPaymentID)).
		WithArgs("pay_1").
		WillReturnRows(sqlmock.NewRows(appointmentColumns).AddRow(
			"existing-id", "user-1", "Dr. Sarah Williams", "General Medicine", "2026-03-10", "10:30 AM",
			"Asha Rao", "919876543210", "", "pay_1", "order_1", int64(49900),
			"INR", "upcoming", now, now,
		))

	repo := NewAppointmentPostgresRepository(db)
	stored, created, err := repo.CreateIfAbsent(context.Background(), sampleAppointment())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "existing-id", stored.ID)
	assert.Equal(t, int64(49900), stored.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentPostgresRepository_CreateIfAbsent_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertAppointmentIfAbsent)).
		WillReturnError(errors.New("connection reset by peer"))

	repo := NewAppointmentPostgresRepository(db)
	stored, created, err := repo.CreateIfAbsent(context.Background(), sampleAppointment())
	assert.Error(t, err)
	assert.False(t, created)
	assert.Nil(t, stored)
}

func TestAppointmentPostgresRepository_FindByPaymentID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queries.GetAppointmentByPaymentID)).
		WithArgs("pay_missing").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	repo := NewAppointmentPostgresRepository(db)
	stored, err := repo.FindByPaymentID(context.Background(), "pay_missing")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAppointmentPostgresRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetAppointmentByID)).
		WithArgs("8f3c7b52-1d1e-4c55-9a0b-2f6f6b0f9a11").
		WillReturnRows(sqlmock.NewRows(appointmentColumns).AddRow(
			"8f3c7b52-1d1e-4c55-9a0b-2f6f6b0f9a11", "user-1", "Dr. Sarah Williams", "General Medicine", "2026-03-10", "10:30 AM",
			"Asha Rao", "919876543210", "", "pay_1", "order_1", int64(49900),
			"INR", "upcoming", now, now,
		))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetAppointmentByID)).
		WithArgs("0d7c3a55-2f1b-4bb8-8f0e-6a3c1f4b9e77").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	repo := NewAppointmentPostgresRepository(db)
	stored, err := repo.FindByID(context.Background(), "8f3c7b52-1d1e-4c55-9a0b-2f6f6b0f9a11")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, models.AppointmentUpcoming, stored.Status)

	missing, err := repo.FindByID(context.Background(), "0d7c3a55-2f1b-4bb8-8f0e-6a3c1f4b9e77")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
