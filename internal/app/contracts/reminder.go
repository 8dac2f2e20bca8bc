package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"time"
)

type ReminderUsecase interface {
	// ScheduleForAppointment schedules the reminder for one of the caller's
	// own stored appointments.
	ScheduleForAppointment(ctx context.Context, identity models.Identity, request *requests.ScheduleAppointment) (*responses.ScheduleReminder, error)
	ScheduleReminder(ctx context.Context, request *requests.ScheduleReminder) (*responses.ScheduleReminder, error)
}

// ReminderStore holds reminder jobs ordered by fire time.
type ReminderStore interface {
	Add(ctx context.Context, job *models.ReminderJob) error
	// ClaimDue removes and returns up to limit jobs due at or before now.
	// A job is returned to at most one caller.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]models.ReminderJob, error)
}
