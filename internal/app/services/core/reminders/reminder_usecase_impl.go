package reminders

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reminderUsecase struct {
	ReminderStore         contracts.ReminderStore
	AppointmentRepository contracts.AppointmentRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

var (
	reminderUsecaseInstance contracts.ReminderUsecase
	onceReminderUsecase     sync.Once
)

func NewReminderUsecase(
	reminderStore contracts.ReminderStore,
	appointmentRepository contracts.AppointmentRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReminderUsecase {
	onceReminderUsecase.Do(func() {
		instance := &reminderUsecase{
			ReminderStore:         reminderStore,
			AppointmentRepository: appointmentRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
			now:                   time.Now,
		}
		reminderUsecaseInstance = instance
	})
	return reminderUsecaseInstance
}

// ScheduleForAppointment loads the appointment and schedules its reminder for
// the owner. Recipient, schedule and link never come from the request body.
func (uc *reminderUsecase) ScheduleForAppointment(ctx context.Context, identity models.Identity, request *requests.ScheduleAppointment) (*responses.ScheduleReminder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reminderUsecase.ScheduleForAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		uc.Log.Error("reminderUsecase.ScheduleForAppointment error loading appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(request.AppointmentID)
	}
	if appointment.UserID != identity.UserID {
		utils.LogSecurityEvent(uc.Log, "appointment_ownership_mismatch", requestID, "medium",
			zap.String(constvars.LoggingUserIDKey, identity.UserID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return nil, exceptions.ErrAppointmentOwnership(appointment.ID)
	}
	if appointment.Status != models.AppointmentUpcoming {
		return nil, exceptions.ErrAppointmentNotUpcoming(appointment.ID, string(appointment.Status))
	}
	if identity.Email == "" {
		return nil, exceptions.ErrIdentityMissingClaims(nil)
	}

	appointmentAt, err := utils.ParseAppointmentDateTime(appointment.AppointmentDate, appointment.AppointmentTime, utils.LoadLocation(uc.InternalConfig.App.Timezone))
	if err != nil {
		return nil, exceptions.ErrInvalidAppointmentSchedule(err, appointment.AppointmentDate, appointment.AppointmentTime)
	}

	return uc.ScheduleReminder(ctx, &requests.ScheduleReminder{
		AppointmentID:       appointment.ID,
		AppointmentDateTime: appointmentAt,
		Email:               identity.Email,
		PatientName:         appointment.PatientName,
		DoctorName:          appointment.DoctorName,
		Specialty:           appointment.Specialty,
	})
}

// ScheduleReminder stores a job firing the lead time before the appointment.
// A reminder whose time already passed fires on the next worker tick as long
// as the appointment itself has not started.
func (uc *reminderUsecase) ScheduleReminder(ctx context.Context, request *requests.ScheduleReminder) (*responses.ScheduleReminder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reminderUsecase.ScheduleReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	now := uc.now().UTC()
	appointmentAt := request.AppointmentDateTime.UTC()
	if !appointmentAt.After(now) {
		uc.Log.Info("reminderUsecase.ScheduleReminder appointment already started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time(constvars.LoggingReminderTimeKey, appointmentAt),
		)
		return nil, exceptions.ErrReminderTooLate(appointmentAt.Format(time.RFC3339))
	}

	fireAt := appointmentAt.Add(-time.Duration(uc.InternalConfig.Reminder.LeadTimeInMinutes) * time.Minute)
	if fireAt.Before(now) {
		fireAt = now
	}

	link := fmt.Sprintf(constvars.EmailConsultationLinkPathFormat, strings.TrimRight(uc.InternalConfig.App.FrontendURL, "/"), request.AppointmentID)

	job := &models.ReminderJob{
		ID:               uuid.NewString(),
		AppointmentID:    request.AppointmentID,
		AppointmentAt:    appointmentAt,
		FireAt:           fireAt,
		Email:            request.Email,
		PatientName:      request.PatientName,
		DoctorName:       request.DoctorName,
		Specialty:        request.Specialty,
		ConsultationLink: link,
		CreatedAt:        now,
	}

	if err := uc.ReminderStore.Add(ctx, job); err != nil {
		uc.Log.Error("reminderUsecase.ScheduleReminder error storing job",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReminderJobIDKey, job.ID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "reminder_scheduled", requestID,
		zap.String(constvars.LoggingReminderJobIDKey, job.ID),
		zap.String(constvars.LoggingAppointmentIDKey, job.AppointmentID),
		zap.Time(constvars.LoggingReminderTimeKey, fireAt),
	)

	return &responses.ScheduleReminder{
		Success:      true,
		JobID:        job.ID,
		ReminderTime: fireAt,
	}, nil
}
