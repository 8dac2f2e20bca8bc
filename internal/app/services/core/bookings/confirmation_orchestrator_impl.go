package bookings

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/signature"
	"mediconnect-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// reconciliationRecord is pushed to the reconciliation list when a verified
// payment could not be recorded as an appointment.
type reconciliationRecord struct {
	PaymentID string                `json:"paymentId"`
	OrderID   string                `json:"orderId"`
	UserID    string                `json:"userId"`
	Intent    *models.BookingIntent `json:"intent"`
	Error     string                `json:"error"`
	FailedAt  time.Time             `json:"failedAt"`
}

type confirmationOrchestrator struct {
	AppointmentRepository contracts.AppointmentRepository
	NotificationUsecase   contracts.NotificationUsecase
	ReminderUsecase       contracts.ReminderUsecase
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	confirmationOrchestratorInstance contracts.BookingConfirmationOrchestrator
	onceConfirmationOrchestrator     sync.Once
)

func NewConfirmationOrchestrator(
	appointmentRepository contracts.AppointmentRepository,
	notificationUsecase contracts.NotificationUsecase,
	reminderUsecase contracts.ReminderUsecase,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingConfirmationOrchestrator {
	onceConfirmationOrchestrator.Do(func() {
		instance := &confirmationOrchestrator{
			AppointmentRepository: appointmentRepository,
			NotificationUsecase:   notificationUsecase,
			ReminderUsecase:       reminderUsecase,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		confirmationOrchestratorInstance = instance
	})
	return confirmationOrchestratorInstance
}

// Confirm records the appointment for a verified payment, then sends the
// confirmation email and schedules the reminder. Only the call that created
// the appointment sends notifications. Notification failures never change the
// result, and a failed insert yields Recorded=false instead of an error.
func (o *confirmationOrchestrator) Confirm(ctx context.Context, proof signature.VerifiedProof, intent *models.BookingIntent, identity models.Identity) (*models.ConfirmationResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if proof.IsZero() {
		utils.LogSecurityEvent(o.Log, "unverified_payment_proof", requestID, "high")
		return nil, exceptions.ErrUnverifiedPaymentProof()
	}
	if intent == nil || intent.OrderID != proof.OrderID() {
		return nil, exceptions.ErrBookingIntentNotFound(nil, proof.OrderID())
	}

	o.Log.Info("confirmationOrchestrator.Confirm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, proof.OrderID()),
		zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
	)

	result := &models.ConfirmationResult{}

	appointment, created, err := o.AppointmentRepository.CreateIfAbsent(ctx, models.NewAppointmentFromIntent(intent, proof.PaymentID()))
	if err != nil {
		o.reportPersistenceFailure(ctx, proof, intent, identity, err)
		result.ConfirmationSent = o.sendConfirmation(ctx, proof.PaymentID(), intent)
		return result, nil
	}

	result.Recorded = true
	result.AppointmentID = appointment.ID
	if !created {
		result.AlreadyRecorded = true
		o.Log.Info("confirmationOrchestrator.Confirm appointment already recorded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return result, nil
	}

	utils.LogBusinessEvent(o.Log, "appointment_recorded", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
		zap.String(constvars.LoggingOrderIDKey, proof.OrderID()),
		zap.Int64(constvars.LoggingMinorAmountKey, appointment.Amount),
	)

	result.ConfirmationSent = o.sendConfirmation(ctx, proof.PaymentID(), intent)
	result.ReminderScheduled = o.scheduleReminder(ctx, appointment, intent)
	return result, nil
}

func (o *confirmationOrchestrator) reportPersistenceFailure(ctx context.Context, proof signature.VerifiedProof, intent *models.BookingIntent, identity models.Identity, cause error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	persistErr := exceptions.ErrAppointmentPersistence(cause, proof.PaymentID())

	o.Log.Error("confirmationOrchestrator.Confirm error recording appointment for verified payment",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
		zap.String(constvars.LoggingOrderIDKey, proof.OrderID()),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
		zap.String(constvars.LoggingErrorCodeKey, persistErr.Code),
		zap.Error(persistErr),
	)

	record := reconciliationRecord{
		PaymentID: proof.PaymentID(),
		OrderID:   proof.OrderID(),
		UserID:    identity.UserID,
		Intent:    intent,
		Error:     cause.Error(),
		FailedAt:  time.Now().UTC(),
	}
	if err := o.pushReconciliation(ctx, record); err != nil {
		o.Log.Error("confirmationOrchestrator.Confirm error pushing reconciliation record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
			zap.Error(err),
		)
	}
}

func (o *confirmationOrchestrator) pushReconciliation(ctx context.Context, record reconciliationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return o.RedisRepository.PushToList(ctx, constvars.RedisKeyReconciliationList, string(payload))
}

// sendConfirmation sends at most one confirmation per payment. The marker is
// claimed before sending and released when the send fails. A Redis error sends
// anyway.
func (o *confirmationOrchestrator) sendConfirmation(ctx context.Context, paymentID string, intent *models.BookingIntent) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	markerKey := fmt.Sprintf(constvars.RedisKeyConfirmationSentFormat, paymentID)

	claimed, err := o.RedisRepository.TrySetNX(ctx, markerKey, requestID, constvars.ConfirmationSentMarkerTTL)
	if err != nil {
		o.Log.Warn("confirmationOrchestrator.Confirm error claiming confirmation marker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, paymentID),
			zap.Error(err),
		)
	} else if !claimed {
		o.Log.Info("confirmationOrchestrator.Confirm confirmation already sent for payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, paymentID),
		)
		return true
	}

	_, err = o.NotificationUsecase.SendConfirmation(ctx, &requests.SendConfirmationEmail{
		Email:            intent.UserEmail,
		PatientName:      intent.PatientName,
		DoctorName:       intent.DoctorName,
		Specialty:        intent.Specialty,
		AppointmentDate:  intent.AppointmentDate,
		AppointmentTime:  intent.AppointmentTime,
		ConsultationType: intent.ConsultationType,
	})
	if err != nil {
		o.Log.Warn("confirmationOrchestrator.Confirm confirmation email not sent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, intent.OrderID),
			zap.Error(err),
		)
		if delErr := o.RedisRepository.Delete(ctx, markerKey); delErr != nil {
			o.Log.Warn("confirmationOrchestrator.Confirm error releasing confirmation marker",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, markerKey),
				zap.Error(delErr),
			)
		}
		return false
	}
	return true
}

func (o *confirmationOrchestrator) scheduleReminder(ctx context.Context, appointment *models.Appointment, intent *models.BookingIntent) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointmentAt, err := utils.ParseAppointmentDateTime(appointment.AppointmentDate, appointment.AppointmentTime, utils.LoadLocation(o.InternalConfig.App.Timezone))
	if err != nil {
		o.Log.Warn("confirmationOrchestrator.Confirm reminder not scheduled, bad appointment schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return false
	}

	_, err = o.ReminderUsecase.ScheduleReminder(ctx, &requests.ScheduleReminder{
		AppointmentID:       appointment.ID,
		AppointmentDateTime: appointmentAt,
		Email:               intent.UserEmail,
		PatientName:         appointment.PatientName,
		DoctorName:          appointment.DoctorName,
		Specialty:           appointment.Specialty,
	})
	if err != nil {
		o.Log.Warn("confirmationOrchestrator.Confirm reminder not scheduled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return false
	}
	return true
}
