package bookings

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	PaymentGateway          contracts.PaymentGateway
	BookingIntentRepository contracts.BookingIntentRepository
	Orchestrator            contracts.BookingConfirmationOrchestrator
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	paymentGateway contracts.PaymentGateway,
	bookingIntentRepository contracts.BookingIntentRepository,
	orchestrator contracts.BookingConfirmationOrchestrator,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			PaymentGateway:          paymentGateway,
			BookingIntentRepository: bookingIntentRepository,
			Orchestrator:            orchestrator,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

// ConfirmBooking verifies the checkout proof again before anything is
// recorded, so a proof is never trusted because an earlier call accepted it.
func (uc *bookingUsecase) ConfirmBooking(ctx context.Context, identity models.Identity, request *requests.ConfirmBooking) (*responses.ConfirmBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ConfirmBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
	)

	proof, err := uc.PaymentGateway.VerifyPaymentSignature(request.OrderID, request.PaymentID, request.Signature)
	if err != nil {
		utils.LogSecurityEvent(uc.Log, "payment_signature_rejected", requestID, "high",
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
			zap.String(constvars.LoggingUserIDKey, identity.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	intent, err := uc.loadIntent(ctx, proof.OrderID())
	if err != nil {
		return nil, err
	}

	if intent.UserID != identity.UserID {
		utils.LogSecurityEvent(uc.Log, "booking_intent_ownership_mismatch", requestID, "high",
			zap.String(constvars.LoggingOrderIDKey, proof.OrderID()),
			zap.String(constvars.LoggingUserIDKey, identity.UserID),
		)
		return nil, exceptions.ErrBookingIntentOwnership(proof.OrderID())
	}
	if intent.UserEmail == "" {
		intent.UserEmail = identity.Email
	}
	if request.ConsultationType != "" {
		intent.ConsultationType = request.ConsultationType
	}

	result, err := uc.Orchestrator.Confirm(ctx, proof, intent, identity)
	if err != nil {
		uc.Log.Error("bookingUsecase.ConfirmBooking error confirming booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.ConfirmBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
		zap.Bool(constvars.LoggingPersistedKey, result.Recorded),
		zap.Bool(constvars.LoggingAlreadyRecordedKey, result.AlreadyRecorded),
	)

	return &responses.ConfirmBooking{
		AppointmentID:     result.AppointmentID,
		PaymentID:         proof.PaymentID(),
		OrderID:           proof.OrderID(),
		Recorded:          result.Recorded,
		AlreadyRecorded:   result.AlreadyRecorded,
		ConfirmationSent:  result.ConfirmationSent,
		ReminderScheduled: result.ReminderScheduled,
	}, nil
}

// loadIntent prefers the cached intent and falls back to the order notes the
// gateway keeps for the order.
func (uc *bookingUsecase) loadIntent(ctx context.Context, orderID string) (*models.BookingIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	intent, err := uc.BookingIntentRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		uc.Log.Warn("bookingUsecase.loadIntent error reading cached intent, falling back to order notes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
	}
	if intent != nil {
		return intent, nil
	}

	order, err := uc.PaymentGateway.FetchOrder(ctx, orderID)
	if err != nil {
		uc.Log.Error("bookingUsecase.loadIntent error fetching order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingIntentNotFound(err, orderID)
	}

	intent = models.BookingIntentFromOrder(order)
	if intent == nil {
		return nil, exceptions.ErrBookingIntentNotFound(nil, orderID)
	}
	uc.Log.Info("bookingUsecase.loadIntent rebuilt intent from order notes",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return intent, nil
}
