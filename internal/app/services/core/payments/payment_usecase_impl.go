package payments

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentGateway          contracts.PaymentGateway
	BookingIntentRepository contracts.BookingIntentRepository
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
	now                     func() time.Time
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentGateway contracts.PaymentGateway,
	bookingIntentRepository contracts.BookingIntentRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			PaymentGateway:          paymentGateway,
			BookingIntentRepository: bookingIntentRepository,
			InternalConfig:          internalConfig,
			Log:                     logger,
			now:                     time.Now,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

// CreateOrder opens a gateway order for the booking intent. The intent travels
// in the order notes and is cached so confirmation can rebuild it later.
func (uc *paymentUsecase) CreateOrder(ctx context.Context, identity models.Identity, request *requests.CreateOrder) (*responses.CreateOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
		zap.String(constvars.LoggingCurrencyKey, request.Currency),
	)

	currency := request.Currency
	if currency == "" {
		currency = uc.InternalConfig.PaymentGateway.Currency
	}
	createdAt := uc.now().UTC()

	minorAmount, err := utils.ToMinorUnits(request.Amount, currency)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateOrder error converting amount",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAmountKey, request.Amount),
			zap.String(constvars.LoggingCurrencyKey, currency),
			zap.Error(err),
		)
		return nil, err
	}

	intent := &models.BookingIntent{
		Receipt:         fmt.Sprintf(constvars.ReceiptFormat, createdAt.UnixMilli()),
		Gateway:         uc.PaymentGateway.Name(),
		UserID:          identity.UserID,
		UserEmail:       identity.Email,
		DoctorName:      request.DoctorName,
		Specialty:       request.Specialty,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		PatientName:     request.PatientName,
		PatientPhone:    request.PatientPhone,
		Symptoms:        request.Symptoms,
		Amount:          minorAmount,
		Currency:        currency,
		CreatedAt:       createdAt,
	}

	notes := intent.Notes()
	for key, value := range notes {
		notes[key] = utils.TruncateNoteValue(value, constvars.NoteValueMaxLength)
	}

	order, err := uc.PaymentGateway.CreateOrder(ctx, &requests.GatewayCreateOrder{
		Amount:   intent.Amount,
		Currency: intent.Currency,
		Receipt:  intent.Receipt,
		Notes:    notes,
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateOrder error creating gateway order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayKey, uc.PaymentGateway.Name()),
			zap.String(constvars.LoggingReceiptKey, intent.Receipt),
			zap.Error(err),
		)
		return nil, err
	}

	intent.OrderID = order.ID
	ttl := time.Duration(uc.InternalConfig.App.BookingIntentTTLInMinutes) * time.Minute
	if err := uc.BookingIntentRepository.Save(ctx, intent, ttl); err != nil {
		uc.Log.Warn("paymentUsecase.CreateOrder error caching booking intent, order notes remain the fallback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, order.ID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, "payment_order_created", requestID,
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
		zap.Int64(constvars.LoggingMinorAmountKey, order.Amount),
		zap.String(constvars.LoggingCurrencyKey, order.Currency),
	)

	return &responses.CreateOrder{
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		PublicKey: uc.PaymentGateway.PublicKey(),
		Gateway:   uc.PaymentGateway.Name(),
		Receipt:   order.Receipt,
	}, nil
}

func (uc *paymentUsecase) VerifyPayment(ctx context.Context, identity models.Identity, request *requests.VerifyPayment) (*responses.VerifyPayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
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

	utils.LogBusinessEvent(uc.Log, "payment_verified", requestID,
		zap.String(constvars.LoggingOrderIDKey, proof.OrderID()),
		zap.String(constvars.LoggingPaymentIDKey, proof.PaymentID()),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
	)

	return &responses.VerifyPayment{
		Success:   true,
		PaymentID: proof.PaymentID(),
		OrderID:   proof.OrderID(),
	}, nil
}
