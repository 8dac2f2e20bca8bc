package controllers

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Confirmation sends an email inline, so it gets more time than the payment calls.
const bookingRequestTimeout = 45 * time.Second

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		instance := &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
		bookingControllerInstance = instance
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	const method = "BookingController.ConfirmBooking"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	ctrl.Log.Info(method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, ok := identityFromRequest(ctrl.Log, w, r, method, requestID)
	if !ok {
		return
	}

	request := new(requests.ConfirmBooking)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request, utils.SanitizeConfirmBookingRequest) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingRequestTimeout)
	defer cancel()

	response, err := ctrl.BookingUsecase.ConfirmBooking(ctx, identity, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	message := constvars.BookingConfirmedSuccess
	if !response.Recorded {
		message = constvars.BookingConfirmedPendingRecord
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, response.PaymentID),
		zap.String(constvars.LoggingAppointmentIDKey, response.AppointmentID),
		zap.Bool(constvars.LoggingPersistedKey, response.Recorded),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}
