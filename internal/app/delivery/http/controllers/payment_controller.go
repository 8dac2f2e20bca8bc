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

const paymentRequestTimeout = 20 * time.Second

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	const method = "PaymentController.CreateOrder"
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

	request := new(requests.CreateOrder)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request, utils.SanitizeCreateOrderRequest) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paymentRequestTimeout)
	defer cancel()

	response, err := ctrl.PaymentUsecase.CreateOrder(ctx, identity, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, response.OrderID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OrderCreatedSuccess, response)
}

func (ctrl *PaymentController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	const method = "PaymentController.VerifyPayment"
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

	request := new(requests.VerifyPayment)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request, utils.SanitizeVerifyPaymentRequest) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paymentRequestTimeout)
	defer cancel()

	response, err := ctrl.PaymentUsecase.VerifyPayment(ctx, identity, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, response.PaymentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentVerifiedSuccess, response)
}
