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

const notificationRequestTimeout = 20 * time.Second

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
}

var (
	notificationControllerInstance *NotificationController
	onceNotificationController     sync.Once
)

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase) *NotificationController {
	onceNotificationController.Do(func() {
		instance := &NotificationController{
			Log:                 logger,
			NotificationUsecase: notificationUsecase,
		}
		notificationControllerInstance = instance
	})
	return notificationControllerInstance
}

func (ctrl *NotificationController) SendConfirmation(w http.ResponseWriter, r *http.Request) {
	const method = "NotificationController.SendConfirmation"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	ctrl.Log.Info(method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SendConfirmationEmail)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request, utils.SanitizeSendConfirmationEmailRequest) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), notificationRequestTimeout)
	defer cancel()

	response, err := ctrl.NotificationUsecase.SendConfirmation(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfirmationEmailSentSuccess, response)
}

func (ctrl *NotificationController) SendReminder(w http.ResponseWriter, r *http.Request) {
	const method = "NotificationController.SendReminder"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, method)
	if !ok {
		return
	}
	ctrl.Log.Info(method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SendReminderEmail)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request, utils.SanitizeSendReminderEmailRequest) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), notificationRequestTimeout)
	defer cancel()

	response, err := ctrl.NotificationUsecase.SendReminder(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReminderEmailSentSuccess, response)
}
