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

type ReminderController struct {
	Log             *zap.Logger
	ReminderUsecase contracts.ReminderUsecase
}

var (
	reminderControllerInstance *ReminderController
	onceReminderController     sync.Once
)

func NewReminderController(logger *zap.Logger, reminderUsecase contracts.ReminderUsecase) *ReminderController {
	onceReminderController.Do(func() {
		instance := &ReminderController{
			Log:             logger,
			ReminderUsecase: reminderUsecase,
		}
		reminderControllerInstance = instance
	})
	return reminderControllerInstance
}

func (ctrl *ReminderController) ScheduleReminder(w http.ResponseWriter, r *http.Request) {
	const method = "ReminderController.ScheduleReminder"
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

	request := new(requests.ScheduleAppointment)
	if !decodeAndValidate(ctrl.Log, w, r, method, requestID, request, utils.SanitizeScheduleAppointmentRequest) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReminderUsecase.ScheduleForAppointment(ctx, identity, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, method, requestID, err)
		return
	}

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReminderJobIDKey, response.JobID),
		zap.Time(constvars.LoggingReminderTimeKey, response.ReminderTime),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReminderScheduledSuccess, response)
}
