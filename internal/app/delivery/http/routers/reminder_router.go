package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReminderRoutes(router chi.Router, middlewares *middlewares.Middlewares, reminderController *controllers.ReminderController) {
	router.Use(middlewares.Authenticate)
	router.Post(constvars.RouteReminderSchedule, reminderController.ScheduleReminder)
}
