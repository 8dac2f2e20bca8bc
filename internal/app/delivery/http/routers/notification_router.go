package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.Use(middlewares.RequireInternalAPIKey)
	router.Post(constvars.RouteNotificationConfirmation, notificationController.SendConfirmation)
	router.Post(constvars.RouteNotificationReminder, notificationController.SendReminder)
}
