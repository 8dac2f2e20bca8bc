package routers

import (
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Payment      *controllers.PaymentController
	Booking      *controllers.BookingController
	Notification *controllers.NotificationController
	Reminder     *controllers.ReminderController
	Health       *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAuthorization,
			constvars.HeaderXClientInfo,
			constvars.HeaderAPIKey,
			constvars.HeaderContentType,
			constvars.HeaderAccept,
			constvars.HeaderXRequestID,
			constvars.HeaderInternalKey,
		},
		ExposedHeaders: []string{constvars.HeaderXRequestID, "Retry-After"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.IPRateLimiter())
	router.Use(middlewares.BodyLimit)

	router.Get(constvars.RouteHealthz, ctrls.Health.Healthz)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middleware.AllowContentType(constvars.MIMEApplicationJSON))

			r.Route(constvars.RoutePayments, func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, ctrls.Payment)
			})

			r.Route(constvars.RouteBookings, func(r chi.Router) {
				attachBookingRoutes(r, middlewares, ctrls.Booking)
			})

			r.Route(constvars.RouteNotifications, func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, ctrls.Notification)
			})

			r.Route(constvars.RouteReminders, func(r chi.Router) {
				attachReminderRoutes(r, middlewares, ctrls.Reminder)
			})
		})
	})
}
