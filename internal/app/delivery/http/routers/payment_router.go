package routers

import (
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Use(middlewares.Authenticate)
	router.With(middlewares.OrderRateLimit).Post(constvars.RoutePaymentOrders, paymentController.CreateOrder)
	router.Post(constvars.RoutePaymentVerify, paymentController.VerifyPayment)
}
