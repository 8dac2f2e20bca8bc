package main

import (
	"context"
	"log"
	"mediconnect-service/cmd/migration"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/delivery/http/routers"
	"mediconnect-service/internal/app/drivers/database"
	"mediconnect-service/internal/app/drivers/logger"
	"mediconnect-service/internal/app/drivers/mailer"
	"mediconnect-service/internal/app/drivers/messaging"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/app/services/core/bookings"
	"mediconnect-service/internal/app/services/core/notifications"
	"mediconnect-service/internal/app/services/core/payments"
	"mediconnect-service/internal/app/services/core/reminders"
	"mediconnect-service/internal/app/services/shared/identity"
	"mediconnect-service/internal/app/services/shared/locker"
	emailprovider "mediconnect-service/internal/app/services/shared/mailer"
	"mediconnect-service/internal/app/services/shared/payment_gateway"
	"mediconnect-service/internal/app/services/shared/ratelimiter"
	"mediconnect-service/internal/app/services/shared/redis"
	"mediconnect-service/internal/app/services/shared/reminderqueue"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "develop"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	err := internalConfig.Validate()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	migration.Run(postgresDB)

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(internalConfig.App.Address, internalConfig.App.Port),
		Handler:      chiRouter,
		ReadTimeout:  time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
		WriteTimeout: time.Minute,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr), zap.String("version", Version))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Shared services
	identityResolver, err := identity.NewIdentityResolver(cfg.Supabase, zapLogger)
	if err != nil {
		return err
	}
	paymentGateway, err := payment_gateway.NewPaymentGateway(cfg.PaymentGateway, zapLogger)
	if err != nil {
		return err
	}
	emailProvider, err := emailprovider.NewEmailProvider(cfg.Notification, mailer.NewSMTPDialer(bootstrap.DriverConfig), zapLogger)
	if err != nil {
		return err
	}
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, zapLogger)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	reminderQueue, err := reminderqueue.NewService(bootstrap.RabbitMQ, zapLogger, bootstrap.DriverConfig.RabbitMQ.Prefetch)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(zapLogger, identityResolver, resourceLimiter, cfg)

	// Notification
	notificationUsecase := notifications.NewNotificationUsecase(emailProvider, cfg, zapLogger)
	notificationController := controllers.NewNotificationController(zapLogger, notificationUsecase)

	// Appointment
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB)

	// Reminder
	reminderStore := reminders.NewReminderRedisStore(redisRepository, zapLogger)
	reminderUsecase := reminders.NewReminderUsecase(reminderStore, appointmentRepository, cfg, zapLogger)
	reminderController := controllers.NewReminderController(zapLogger, reminderUsecase)

	reminderWorker := reminders.NewWorker(zapLogger, cfg, lockerService, reminderStore, reminderQueue, notificationUsecase)
	reminderWorker.Start(context.Background())
	bootstrap.ReminderWorkerStop = reminderWorker.Stop

	// Payment
	bookingIntentRepository := bookings.NewBookingIntentRedisRepository(redisRepository)
	paymentUsecase := payments.NewPaymentUsecase(paymentGateway, bookingIntentRepository, cfg, zapLogger)
	paymentController := controllers.NewPaymentController(zapLogger, paymentUsecase)

	// Booking
	orchestrator := bookings.NewConfirmationOrchestrator(appointmentRepository, notificationUsecase, reminderUsecase, redisRepository, cfg, zapLogger)
	bookingUsecase := bookings.NewBookingUsecase(paymentGateway, bookingIntentRepository, orchestrator, cfg, zapLogger)
	bookingController := controllers.NewBookingController(zapLogger, bookingUsecase)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, routers.Controllers{
		Payment:      paymentController,
		Booking:      bookingController,
		Notification: notificationController,
		Reminder:     reminderController,
		Health:       controllers.NewHealthController(Version),
	})

	zapLogger.Info("Application bootstrapped",
		zap.String("payment_gateway", paymentGateway.Name()),
		zap.String("email_provider", emailProvider.Name()),
	)
	return nil
}
