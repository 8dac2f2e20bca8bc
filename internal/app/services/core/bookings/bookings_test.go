package bookings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/shared/payment_gateway"
	redisrepo "mediconnect-service/internal/app/services/shared/redis"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/signature"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test_key_secret"

// memoryAppointmentRepository enforces payment id uniqueness the way the
// appointments table constraint does.
type memoryAppointmentRepository struct {
	mu        sync.Mutex
	byPayment map[string]*models.Appointment
	err       error
}

func newMemoryAppointmentRepository() *memoryAppointmentRepository {
	return &memoryAppointmentRepository{byPayment: map[string]*models.Appointment{}}
}

func (r *memoryAppointmentRepository) CreateIfAbsent(ctx context.Context, appointment *models.Appointment) (*models.Appointment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, false, r.err
	}
	if existing, ok := r.byPayment[appointment.PaymentID]; ok {
		return existing, false, nil
	}
	stored := *appointment
	stored.ID = "appt-" + appointment.PaymentID
	r.byPayment[appointment.PaymentID] = &stored
	return &stored, true, nil
}

func (r *memoryAppointmentRepository) FindByPaymentID(ctx context.Context, paymentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byPayment[paymentID], nil
}

func (r *memoryAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, appointment := range r.byPayment {
		if appointment.ID == appointmentID {
			return appointment, nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byPayment)
}

type mockNotifications struct {
	mock.Mock
}

func (m *mockNotifications) SendConfirmation(ctx context.Context, request *requests.SendConfirmationEmail) (*responses.SendEmail, error) {
	args := m.Called(ctx, request)
	resp, _ := args.Get(0).(*responses.SendEmail)
	return resp, args.Error(1)
}

func (m *mockNotifications) SendReminder(ctx context.Context, request *requests.SendReminderEmail) (*responses.SendEmail, error) {
	args := m.Called(ctx, request)
	resp, _ := args.Get(0).(*responses.SendEmail)
	return resp, args.Error(1)
}

type mockReminders struct {
	mock.Mock
}

func (m *mockReminders) ScheduleForAppointment(ctx context.Context, identity models.Identity, request *requests.ScheduleAppointment) (*responses.ScheduleReminder, error) {
	args := m.Called(ctx, identity, request)
	resp, _ := args.Get(0).(*responses.ScheduleReminder)
	return resp, args.Error(1)
}

func (m *mockReminders) ScheduleReminder(ctx context.Context, request *requests.ScheduleReminder) (*responses.ScheduleReminder, error) {
	args := m.Called(ctx, request)
	resp, _ := args.Get(0).(*responses.ScheduleReminder)
	return resp, args.Error(1)
}

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, server
}

func testIntent(orderID string) *models.BookingIntent {
	return &models.BookingIntent{
		OrderID:         orderID,
		Gateway:         constvars.PaymentGatewaySandbox,
		UserID:          "user-1",
		UserEmail:       "asha@example.com",
		DoctorName:      "Dr. Sarah Williams",
		Specialty:       "General Medicine",
		AppointmentDate: "2099-03-10",
		AppointmentTime: "10:30 AM",
		PatientName:     "Asha Rao",
		PatientPhone:    "919876543210",
		Amount:          49900,
		Currency:        constvars.CurrencyINR,
	}
}

func verifiedProof(t *testing.T, orderID, paymentID string) signature.VerifiedProof {
	t.Helper()
	proof, err := signature.Verify(orderID, paymentID, signature.Compute(orderID, paymentID, testSecret), testSecret)
	require.NoError(t, err)
	return proof
}

type orchestratorFixture struct {
	orchestrator  *confirmationOrchestrator
	appointments  *memoryAppointmentRepository
	notifications *mockNotifications
	reminders     *mockReminders
	redisServer   *miniredis.Miniredis
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	client, server := newTestRedis(t)
	f := &orchestratorFixture{
		appointments:  newMemoryAppointmentRepository(),
		notifications: new(mockNotifications),
		reminders:     new(mockReminders),
		redisServer:   server,
	}
	f.orchestrator = &confirmationOrchestrator{
		AppointmentRepository: f.appointments,
		NotificationUsecase:   f.notifications,
		ReminderUsecase:       f.reminders,
		RedisRepository:       redisrepo.NewRedisRepository(client),
		InternalConfig:        &config.InternalConfig{App: config.App{Timezone: "Asia/Kolkata"}},
		Log:                   zap.NewNop(),
	}
	return f
}

func TestConfirmationOrchestrator_RecordsAndNotifies(t *testing.T) {
	f := newOrchestratorFixture(t)
	var scheduled *requests.ScheduleReminder
	f.notifications.On("SendConfirmation", mock.Anything, mock.Anything).Return(&responses.SendEmail{Success: true}, nil).Once()
	f.reminders.On("ScheduleReminder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { scheduled = args.Get(1).(*requests.ScheduleReminder) }).
		Return(&responses.ScheduleReminder{Success: true}, nil).Once()

	result, err := f.orchestrator.Confirm(context.Background(), verifiedProof(t, "order_1", "pay_1"), testIntent("order_1"), models.Identity{UserID: "user-1", Email: "asha@example.com"})
	require.NoError(t, err)
	assert.True(t, result.Recorded)
	assert.False(t, result.AlreadyRecorded)
	assert.True(t, result.ConfirmationSent)
	assert.True(t, result.ReminderScheduled)
	assert.Equal(t, "appt-pay_1", result.AppointmentID)

	stored, _ := f.appointments.FindByPaymentID(context.Background(), "pay_1")
	require.NotNil(t, stored)
	assert.Equal(t, models.AppointmentUpcoming, stored.Status)

	require.NotNil(t, scheduled)
	assert.Equal(t, "appt-pay_1", scheduled.AppointmentID)
	assert.Equal(t, time.Date(2099, 3, 10, 5, 0, 0, 0, time.UTC), scheduled.AppointmentDateTime.UTC())
}

func TestConfirmationOrchestrator_ConcurrentDuplicatesCreateOneAppointment(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.notifications.On("SendConfirmation", mock.Anything, mock.Anything).Return(&responses.SendEmail{Success: true}, nil)
	f.reminders.On("ScheduleReminder", mock.Anything, mock.Anything).Return(&responses.ScheduleReminder{Success: true}, nil)

	proof := verifiedProof(t, "order_1", "pay_1")
	identity := models.Identity{UserID: "user-1", Email: "asha@example.com"}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []*models.ConfirmationResult
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := f.orchestrator.Confirm(context.Background(), proof, testIntent("order_1"), identity)
			assert.NoError(t, err)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.appointments.count())
	created := 0
	for _, result := range results {
		assert.True(t, result.Recorded)
		assert.Equal(t, "appt-pay_1", result.AppointmentID)
		if !result.AlreadyRecorded {
			created++
		}
	}
	assert.Equal(t, 1, created)
	f.notifications.AssertNumberOfCalls(t, "SendConfirmation", 1)
	f.reminders.AssertNumberOfCalls(t, "ScheduleReminder", 1)
}

func TestConfirmationOrchestrator_NotificationFailuresDoNotChangeOutcome(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.notifications.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil, exceptions.ErrNotificationFailed("resend", 500, "down"))
	f.reminders.On("ScheduleReminder", mock.Anything, mock.Anything).Return(nil, errors.New("redis unavailable"))

	result, err := f.orchestrator.Confirm(context.Background(), verifiedProof(t, "order_1", "pay_1"), testIntent("order_1"), models.Identity{UserID: "user-1"})
	require.NoError(t, err)
	assert.True(t, result.Recorded)
	assert.False(t, result.ConfirmationSent)
	assert.False(t, result.ReminderScheduled)
	assert.Equal(t, 1, f.appointments.count())
}

func TestConfirmationOrchestrator_PersistenceFailureIsQueuedForReconciliation(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.appointments.err = errors.New("connection refused")
	f.notifications.On("SendConfirmation", mock.Anything, mock.Anything).Return(&responses.SendEmail{Success: true}, nil)

	result, err := f.orchestrator.Confirm(context.Background(), verifiedProof(t, "order_1", "pay_1"), testIntent("order_1"), models.Identity{UserID: "user-1"})
	require.NoError(t, err)
	assert.False(t, result.Recorded)
	assert.Empty(t, result.AppointmentID)
	f.reminders.AssertNotCalled(t, "ScheduleReminder", mock.Anything, mock.Anything)

	entries, err := f.redisServer.List(constvars.RedisKeyReconciliationList)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], `"paymentId":"pay_1"`)
	assert.Contains(t, entries[0], `"orderId":"order_1"`)
	assert.Contains(t, entries[0], `"userId":"user-1"`)
}

func TestConfirmationOrchestrator_RetryAfterPersistenceFailureSendsOneConfirmation(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.appointments.err = errors.New("connection refused")
	f.notifications.On("SendConfirmation", mock.Anything, mock.Anything).Return(&responses.SendEmail{Success: true}, nil)
	f.reminders.On("ScheduleReminder", mock.Anything, mock.Anything).Return(&responses.ScheduleReminder{Success: true}, nil)
	proof := verifiedProof(t, "order_1", "pay_1")
	identity := models.Identity{UserID: "user-1", Email: "asha@example.com"}

	result, err := f.orchestrator.Confirm(context.Background(), proof, testIntent("order_1"), identity)
	require.NoError(t, err)
	assert.False(t, result.Recorded)
	assert.True(t, result.ConfirmationSent)

	f.appointments.err = nil
	result, err = f.orchestrator.Confirm(context.Background(), proof, testIntent("order_1"), identity)
	require.NoError(t, err)
	assert.True(t, result.Recorded)
	assert.False(t, result.AlreadyRecorded)
	assert.True(t, result.ConfirmationSent)
	assert.True(t, result.ReminderScheduled)

	f.notifications.AssertNumberOfCalls(t, "SendConfirmation", 1)
	assert.True(t, f.redisServer.Exists(fmt.Sprintf(constvars.RedisKeyConfirmationSentFormat, "pay_1")))
}

func TestConfirmationOrchestrator_FailedSendReleasesConfirmationMarker(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.notifications.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil, exceptions.ErrNotificationFailed("resend", 500, "down"))
	f.reminders.On("ScheduleReminder", mock.Anything, mock.Anything).Return(&responses.ScheduleReminder{Success: true}, nil)

	result, err := f.orchestrator.Confirm(context.Background(), verifiedProof(t, "order_1", "pay_1"), testIntent("order_1"), models.Identity{UserID: "user-1"})
	require.NoError(t, err)
	assert.False(t, result.ConfirmationSent)
	assert.False(t, f.redisServer.Exists(fmt.Sprintf(constvars.RedisKeyConfirmationSentFormat, "pay_1")))
}

func TestConfirmationOrchestrator_RejectsUnverifiedProof(t *testing.T) {
	f := newOrchestratorFixture(t)

	result, err := f.orchestrator.Confirm(context.Background(), signature.VerifiedProof{}, testIntent("order_1"), models.Identity{UserID: "user-1"})
	assert.Nil(t, result)
	assert.Equal(t, "VERIFICATION_FAILED", exceptions.CodeOf(err))
	assert.Equal(t, 0, f.appointments.count())
}

type mockOrchestrator struct {
	mock.Mock
}

func (m *mockOrchestrator) Confirm(ctx context.Context, proof signature.VerifiedProof, intent *models.BookingIntent, identity models.Identity) (*models.ConfirmationResult, error) {
	args := m.Called(ctx, proof, intent, identity)
	result, _ := args.Get(0).(*models.ConfirmationResult)
	return result, args.Error(1)
}

func newTestBookingUsecase(t *testing.T, orchestrator *mockOrchestrator) (*bookingUsecase, *bookingIntentRedisRepository) {
	t.Helper()
	client, _ := newTestRedis(t)
	gateway, err := payment_gateway.NewSandboxGateway(config.AppPaymentGateway{KeySecret: testSecret}, zap.NewNop())
	require.NoError(t, err)
	intents := &bookingIntentRedisRepository{RedisRepository: redisrepo.NewRedisRepository(client)}
	return &bookingUsecase{
		PaymentGateway:          gateway,
		BookingIntentRepository: intents,
		Orchestrator:            orchestrator,
		InternalConfig:          &config.InternalConfig{},
		Log:                     zap.NewNop(),
	}, intents
}

func TestBookingUsecase_ConfirmBooking(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: "user-1", Email: "asha@example.com"}

	t.Run("tampered signature never reaches the orchestrator", func(t *testing.T) {
		orchestrator := new(mockOrchestrator)
		uc, intents := newTestBookingUsecase(t, orchestrator)
		require.NoError(t, intents.Save(ctx, testIntent("order_1"), time.Hour))

		sig := []byte(signature.Compute("order_1", "pay_1", testSecret))
		if sig[0] == '0' {
			sig[0] = '1'
		} else {
			sig[0] = '0'
		}
		_, err := uc.ConfirmBooking(ctx, identity, &requests.ConfirmBooking{OrderID: "order_1", PaymentID: "pay_1", Signature: string(sig)})
		assert.Equal(t, "VERIFICATION_FAILED", exceptions.CodeOf(err))
		orchestrator.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("intent owned by another user", func(t *testing.T) {
		orchestrator := new(mockOrchestrator)
		uc, intents := newTestBookingUsecase(t, orchestrator)
		require.NoError(t, intents.Save(ctx, testIntent("order_1"), time.Hour))

		_, err := uc.ConfirmBooking(ctx, models.Identity{UserID: "user-2"}, &requests.ConfirmBooking{
			OrderID:   "order_1",
			PaymentID: "pay_1",
			Signature: signature.Compute("order_1", "pay_1", testSecret),
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		orchestrator.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expired cache falls back to order notes", func(t *testing.T) {
		orchestrator := new(mockOrchestrator)
		uc, _ := newTestBookingUsecase(t, orchestrator)

		intent := testIntent("")
		order, err := uc.PaymentGateway.CreateOrder(ctx, &requests.GatewayCreateOrder{
			Amount:   49900,
			Currency: constvars.CurrencyINR,
			Receipt:  "order_1700000000000",
			Notes:    intent.Notes(),
		})
		require.NoError(t, err)

		var confirmed *models.BookingIntent
		orchestrator.On("Confirm", mock.Anything, mock.Anything, mock.Anything, identity).
			Run(func(args mock.Arguments) { confirmed = args.Get(2).(*models.BookingIntent) }).
			Return(&models.ConfirmationResult{Recorded: true, AppointmentID: "appt-1"}, nil)

		resp, err := uc.ConfirmBooking(ctx, identity, &requests.ConfirmBooking{
			OrderID:   order.ID,
			PaymentID: "pay_1",
			Signature: signature.Compute(order.ID, "pay_1", testSecret),
		})
		require.NoError(t, err)
		assert.True(t, resp.Recorded)
		assert.Equal(t, "appt-1", resp.AppointmentID)
		assert.Equal(t, order.ID, resp.OrderID)

		require.NotNil(t, confirmed)
		assert.Equal(t, order.ID, confirmed.OrderID)
		assert.Equal(t, "Dr. Sarah Williams", confirmed.DoctorName)
		assert.Equal(t, int64(49900), confirmed.Amount)
	})

	t.Run("unknown order", func(t *testing.T) {
		orchestrator := new(mockOrchestrator)
		uc, _ := newTestBookingUsecase(t, orchestrator)

		_, err := uc.ConfirmBooking(ctx, identity, &requests.ConfirmBooking{
			OrderID:   "order_missing",
			PaymentID: "pay_1",
			Signature: signature.Compute("order_missing", "pay_1", testSecret),
		})
		assert.Equal(t, "BOOKING_INTENT_ERROR", exceptions.CodeOf(err))
	})
}
