package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/services/shared/reminderqueue"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocker struct {
	held bool
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if l.held {
		return false, "", nil
	}
	l.held = true
	return true, "lock-value", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.held = false
	return nil
}

type fakeQueue struct {
	nextTag uint64
	ready   []reminderqueue.QueuedItem
	dead    []reminderqueue.ReminderQueueMessage
	acked   []uint64
}

func (q *fakeQueue) push(message reminderqueue.ReminderQueueMessage) {
	q.nextTag++
	q.ready = append(q.ready, reminderqueue.QueuedItem{DeliveryTag: q.nextTag, Message: message})
}

func (q *fakeQueue) Enqueue(ctx context.Context, in *reminderqueue.EnqueueInput) (*reminderqueue.EnqueueOutput, error) {
	q.push(in.Message)
	return &reminderqueue.EnqueueOutput{}, nil
}

func (q *fakeQueue) Reenqueue(ctx context.Context, in *reminderqueue.ReenqueueInput) (*reminderqueue.ReenqueueOutput, error) {
	q.push(in.Message)
	return &reminderqueue.ReenqueueOutput{}, nil
}

func (q *fakeQueue) EnqueueToDeadQueue(ctx context.Context, in *reminderqueue.EnqueueToDLQInput) (*reminderqueue.EnqueueToDLQOutput, error) {
	q.dead = append(q.dead, in.Message)
	return &reminderqueue.EnqueueToDLQOutput{}, nil
}

func (q *fakeQueue) FetchN(ctx context.Context, in *reminderqueue.FetchNInput) (*reminderqueue.FetchNOutput, error) {
	n := in.Max
	if n > len(q.ready) {
		n = len(q.ready)
	}
	items := q.ready[:n]
	q.ready = append([]reminderqueue.QueuedItem(nil), q.ready[n:]...)
	return &reminderqueue.FetchNOutput{Items: items}, nil
}

func (q *fakeQueue) AckMessage(ctx context.Context, in *reminderqueue.AckMessageInput) (*reminderqueue.AckMessageOutput, error) {
	q.acked = append(q.acked, in.DeliveryTag)
	return &reminderqueue.AckMessageOutput{}, nil
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

func newTestWorker(t *testing.T, store *reminderRedisStore, queue *fakeQueue, notifications *mockNotifications) *Worker {
	t.Helper()
	cfg := &config.InternalConfig{
		App:      config.App{Timezone: "Asia/Kolkata"},
		Reminder: config.AppReminder{
			ClaimBatchSize:          100,
			MaxQueue:                20,
			ThrottleRetry:           2,
			LockExpirationInSeconds: 50,
		},
	}
	return newWorker(zap.NewNop(), cfg, &fakeLocker{}, store, queue, notifications)
}

func TestWorker_DeliversDueReminders(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 10, 4, 50, 0, 0, time.UTC)
	uc := newTestReminderUsecase(store, now)
	ctx := context.Background()

	_, err := uc.ScheduleReminder(ctx, scheduleRequest(now.Add(10*time.Minute)))
	require.NoError(t, err)
	_, err = uc.ScheduleReminder(ctx, scheduleRequest(now.Add(3*time.Hour)))
	require.NoError(t, err)

	queue := &fakeQueue{}
	notifications := new(mockNotifications)
	var sent *requests.SendReminderEmail
	notifications.On("SendReminder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*requests.SendReminderEmail) }).
		Return(&responses.SendEmail{Success: true}, nil).Once()

	worker := newTestWorker(t, store, queue, notifications)
	worker.runOnce(ctx, now)

	notifications.AssertExpectations(t)
	require.NotNil(t, sent)
	assert.Equal(t, "asha@example.com", sent.Email)
	assert.Equal(t, "2026-03-10", sent.AppointmentDate)
	assert.Equal(t, "10:30 AM", sent.AppointmentTime)
	assert.Len(t, queue.acked, 1)
	assert.Empty(t, queue.ready)

	remaining, err := store.ClaimDue(ctx, now.Add(4*time.Hour), 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestWorker_FailedSendsRetryThenDeadLetter(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2026, 3, 10, 4, 50, 0, 0, time.UTC)
	uc := newTestReminderUsecase(store, now)
	ctx := context.Background()

	_, err := uc.ScheduleReminder(ctx, scheduleRequest(now.Add(5*time.Minute)))
	require.NoError(t, err)

	queue := &fakeQueue{}
	notifications := new(mockNotifications)
	notifications.On("SendReminder", mock.Anything, mock.Anything).
		Return(nil, errors.New("provider unavailable"))

	worker := newTestWorker(t, store, queue, notifications)

	worker.runOnce(ctx, now)
	require.Len(t, queue.ready, 1)
	assert.Equal(t, 1, queue.ready[0].Message.FailedCount)
	assert.Equal(t, "provider unavailable", queue.ready[0].Message.LastError)
	assert.Empty(t, queue.dead)

	worker.runOnce(ctx, now.Add(time.Minute))
	assert.Empty(t, queue.ready)
	require.Len(t, queue.dead, 1)
	assert.Equal(t, 2, queue.dead[0].FailedCount)
	assert.Len(t, queue.acked, 2)
}

func TestWorker_DropsRemindersForStartedAppointments(t *testing.T) {
	store := newTestStore(t)
	scheduledAt := time.Date(2026, 3, 10, 4, 50, 0, 0, time.UTC)
	uc := newTestReminderUsecase(store, scheduledAt)
	ctx := context.Background()

	_, err := uc.ScheduleReminder(ctx, scheduleRequest(scheduledAt.Add(30*time.Minute)))
	require.NoError(t, err)

	queue := &fakeQueue{}
	notifications := new(mockNotifications)
	worker := newTestWorker(t, store, queue, notifications)

	// the worker was down until after the appointment started
	worker.runOnce(ctx, scheduledAt.Add(2*time.Hour))

	notifications.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything)
	assert.Empty(t, queue.ready)
	assert.Empty(t, queue.dead)
	assert.Len(t, queue.acked, 1)

	remaining, err := store.ClaimDue(ctx, scheduledAt.Add(4*time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestWorker_SkipsTickWhenLockHeld(t *testing.T) {
	store := newTestStore(t)
	queue := &fakeQueue{}
	notifications := new(mockNotifications)

	worker := newTestWorker(t, store, queue, notifications)
	worker.locker = &fakeLocker{held: true}
	worker.runOnce(context.Background(), time.Now())

	notifications.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything)
}
