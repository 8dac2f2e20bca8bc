package reminders

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/shared/reminderqueue"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reminderQueue is satisfied by *reminderqueue.Service.
type reminderQueue interface {
	Enqueue(ctx context.Context, in *reminderqueue.EnqueueInput) (*reminderqueue.EnqueueOutput, error)
	Reenqueue(ctx context.Context, in *reminderqueue.ReenqueueInput) (*reminderqueue.ReenqueueOutput, error)
	EnqueueToDeadQueue(ctx context.Context, in *reminderqueue.EnqueueToDLQInput) (*reminderqueue.EnqueueToDLQOutput, error)
	FetchN(ctx context.Context, in *reminderqueue.FetchNInput) (*reminderqueue.FetchNOutput, error)
	AckMessage(ctx context.Context, in *reminderqueue.AckMessageInput) (*reminderqueue.AckMessageOutput, error)
}

// Worker moves due reminder jobs from the store onto the delivery queue and
// sends what is queued. Only the instance holding the worker lock runs a tick.
type Worker struct {
	log           *zap.Logger
	cfg           *config.InternalConfig
	locker        contracts.LockerService
	store         contracts.ReminderStore
	queue         reminderQueue
	notifications contracts.NotificationUsecase
	location      *time.Location
	cron          *cron.Cron
	runCtx        context.Context
	cancel        context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	store contracts.ReminderStore,
	queue *reminderqueue.Service,
	notifications contracts.NotificationUsecase,
) *Worker {
	return newWorker(log, cfg, lockerSvc, store, queue, notifications)
}

func newWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	store contracts.ReminderStore,
	queue reminderQueue,
	notifications contracts.NotificationUsecase,
) *Worker {
	return &Worker{
		log:           log,
		cfg:           cfg,
		locker:        lockerSvc,
		store:         store,
		queue:         queue,
		notifications: notifications,
		location:      utils.LoadLocation(cfg.App.Timezone),
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cfg.Reminder.WorkerCronSpec, func() { w.runOnce(w.runCtx, time.Now()) })
	if err != nil {
		w.log.Warn("reminders.Worker invalid cron spec, falling back to @every 1m",
			zap.String("cron_spec", w.cfg.Reminder.WorkerCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@every 1m", func() { w.runOnce(w.runCtx, time.Now()) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running tick to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time) {
	requestID := utils.GenerateRequestID()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	ttl := time.Duration(w.cfg.Reminder.LockExpirationInSeconds) * time.Second
	if ttl < time.Second {
		ttl = time.Second
	}
	acquired, lockVal, err := w.locker.TryLock(ctx, constvars.RedisKeyReminderWorkerLock, ttl)
	if err != nil {
		w.log.Warn("reminders.Worker lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("reminders.Worker lock not acquired, another instance is running",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyReminderWorkerLock, lockVal); err != nil {
			w.log.Error("reminders.Worker unlock failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	w.promoteDueJobs(ctx, now)
	w.deliverQueued(ctx, now)
}

func (w *Worker) promoteDueJobs(ctx context.Context, now time.Time) {
	requestID := utils.GetRequestID(ctx)

	limit := w.cfg.Reminder.ClaimBatchSize
	if limit <= 0 {
		limit = 100
	}
	jobs, err := w.store.ClaimDue(ctx, now, limit)
	if err != nil {
		w.log.Error("reminders.Worker error claiming due jobs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	w.log.Info("reminders.Worker claimed due jobs",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingClaimedCountKey, len(jobs)),
	)

	for i := range jobs {
		job := jobs[i]
		message := reminderqueue.ReminderQueueMessage{ID: job.ID, Job: job}
		if _, err := w.queue.Enqueue(ctx, &reminderqueue.EnqueueInput{Message: message}); err != nil {
			w.log.Error("reminders.Worker error enqueueing job, returning it to the store",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReminderJobIDKey, job.ID),
				zap.Error(err),
			)
			if err := w.store.Add(ctx, &job); err != nil {
				w.log.Error("reminders.Worker error returning job to the store",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingReminderJobIDKey, job.ID),
					zap.Error(err),
				)
			}
		}
	}
}

func (w *Worker) deliverQueued(ctx context.Context, now time.Time) {
	max := w.cfg.Reminder.MaxQueue
	if max <= 0 {
		max = 1
	}

	var out *reminderqueue.FetchNOutput
	err := utils.LogOperation(w.log, "reminders.Worker.FetchN", utils.GetRequestID(ctx), func() error {
		var err error
		out, err = w.queue.FetchN(ctx, &reminderqueue.FetchNInput{Max: max})
		return err
	})
	if err != nil {
		return
	}

	for _, item := range out.Items {
		w.processItem(ctx, item, now)
	}
}

// processItem acks and drops a reminder whose appointment already started.
func (w *Worker) processItem(ctx context.Context, item reminderqueue.QueuedItem, now time.Time) {
	requestID := utils.GetRequestID(ctx)
	msg := item.Message

	if !msg.Job.AppointmentAt.After(now) {
		if _, err := w.queue.AckMessage(ctx, &reminderqueue.AckMessageInput{DeliveryTag: item.DeliveryTag}); err != nil {
			w.log.Warn("reminders.Worker ack failed for stale reminder",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
				zap.Error(err),
			)
		}
		w.log.Info("reminders.Worker dropped reminder, appointment already started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
			zap.String(constvars.LoggingAppointmentIDKey, msg.Job.AppointmentID),
			zap.Time(constvars.LoggingReminderTimeKey, msg.Job.AppointmentAt),
		)
		return
	}

	_, err := w.notifications.SendReminder(ctx, w.reminderEmail(msg.Job))
	if err != nil {
		msg.LastError = err.Error()
		w.requeueOnError(ctx, item, msg)
		return
	}

	if _, err := w.queue.AckMessage(ctx, &reminderqueue.AckMessageInput{DeliveryTag: item.DeliveryTag}); err != nil {
		w.log.Warn("reminders.Worker ack failed after send",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
			zap.Error(err),
		)
	}
	w.log.Info("reminders.Worker reminder sent",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
		zap.String(constvars.LoggingAppointmentIDKey, msg.Job.AppointmentID),
	)
}

// requeueOnError moves a message to the DLQ once it has failed ThrottleRetry
// times and back to the tail of the queue otherwise.
func (w *Worker) requeueOnError(ctx context.Context, item reminderqueue.QueuedItem, msg reminderqueue.ReminderQueueMessage) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	msg.FailedCount++

	if msg.FailedCount >= w.cfg.Reminder.ThrottleRetry {
		if _, err := w.queue.EnqueueToDeadQueue(ctx, &reminderqueue.EnqueueToDLQInput{Message: msg}); err != nil {
			w.log.Error("reminders.Worker enqueue to DLQ failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
				zap.Error(err),
			)
			return
		}
		_, _ = w.queue.AckMessage(ctx, &reminderqueue.AckMessageInput{DeliveryTag: item.DeliveryTag})
		w.log.Warn("reminders.Worker moved reminder to DLQ",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
			zap.Int(constvars.LoggingFailedCountKey, msg.FailedCount),
			zap.String(constvars.LoggingErrorMessageKey, msg.LastError),
		)
		return
	}

	if _, err := w.queue.Reenqueue(ctx, &reminderqueue.ReenqueueInput{Message: msg}); err != nil {
		w.log.Error("reminders.Worker reenqueue failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
			zap.Error(err),
		)
		return
	}
	_, _ = w.queue.AckMessage(ctx, &reminderqueue.AckMessageInput{DeliveryTag: item.DeliveryTag})
	w.log.Info("reminders.Worker send failed, requeued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReminderJobIDKey, msg.ID),
		zap.Int(constvars.LoggingFailedCountKey, msg.FailedCount),
	)
}

func (w *Worker) reminderEmail(job models.ReminderJob) *requests.SendReminderEmail {
	local := job.AppointmentAt.In(w.location)
	return &requests.SendReminderEmail{
		Email:            job.Email,
		PatientName:      job.PatientName,
		DoctorName:       job.DoctorName,
		Specialty:        job.Specialty,
		AppointmentDate:  local.Format(constvars.AppointmentDateLayout),
		AppointmentTime:  local.Format(constvars.AppointmentTimeLayout),
		ConsultationLink: job.ConsultationLink,
	}
}
