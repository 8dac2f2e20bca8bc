package reminderqueue

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "reminder_notification_queue"
	DeadLetterQueueName = "reminder_notification_dlq"
)

// ReminderQueueMessage represents the payload stored in RabbitMQ.
type ReminderQueueMessage struct {
	ID          string             `json:"id"`
	Job         models.ReminderJob `json:"job"`
	FailedCount int                `json:"failed_count"`
	LastError   string             `json:"last_error,omitempty"`
}

// channel is the subset of *amqp.Channel the service uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Get(queue string, autoAck bool) (amqp.Delivery, bool, error)
	Ack(tag uint64, multiple bool) error
}

// Service manages the reminder delivery queue and its dead-letter queue.
type Service struct {
	ch       channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares durable queues, enables confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range []string{StandardQueueName, DeadLetterQueueName} {
		_, err = ch.QueueDeclare(
			queue, // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

type EnqueueInput struct {
	Message ReminderQueueMessage
}

type EnqueueOutput struct{}

type EnqueueToDLQInput struct {
	Message ReminderQueueMessage
}

type EnqueueToDLQOutput struct{}

// ReenqueueInput carries a message going back to the tail of the standard queue.
type ReenqueueInput struct {
	Message ReminderQueueMessage
}

type ReenqueueOutput struct{}

type FetchNInput struct {
	Max int
}

// QueuedItem represents a fetched delivery and its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Message     ReminderQueueMessage
}

type FetchNOutput struct {
	Items []QueuedItem
}

type AckMessageInput struct {
	DeliveryTag uint64
}

type AckMessageOutput struct{}

func (s *Service) Enqueue(ctx context.Context, in *EnqueueInput) (*EnqueueOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ReminderQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReminderJobIDKey, in.Message.ID),
	)

	if err := s.publishMessage(ctx, StandardQueueName, in.Message); err != nil {
		return nil, err
	}
	return &EnqueueOutput{}, nil
}

func (s *Service) Reenqueue(ctx context.Context, in *ReenqueueInput) (*ReenqueueOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ReminderQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReminderJobIDKey, in.Message.ID),
		zap.Int(constvars.LoggingFailedCountKey, in.Message.FailedCount),
	)

	if err := s.publishMessage(ctx, StandardQueueName, in.Message); err != nil {
		return nil, err
	}
	return &ReenqueueOutput{}, nil
}

func (s *Service) EnqueueToDeadQueue(ctx context.Context, in *EnqueueToDLQInput) (*EnqueueToDLQOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Warn("ReminderQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReminderJobIDKey, in.Message.ID),
		zap.Int(constvars.LoggingFailedCountKey, in.Message.FailedCount),
	)

	if err := s.publishMessage(ctx, DeadLetterQueueName, in.Message); err != nil {
		return nil, err
	}
	return &EnqueueToDLQOutput{}, nil
}

// FetchN retrieves up to N messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, in *FetchNInput) (*FetchNOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	n := in.Max
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQFetchMessage(err, StandardQueueName)
		}
		if !ok {
			break
		}
		var payload ReminderQueueMessage
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// poison message, park it so it is not redelivered forever
			s.log.Error("ReminderQueue.FetchN undecodable message moved to DLQ",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			_ = s.ch.Ack(d.DeliveryTag, false)
			_ = s.publishRaw(ctx, DeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Message: payload})
	}

	s.log.Info("ReminderQueue.FetchN fetched messages",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFetchedCountKey, len(items)),
	)
	return &FetchNOutput{Items: items}, nil
}

func (s *Service) AckMessage(ctx context.Context, in *AckMessageInput) (*AckMessageOutput, error) {
	if err := s.ch.Ack(in.DeliveryTag, false); err != nil {
		return nil, exceptions.ErrRabbitMQAckMessage(err)
	}
	return &AckMessageOutput{}, nil
}

func (s *Service) publishMessage(ctx context.Context, queue string, message ReminderQueueMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

// publishRaw publishes a persistent message and waits for the broker confirm.
func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
