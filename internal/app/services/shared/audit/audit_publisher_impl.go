package audit

import (
	"context"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the part of *amqp091.Channel the publisher needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitPublisher struct {
	Channel Channel
	Queue   string
	Log     *zap.Logger
}

// NewAuditPublisher opens a channel on the connection and declares the durable
// queue. A nil connection gives a publisher that only logs.
func NewAuditPublisher(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.AuditPublisher, error) {
	if connection == nil {
		return NewNoopPublisher(logger), nil
	}

	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}
	return NewChannelPublisher(channel, queue, logger)
}

func NewChannelPublisher(channel Channel, queue string, logger *zap.Logger) (contracts.AuditPublisher, error) {
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queue)
	}
	return &rabbitPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *rabbitPublisher) Publish(ctx context.Context, event *models.AuditEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	stamp(event, requestID)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    event.ID,
		Timestamp:    event.Time,
		Type:         event.Action,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("rabbitPublisher.Publish error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, p.Queue),
			zap.String(constvars.LoggingAuditActionKey, event.Action),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("rabbitPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAuditActionKey, event.Action),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) contracts.AuditPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, event *models.AuditEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	stamp(event, requestID)
	p.Log.Info("noopPublisher.Publish audit event",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAuditActionKey, event.Action),
		zap.String("actor", event.Actor),
		zap.String("target", event.Target),
	)
	return nil
}

func stamp(event *models.AuditEvent, requestID string) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = requestID
	}
}
