package audit

import (
	"context"
	"errors"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error) {
	ret := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return amqp091.Queue{Name: name}, ret.Error(0)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	ret := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return ret.Error(0)
}

func TestRabbitPublisher(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Publishes a persistent JSON message to the queue", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("QueueDeclare", "orca_audit", true, false, false, false, amqp091.Table(nil)).Return(nil)

		var published amqp091.Publishing
		channel.On("PublishWithContext", ctx, "", "orca_audit", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		publisher, err := NewChannelPublisher(channel, "orca_audit", zap.NewNop())
		require.NoError(t, err)

		event := &models.AuditEvent{
			Action:  models.AuditActionClinicianRolesUpdated,
			Actor:   "jane@tidepool.org",
			Target:  "clinics/c1/clinicians/u1",
			Details: map[string]string{"roles": "CLINIC_ADMIN"},
		}
		require.NoError(t, publisher.Publish(ctx, event))

		assert.NotEmpty(t, event.ID, "event id is assigned on publish")
		assert.False(t, event.Time.IsZero())
		assert.Equal(t, "req-1", event.RequestID)

		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, published.ContentType)
		assert.Equal(t, event.ID, published.MessageId)

		var decoded models.AuditEvent
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, "jane@tidepool.org", decoded.Actor)
		assert.Equal(t, "CLINIC_ADMIN", decoded.Details["roles"])
		channel.AssertExpectations(t)
	})

	t.Run("Publish failure is reported", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("QueueDeclare", "orca_audit", true, false, false, false, amqp091.Table(nil)).Return(nil)
		channel.On("PublishWithContext", ctx, "", "orca_audit", false, false, mock.Anything).Return(errors.New("channel closed"))

		publisher, err := NewChannelPublisher(channel, "orca_audit", zap.NewNop())
		require.NoError(t, err)

		err = publisher.Publish(ctx, &models.AuditEvent{Action: models.AuditActionReportGenerated})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "channel closed")
	})

	t.Run("Queue declare failure fails construction", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("QueueDeclare", "orca_audit", true, false, false, false, amqp091.Table(nil)).Return(errors.New("access refused"))

		_, err := NewChannelPublisher(channel, "orca_audit", zap.NewNop())
		assert.Error(t, err)
	})
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewAuditPublisher(nil, "orca_audit", zap.NewNop())
	require.NoError(t, err)

	event := &models.AuditEvent{Action: models.AuditActionDataExported}
	assert.NoError(t, publisher.Publish(context.Background(), event))
	assert.NotEmpty(t, event.ID)
}
