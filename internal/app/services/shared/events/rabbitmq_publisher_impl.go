package events

import (
	"context"
	"panel-service/internal/app/contracts"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	mu      sync.Mutex
	Channel *amqp091.Channel
	Log     *zap.Logger
}

// Envelope is the body published for every domain event.
type Envelope struct {
	EventType  string      `json:"event_type"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &rabbitMQPublisher{
		Channel: channel,
		Log:     logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queue, eventType string, payload interface{}) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	p.Log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queue),
	)

	body, err := json.Marshal(Envelope{
		EventType:  eventType,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"event_type":   eventType,
		},
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}
	return nil
}
