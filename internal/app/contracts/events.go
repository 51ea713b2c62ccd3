package contracts

import "context"

type EventPublisher interface {
	Publish(ctx context.Context, queue, eventType string, payload interface{}) error
}
