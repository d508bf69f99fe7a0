package pubsub

import "context"

type Service interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}
