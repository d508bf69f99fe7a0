package listeners

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SeaCloudHub/patterns/domain/pubsub"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type FileEvent struct {
	ID         uuid.UUID `json:"id"`
	Event      string    `json:"event"`
	File       string    `json:"file"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublishListener forwards editor events to a pubsub channel as JSON.
type PublishListener struct {
	channel string
	service pubsub.Service
	now     func() time.Time
}

func NewPublishListener(channel string, service pubsub.Service) *PublishListener {
	return &PublishListener{
		channel: channel,
		service: service,
		now:     time.Now,
	}
}

func (l *PublishListener) Update(eventType string, filename string) error {
	payload, err := json.Marshal(FileEvent{
		ID:         uuid.New(),
		Event:      eventType,
		File:       filename,
		OccurredAt: l.now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal file event")
	}

	if err := l.service.Publish(context.Background(), l.channel, payload); err != nil {
		return errors.Wrapf(err, "publish to %s", l.channel)
	}

	return nil
}
