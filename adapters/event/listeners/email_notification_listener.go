package listeners

import (
	"context"

	"github.com/SeaCloudHub/patterns/domain/notification"
	"github.com/pkg/errors"
)

type EmailNotificationListener struct {
	email   string
	service notification.Service
}

func NewEmailNotificationListener(email string, service notification.Service) *EmailNotificationListener {
	return &EmailNotificationListener{
		email:   email,
		service: service,
	}
}

func (l *EmailNotificationListener) Update(eventType string, filename string) error {
	n := notification.Notification{
		Recipient: l.email,
		Subject:   "File " + eventType,
		Content:   describe(eventType, filename),
	}

	if err := l.service.SendNotification(context.Background(), []notification.Notification{n}); err != nil {
		return errors.Wrapf(err, "email %s", l.email)
	}

	return nil
}
