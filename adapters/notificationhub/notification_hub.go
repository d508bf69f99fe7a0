package notificationhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SeaCloudHub/patterns/domain/notification"
	"github.com/SeaCloudHub/patterns/pkg/config"
	"github.com/go-resty/resty/v2"
)

const notificationsPath = "/api/internal/notifications"

type NotificationHub struct {
	client *resty.Client
	from   string
	token  string
}

func NewNotificationHub(cfg *config.Config) (*NotificationHub, error) {
	u, err := url.Parse(cfg.NotificationHub.Endpoint)
	if err != nil {
		return nil, err
	}

	return &NotificationHub{
		client: resty.New().SetBaseURL(u.String()),
		from:   cfg.NotificationHub.From,
		token:  cfg.NotificationHub.Token,
	}, nil
}

func (n *NotificationHub) pushNotification(ctx context.Context, notificationReq NotificationRequest) error {
	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notificationReq)

	if n.token != "" {
		req.SetAuthToken(n.token)
	}

	resp, err := req.Post(notificationsPath)
	if err != nil {
		return err
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("failed to push notification: %s", resp.Status())
	}

	return nil
}

func (n *NotificationHub) SendNotification(ctx context.Context, notifications []notification.Notification) error {
	notificationReq := NotificationRequest{
		Notifications: notifications,
		From:          n.from,
	}
	return n.pushNotification(ctx, notificationReq)
}
