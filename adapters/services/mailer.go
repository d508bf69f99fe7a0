package services

import (
	"context"
	"fmt"
	"io"

	"github.com/SeaCloudHub/patterns/domain/notification"
)

// ConsoleMailer prints notifications instead of delivering them.
type ConsoleMailer struct {
	w io.Writer
}

func NewConsoleMailer(w io.Writer) *ConsoleMailer {
	return &ConsoleMailer{w: w}
}

func (m *ConsoleMailer) SendNotification(ctx context.Context, notifications []notification.Notification) error {
	for _, n := range notifications {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(m.w, "Email to %s: %s\n", n.Recipient, n.Content); err != nil {
			return fmt.Errorf("write email: %w", err)
		}
	}

	return nil
}
