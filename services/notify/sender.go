package notify

import (
	"context"
	"fmt"

	"travel-booking/logger"

	"github.com/resend/resend-go/v2"
)

// Message is one outgoing email
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers a message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ResendSender sends emails through the Resend API
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	logger.Debug("Notification sent, message id " + sent.Id)
	return nil
}
