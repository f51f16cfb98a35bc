package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Resend sends e-mail through the Resend API.
type Resend struct {
	client *resend.Client
}

func NewResend(apiKey string) *Resend {
	return &Resend{client: resend.NewClient(apiKey)}
}

// New returns a Resend notifier, or Disabled when apiKey is empty.
func New(apiKey string) Notifier {
	if apiKey == "" {
		return Disabled{}
	}
	return NewResend(apiKey)
}

func (r *Resend) Send(ctx context.Context, msg Message) error {
	_, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}
