// Package notify delivers outbound e-mail notifications.
package notify

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Disabled.Send.
var ErrNotConfigured = errors.New("notification provider not configured")

type Message struct {
	Subject string
	HTML    string
	To      string
	From    string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Disabled is used when no provider key is configured. Every send fails
// with ErrNotConfigured so callers can log it.
type Disabled struct{}

func (Disabled) Send(context.Context, Message) error { return ErrNotConfigured }
