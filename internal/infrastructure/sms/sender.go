// Package sms provides the outbound SMS collaborator boundary.
// Actual delivery is an external concern; the default implementation
// only logs the message.
package sms

import (
	"context"

	"officex/pkg/logger"
)

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// LogSender writes messages to the log instead of sending them.
// Used in development and as the default when no gateway is configured.
type LogSender struct{}

// NewLogSender creates a logging sender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, to, body string) error {
	logger.Info(ctx, "sms (log only)",
		"to", to,
		"body", body,
	)
	return nil
}

var _ Sender = (*LogSender)(nil)
