// Package notifier delivers kudos emails.
package notifier

import (
	"context"

	"go.uber.org/zap"
)

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Notifier sends a single email. Implementations must be safe for concurrent use.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// LogNotifier only logs messages. It is used when no mail API key is configured.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log.Named("notifier.log")}
}

// Send implements Notifier.
func (n *LogNotifier) Send(_ context.Context, msg Message) error {
	n.log.Infow("email skipped, no mail provider configured", "to", msg.To, "subject", msg.Subject)
	return nil
}
