package mailer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mknhm1/itemproject/internal/domain"
)

// Log writes messages to the logger instead of sending them.
// Used for local development.
type Log struct {
	log *slog.Logger
}

// NewLog creates a logging transport.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With("transport", "mail_log")}
}

// Send logs msg and always succeeds.
func (l *Log) Send(ctx context.Context, msg domain.MailMessage) error {
	l.log.InfoContext(ctx, "mail message",
		slog.String("from", msg.From),
		slog.String("to", strings.Join(msg.To, ",")),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
