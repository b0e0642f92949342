package contact

import (
	"context"
	"log/slog"

	"github.com/mknhm1/itemproject/internal/domain"
)

type mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// Service turns contact form submissions into operator mail.
type Service struct {
	mailer mailer
	from   string
	to     []string
	log    *slog.Logger
}

// NewService creates a new contact Service sending from the given address
// to the given recipients.
func NewService(log *slog.Logger, m mailer, from string, to []string) *Service {
	return &Service{
		mailer: m,
		from:   from,
		to:     append([]string(nil), to...),
		log:    log.With("service", "contact"),
	}
}
