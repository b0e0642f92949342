package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mknhm1/itemproject/internal/domain"
)

// Submit validates the form, renders the operator notification and sends
// it synchronously. A transport failure is reported as domain.ErrTransport.
func (s *Service) Submit(ctx context.Context, input SubmitInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	sub := input.submission()
	msg := Render(sub, s.from, s.to)

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	s.log.InfoContext(ctx, "contact message sent",
		slog.Int("recipients", len(msg.To)),
		slog.Int("message_len", len(sub.Message)),
	)

	return nil
}

// Render formats a submission with the fixed notification template. The
// body embeds every field verbatim; the subject header gets a trimmed title.
func Render(sub domain.ContactSubmission, from string, to []string) domain.MailMessage {
	return domain.MailMessage{
		Subject: "Contact: " + strings.TrimSpace(sub.Title),
		Body: fmt.Sprintf("Sender name: %s\nEmail: %s\nTitle: %s\nMessage:\n%s",
			sub.Name, sub.Email, sub.Title, sub.Message),
		From: from,
		To:   to,
	}
}
