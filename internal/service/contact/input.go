package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/mknhm1/itemproject/internal/domain"
)

const (
	MaxNameLen    = 100
	MaxTitleLen   = 200
	MaxMessageLen = 5000
	MaxEmailLen   = 254
)

// SubmitInput holds a contact form submission.
type SubmitInput struct {
	Name    string
	Email   string
	Title   string
	Message string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	errs = checkText(errs, "name", i.Name, MaxNameLen)

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case utf8.RuneCountInString(email) > MaxEmailLen:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !isBareAddress(email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	errs = checkText(errs, "title", i.Title, MaxTitleLen)
	errs = checkText(errs, "message", i.Message, MaxMessageLen)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// submission keeps the fields exactly as entered. Whitespace is only
// ignored by the emptiness and length checks.
func (i SubmitInput) submission() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    i.Name,
		Email:   i.Email,
		Title:   i.Title,
		Message: i.Message,
	}
}

func checkText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(v) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

// isBareAddress accepts "user@host" only; display names and angle
// brackets are rejected so the value can be echoed into the mail body as is.
func isBareAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}
