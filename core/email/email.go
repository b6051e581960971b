package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender delivers a rendered HTML message to a single recipient.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one outgoing message.
// The sanitize tags are applied by callers that accept user input
// (see sanitizer.SanitizeStruct) before Validate runs.
type SendEmailParams struct {
	SendTo   string `json:"send_to" sanitize:"email"`
	Subject  string `json:"subject" sanitize:"subject,max:998"`
	BodyHTML string `json:"-"`
	Tag      string `json:"tag,omitempty" sanitize:"tag"`
}

// Validate reports the first missing or malformed field, wrapped in ErrInvalidParams.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !IsValidEmail(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.ContainsAny(p.Subject, "\r\n") {
		return fmt.Errorf("%w: Subject must be a single line", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks the address against a simple pattern. It is not RFC 5322 complete.
func IsValidEmail(address string) bool {
	return emailRegex.MatchString(address)
}
