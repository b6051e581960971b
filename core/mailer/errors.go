package mailer

import "errors"

// Errors returned by Service.
var (
	ErrRenderEmpty = errors.New("document has no renderable blocks")
	ErrNoSender    = errors.New("no email sender configured")
)
