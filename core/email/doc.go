// Package email defines the delivery contract shared by every mail provider
// in this module, plus a development sender that writes messages to disk.
//
// # Usage
//
//	sender := email.NewDevSender("./tmp/emails")
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Monthly digest",
//		BodyHTML: html,
//		Tag:      "digest",
//	})
//
// Production providers live under integration/email (smtp, postmark) and
// return the same sentinel errors.
//
// # Parameters
//
// SendEmailParams.Validate requires a syntactically valid recipient, a
// single line subject and a non-empty body. Tag is optional and is passed
// to providers that support message tagging.
//
// # Development Mode
//
// DevSender stores each message as two files with a shared base name:
//
//	./tmp/emails/2025_03_14_150926_digest_1f0c2a9b.html
//	./tmp/emails/2025_03_14_150926_digest_1f0c2a9b.json
//
// The JSON file is an Envelope holding the message ID, timestamp, headers
// and body size.
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, email.ErrInvalidParams):
//		// caller supplied bad input
//	case errors.Is(err, email.ErrFailedToSendEmail):
//		// provider or transport failure
//	case errors.Is(err, email.ErrInvalidConfig):
//		// provider misconfigured at startup
//	}
//
// Body rendering for templ components lives in the templates subpackage.
package email
