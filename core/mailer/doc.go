// Package mailer connects the block renderer to email delivery.
//
//	svc := mailer.New(sender,
//		mailer.WithLogger(log),
//		mailer.WithStorage(archive),
//	)
//
//	res, err := svc.Send(ctx, mailer.Message{
//		To:       "user@example.com",
//		Subject:  "Monthly digest",
//		Tag:      "digest",
//		Document: doc,
//	})
//
// Send normalizes the envelope through sanitizer tags, renders the document
// through its templ component, validates the resulting email.SendEmailParams
// and delivers it. With storage configured, the body is archived under
// sent/YYYY/MM/DD/<uuid>.html and the Result carries its key and URL.
package mailer
