// Package postmark delivers rendered emails through the Postmark API.
//
//	var cfg postmark.Config
//	config.MustLoad(&cfg)
//
//	client, err := postmark.New(cfg)
//	if err != nil {
//		return err
//	}
//	svc := mailer.New(client)
//
// Messages go to POSTMARK_MESSAGE_STREAM ("outbound" unless set) with open
// tracking and HTML-only link tracking enabled. The reply-to address is
// SUPPORT_EMAIL. API failures are returned wrapped in
// email.ErrFailedToSendEmail.
package postmark
