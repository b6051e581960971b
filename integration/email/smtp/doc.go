// Package smtp delivers rendered emails over SMTP.
//
//	client, err := smtp.New(smtp.Config{
//		Host:         "smtp.example.com",
//		Port:         587,
//		Username:     "mailer",
//		Password:     os.Getenv("SMTP_PASSWORD"),
//		TLSMode:      "starttls",
//		SenderEmail:  "news@example.com",
//		SenderName:   "Example News",
//		SupportEmail: "support@example.com",
//	})
//
// TLSMode is "starttls" (upgrade after connecting), "tls" (implicit TLS,
// usually port 465) or "plain". Every connection is opened with the caller's
// context and SMTP_DIAL_TIMEOUT.
//
// BuildMessage produces the RFC 5322 message that SendEmail transmits. The
// subject is Q-encoded and stripped of CR and LF, and the tag travels in an
// X-Tag header.
package smtp
