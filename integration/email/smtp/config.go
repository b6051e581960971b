package smtp

import "time"

// Config holds SMTP server configuration.
// TLSMode is one of starttls, tls or plain.
type Config struct {
	Host         string        `env:"SMTP_HOST,required"`
	Port         int           `env:"SMTP_PORT" envDefault:"587"`
	Username     string        `env:"SMTP_USERNAME,required"`
	Password     string        `env:"SMTP_PASSWORD,required"`
	TLSMode      string        `env:"SMTP_TLS_MODE" envDefault:"starttls"`
	DialTimeout  time.Duration `env:"SMTP_DIAL_TIMEOUT" envDefault:"10s"`
	SenderEmail  string        `env:"SENDER_EMAIL,required"`
	SenderName   string        `env:"SENDER_NAME"`
	SupportEmail string        `env:"SUPPORT_EMAIL,required"`
}
