package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/blockmail/core/blocks"
	"github.com/dmitrymomot/blockmail/core/email"
	"github.com/dmitrymomot/blockmail/core/email/templates"
	"github.com/dmitrymomot/blockmail/core/logger"
	"github.com/dmitrymomot/blockmail/core/sanitizer"
	"github.com/dmitrymomot/blockmail/core/storage"
)

// Message is a document addressed to one recipient.
type Message struct {
	To       string          `json:"to" sanitize:"email"`
	Subject  string          `json:"subject" sanitize:"subject,max:998"`
	Tag      string          `json:"tag,omitempty" sanitize:"tag"`
	Document blocks.Document `json:"document"`
}

// Result describes a delivered message.
type Result struct {
	Bytes      int    `json:"bytes"`
	ArchiveKey string `json:"archive_key,omitempty"`
	ArchiveURL string `json:"archive_url,omitempty"`
}

// Service renders documents and hands them to an email.EmailSender.
type Service struct {
	sender        email.EmailSender
	store         storage.Storage
	log           *slog.Logger
	archivePrefix string
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStorage archives every delivered body to store.
func WithStorage(store storage.Storage) Option {
	return func(s *Service) { s.store = store }
}

// WithArchivePrefix sets the key prefix for archived bodies. Default "sent".
func WithArchivePrefix(prefix string) Option {
	return func(s *Service) { s.archivePrefix = strings.Trim(prefix, "/") }
}

// WithClock overrides the time source used for archive keys.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Service around sender.
func New(sender email.EmailSender, opts ...Option) *Service {
	s := &Service{
		sender:        sender,
		log:           slog.New(slog.DiscardHandler),
		archivePrefix: "sent",
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render turns doc into an email body. A document in which no top-level
// block has a known type yields ErrRenderEmpty instead of an empty shell.
func (s *Service) Render(ctx context.Context, doc blocks.Document) (string, error) {
	if !s.hasContent(ctx, doc.Blocks) {
		return "", ErrRenderEmpty
	}
	html, err := templates.Render(ctx, blocks.Component(doc))
	if err != nil {
		return "", err
	}
	return html, nil
}

// Send sanitizes the envelope, renders the document, delivers it and, when
// storage is configured, archives the body. Archive failures are logged and
// do not fail the send.
func (s *Service) Send(ctx context.Context, msg Message) (*Result, error) {
	if s.sender == nil {
		return nil, ErrNoSender
	}
	start := time.Now()

	if err := sanitizer.SanitizeStruct(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", email.ErrInvalidParams, err)
	}

	html, err := s.Render(ctx, msg.Document)
	if err != nil {
		return nil, err
	}

	params := email.SendEmailParams{
		SendTo:   msg.To,
		Subject:  msg.Subject,
		BodyHTML: html,
		Tag:      msg.Tag,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	log := s.log.With(logger.Component("mailer"), logger.Recipient(msg.To), logger.Tag(msg.Tag))

	if err := s.sender.SendEmail(ctx, params); err != nil {
		log.ErrorContext(ctx, "email delivery failed", logger.Error(err))
		return nil, err
	}

	res := &Result{Bytes: len(html)}
	if s.store != nil {
		key := s.archiveKey()
		if obj, err := s.store.Put(ctx, key, strings.NewReader(html), "text/html; charset=utf-8"); err != nil {
			log.WarnContext(ctx, "archive failed", logger.Error(err), slog.String("key", key))
		} else {
			res.ArchiveKey = obj.Key
			res.ArchiveURL = s.store.URL(obj.Key)
		}
	}

	log.InfoContext(ctx, "email sent",
		logger.Blocks(len(msg.Document.Blocks)),
		logger.Bytes(res.Bytes),
		logger.Elapsed(start),
	)
	return res, nil
}

// archiveKey is <prefix>/YYYY/MM/DD/<uuid>.html.
func (s *Service) archiveKey() string {
	day := s.now().UTC().Format("2006/01/02")
	key := day + "/" + uuid.NewString() + ".html"
	if s.archivePrefix == "" {
		return key
	}
	return s.archivePrefix + "/" + key
}

// hasContent reports whether any block has a known type. Unknown blocks
// are logged because the renderer drops them silently.
func (s *Service) hasContent(ctx context.Context, bs []blocks.Block) bool {
	known := false
	for _, b := range bs {
		if b.Type.Known() {
			known = true
			continue
		}
		s.log.DebugContext(ctx, "dropping unknown block", logger.Component("mailer"), logger.BlockType(string(b.Type)))
	}
	return known
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, email.ErrInvalidParams) ||
		errors.Is(err, ErrRenderEmpty) ||
		errors.Is(err, blocks.ErrInvalidDocument)
}
