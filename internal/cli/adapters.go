package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/blockmail/core/config"
	"github.com/dmitrymomot/blockmail/core/email"
	"github.com/dmitrymomot/blockmail/core/health"
	"github.com/dmitrymomot/blockmail/core/logger"
	"github.com/dmitrymomot/blockmail/core/mailer"
	"github.com/dmitrymomot/blockmail/core/preview"
	"github.com/dmitrymomot/blockmail/core/storage"
	"github.com/dmitrymomot/blockmail/integration/database/redis"
	"github.com/dmitrymomot/blockmail/integration/email/postmark"
	"github.com/dmitrymomot/blockmail/integration/email/smtp"
	"github.com/dmitrymomot/blockmail/integration/storage/s3"
)

func (c *CLI) newSender() (email.EmailSender, error) {
	switch c.cfg.EmailProvider {
	case providerDev, "":
		c.Logger.Debug("using dev sender", logger.Key("dir", c.cfg.DevEmailDir))
		return email.NewDevSender(c.cfg.DevEmailDir), nil
	case providerSMTP:
		var cfg smtp.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return smtp.New(cfg)
	case providerPostmark:
		var cfg postmark.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return postmark.New(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, c.cfg.EmailProvider)
	}
}

// newStorage returns nil when archiving is disabled.
func (c *CLI) newStorage(ctx context.Context) (storage.Storage, error) {
	switch c.cfg.StorageDriver {
	case storageNone, "":
		return nil, nil
	case storageLocal:
		return storage.NewLocalStorage(c.cfg.StorageLocalDir, storage.WithBaseURL(c.cfg.StorageBaseURL))
	case storageS3:
		var cfg s3.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return s3.New(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, c.cfg.StorageDriver)
	}
}

func (c *CLI) newMailer(ctx context.Context) (*mailer.Service, error) {
	sender, err := c.newSender()
	if err != nil {
		return nil, err
	}
	store, err := c.newStorage(ctx)
	if err != nil {
		return nil, err
	}

	opts := []mailer.Option{mailer.WithLogger(c.Logger)}
	if store != nil {
		opts = append(opts, mailer.WithStorage(store))
	}
	return mailer.New(sender, opts...), nil
}

// previewStore bundles a store with its background work and teardown.
type previewStore struct {
	preview.Store
	run    func(context.Context) error
	closer io.Closer
	checks []health.Check
}

func (c *CLI) newPreviewStore(ctx context.Context) (*previewStore, error) {
	opts := []preview.Option{preview.WithTTL(c.cfg.PreviewTTL)}

	switch c.cfg.PreviewStore {
	case previewMemory, "":
		store := preview.NewMemoryStore(opts...)
		interval := c.cfg.PreviewCleanupInterval
		return &previewStore{
			Store: store,
			run: func(ctx context.Context) error {
				if interval <= 0 {
					<-ctx.Done()
					return ctx.Err()
				}
				return store.Run(ctx, interval)
			},
		}, nil
	case previewRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &previewStore{
			Store:  preview.NewRedisStore(client, opts...),
			closer: client,
			checks: []health.Check{redis.Healthcheck(client)},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreviewStore, c.cfg.PreviewStore)
	}
}

func (p *previewStore) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
