package cli

import "time"

// Config selects the adapters used by send and serve.
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"pretty"`

	// EmailProvider is dev, smtp or postmark.
	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"dev"`
	DevEmailDir   string `env:"DEV_EMAIL_DIR" envDefault:"./tmp/emails"`

	// StorageDriver is none, local or s3.
	StorageDriver   string `env:"STORAGE_DRIVER" envDefault:"none"`
	StorageLocalDir string `env:"STORAGE_LOCAL_DIR" envDefault:"./tmp/archive"`
	StorageBaseURL  string `env:"STORAGE_BASE_URL"`

	// PreviewStore is memory or redis.
	PreviewStore           string        `env:"PREVIEW_STORE" envDefault:"memory"`
	PreviewTTL             time.Duration `env:"PREVIEW_TTL" envDefault:"24h"`
	PreviewCleanupInterval time.Duration `env:"PREVIEW_CLEANUP_INTERVAL" envDefault:"5m"`

	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

const (
	providerDev      = "dev"
	providerSMTP     = "smtp"
	providerPostmark = "postmark"

	storageNone  = "none"
	storageLocal = "local"
	storageS3    = "s3"

	previewMemory = "memory"
	previewRedis  = "redis"

	formatPretty = "pretty"
)
