package s3

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Option adjusts how New builds the store.
type Option func(*options)

type options struct {
	client        Client
	httpClient    *http.Client
	loadOptions   []func(*config.LoadOptions) error
	clientOptions []func(*s3aws.Options)
	uploadTimeout time.Duration
}

// WithClient skips AWS config loading and uses c directly.
func WithClient(c Client) Option {
	return func(o *options) { o.client = c }
}

// WithHTTPClient sets the HTTP client used by the AWS SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLoadOption passes fn to config.LoadDefaultConfig.
func WithLoadOption(fn func(*config.LoadOptions) error) Option {
	return func(o *options) { o.loadOptions = append(o.loadOptions, fn) }
}

// WithClientOption passes fn to s3.NewFromConfig.
func WithClientOption(fn func(*s3aws.Options)) Option {
	return func(o *options) { o.clientOptions = append(o.clientOptions, fn) }
}

// WithUploadTimeout bounds each Put. Zero leaves the caller's deadline in charge.
func WithUploadTimeout(d time.Duration) Option {
	return func(o *options) { o.uploadTimeout = d }
}
