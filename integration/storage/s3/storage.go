package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/blockmail/core/storage"
)

var _ storage.Storage = (*Storage)(nil)

// Client is the part of *s3.Client the archive needs.
type Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3aws.DeleteObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error)
}

// Config describes the bucket rendered emails are archived to.
// Endpoint targets S3 compatible services such as MinIO or R2; MinIO also
// needs ForcePathStyle. BaseURL makes URL point at a CDN in front of the bucket.
type Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`
	BaseURL        string `env:"S3_BASE_URL"`
	Prefix         string `env:"S3_PREFIX" envDefault:"blockmail"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`
}

// Storage archives objects in an S3 bucket under a fixed key prefix.
type Storage struct {
	client        Client
	cfg           Config
	prefix        string
	uploadTimeout time.Duration
}

// New builds a Storage for cfg. Static credentials are used when both keys
// are set, otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: bucket and region are required", storage.ErrInvalidConfig)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		var err error
		if client, err = newClient(ctx, cfg, o); err != nil {
			return nil, err
		}
	}

	return &Storage{
		client:        client,
		cfg:           cfg,
		prefix:        strings.Trim(cfg.Prefix, "/"),
		uploadTimeout: o.uploadTimeout,
	}, nil
}

func newClient(ctx context.Context, cfg Config, o *options) (*s3aws.Client, error) {
	load := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")
		load = append(load, config.WithCredentialsProvider(creds))
	}
	if o.httpClient != nil {
		load = append(load, config.WithHTTPClient(o.httpClient))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, append(load, o.loadOptions...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", storage.ErrInvalidConfig, err)
	}

	return s3aws.NewFromConfig(awsCfg, func(so *s3aws.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle
		for _, fn := range o.clientOptions {
			fn(so)
		}
	}), nil
}

// Put uploads the object. The body is buffered so the request carries an
// exact Content-Length; rendered emails are small enough for that.
func (s *Storage) Put(ctx context.Context, key string, r io.Reader, contentType string) (*storage.Object, error) {
	key, err := storage.CleanKey(key)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrFailedToRead, err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	size := int64(len(body))
	if _, err := s.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:        s.bucket(),
		Key:           s.objectKey(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}); err != nil {
		return nil, wrapError("upload file", err)
	}

	return &storage.Object{Key: key, ContentType: contentType, Size: size}, nil
}

// Get opens the object stored under key. The caller closes the body.
func (s *Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	key, err := storage.CleanKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{Bucket: s.bucket(), Key: s.objectKey(key)})
	if err != nil {
		return nil, wrapError("get file", err)
	}
	return out.Body, nil
}

// Delete reports ErrFileNotFound for a missing key, like the local
// backend, even though S3 itself treats that as success.
func (s *Storage) Delete(ctx context.Context, key string) error {
	key, err := storage.CleanKey(key)
	if err != nil {
		return err
	}

	if _, err := s.client.HeadObject(ctx, &s3aws.HeadObjectInput{Bucket: s.bucket(), Key: s.objectKey(key)}); err != nil {
		return wrapError("check file", err)
	}
	if _, err := s.client.DeleteObject(ctx, &s3aws.DeleteObjectInput{Bucket: s.bucket(), Key: s.objectKey(key)}); err != nil {
		return wrapError("delete file", err)
	}
	return nil
}

// Exists reports whether a HEAD request for key succeeds.
func (s *Storage) Exists(ctx context.Context, key string) bool {
	key, err := storage.CleanKey(key)
	if err != nil {
		return false
	}
	_, err = s.client.HeadObject(ctx, &s3aws.HeadObjectInput{Bucket: s.bucket(), Key: s.objectKey(key)})
	return err == nil
}

// URL returns the public address of key. BaseURL wins when set. Otherwise
// the custom endpoint or the regional AWS host is used, with the bucket in
// the path or in the host name depending on ForcePathStyle.
func (s *Storage) URL(key string) string {
	objectKey := aws.ToString(s.objectKey(strings.TrimPrefix(key, "/")))
	if s.cfg.BaseURL != "" {
		return storage.JoinURL(s.cfg.BaseURL, objectKey)
	}

	scheme, host := "https", "s3."+s.cfg.Region+".amazonaws.com"
	if s.cfg.Endpoint != "" {
		host = strings.TrimSuffix(s.cfg.Endpoint, "/")
		if u, err := url.Parse(host); err == nil && u.Host != "" {
			scheme, host = u.Scheme, u.Host
		}
	}

	u := url.URL{Scheme: scheme, Host: s.cfg.Bucket + "." + host, Path: "/" + objectKey}
	if s.cfg.ForcePathStyle {
		u.Host = host
		u.Path = path.Join("/", s.cfg.Bucket, objectKey)
	}
	return u.String()
}

func (s *Storage) bucket() *string { return aws.String(s.cfg.Bucket) }

func (s *Storage) objectKey(key string) *string {
	if s.prefix == "" {
		return aws.String(key)
	}
	return aws.String(s.prefix + "/" + key)
}
