// Package s3 implements storage.Storage on Amazon S3 and S3 compatible
// services. It archives rendered email bodies and exported previews.
//
// # Usage
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket: "mail-archive",
//		Region: "eu-central-1",
//		Prefix: "blockmail",
//	})
//	if err != nil {
//		return err
//	}
//
//	obj, err := store.Put(ctx, "sent/2025/03/1f0c.html", strings.NewReader(html), "text/html; charset=utf-8")
//	url := store.URL(obj.Key) // https://mail-archive.s3.eu-central-1.amazonaws.com/blockmail/sent/2025/03/1f0c.html
//
// Keys passed to the storage are relative to Prefix; the returned Object
// carries the relative key.
//
// # S3-Compatible Services
//
// MinIO configuration:
//
//	cfg := s3.Config{
//		Bucket:         "my-bucket",
//		Region:         "us-east-1",
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// # Errors
//
// SDK failures wrap a storage sentinel such as ErrFileNotFound or
// ErrAccessDenied when one applies. The SDK error stays in the chain,
// so errors.As still finds smithy.APIError.
//
// WithClient replaces the AWS client with any Client implementation.
package s3
