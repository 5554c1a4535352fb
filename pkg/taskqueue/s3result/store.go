// Package s3result declares a Store for offloading task results too large
// for a JSON render frame, and S3Store, an implementation that writes each
// result to an S3 bucket under a freshly generated opaque key and hands
// back a presigned GET URL for it. Stored objects are not deleted by this
// package, and a presigned URL can be fetched any number of times until it
// expires.
package s3result

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store persists an oversized task result out-of-band and returns a
// reference a with-task hook's Option[result] can carry instead of the
// payload itself.
type Store interface {
	Put(ctx context.Context, contentType string, body []byte) (ref string, err error)
	URL(ctx context.Context, ref string) (string, error)
}

// S3Store is the default Store, backed by an S3-compatible bucket.
type S3Store struct {
	client    *s3.Client
	bucket    string
	prefix    string
	urlExpiry time.Duration
}

// NewS3Store wires an already-configured S3 client to a bucket/prefix pair.
// Result objects live under prefix and are addressed by an opaque ref this
// store generates, never by a caller-chosen name.
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix, urlExpiry: time.Hour}
}

// WithURLExpiry overrides the default one-hour presigned URL lifetime.
func (s *S3Store) WithURLExpiry(d time.Duration) *S3Store {
	s.urlExpiry = d
	return s
}

// Put uploads body under a freshly generated key and returns that key as
// the opaque ref callers pass back to URL.
func (s *S3Store) Put(ctx context.Context, contentType string, body []byte) (string, error) {
	ref := s.generateRef()
	key := s.prefix + ref
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3result: upload failed: %w", err)
	}
	return ref, nil
}

// URL returns a time-limited presigned URL for a previously Put ref.
func (s *S3Store) URL(ctx context.Context, ref string) (string, error) {
	presignClient := s3.NewPresignClient(s.client)
	result, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + ref),
	}, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return "", fmt.Errorf("s3result: presign failed: %w", err)
	}
	return result.URL, nil
}

func (s *S3Store) generateRef() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
