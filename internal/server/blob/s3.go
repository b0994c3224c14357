// Package blob issues presigned transfer URLs for submission attachments
// on an S3-compatible object store.
package blob

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrInvalidName is returned for object names that are empty or try to
// escape the caller's prefix.
var ErrInvalidName = errors.New("invalid object name")

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Options configures S3Store.
type Options struct {
	User     string
	Password string
	Bucket   string
	Region   string
	Endpoint string
	// PublicBaseURL, when set, is used to build unsigned public links.
	PublicBaseURL string
	Expiry        time.Duration
}

type S3Store struct {
	opts    Options
	presign *s3.PresignClient
}

// NewS3Store builds the presign client once. No request is sent.
func NewS3Store(ctx context.Context, opts Options) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if opts.Expiry <= 0 {
		opts.Expiry = 15 * time.Minute
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.User, opts.Password, "")),
	)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Store{opts: opts, presign: newS3PresignClient(client)}, nil
}

// ObjectKey places name under the owner's prefix.
func ObjectKey(ownerID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" || name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return path.Join(ownerID, name), nil
}

// PresignUpload returns a URL the caller can PUT the object to.
func (s *S3Store) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(s.presign, ctx, in, s3.WithPresignExpires(s.opts.Expiry))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}
	return req.URL, nil
}

// PublicURL returns a link to read the object: an unsigned link under
// PublicBaseURL when configured, a presigned GET otherwise.
func (s *S3Store) PublicURL(ctx context.Context, key string) (string, error) {
	if s.opts.PublicBaseURL != "" {
		base, err := url.Parse(strings.TrimRight(s.opts.PublicBaseURL, "/"))
		if err != nil {
			return "", fmt.Errorf("public base url: %w", err)
		}
		return base.JoinPath(s.opts.Bucket, key).String(), nil
	}

	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.opts.Expiry))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}
