// Package publish uploads exported decks to S3-compatible object storage
// and hands out time-limited download links.
package publish

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/deckkeeper/internal/netx"
	"github.com/google/uuid"
)

var ErrDisabled = errors.New("publishing is not configured")

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

	upload = netx.PutPresigned
)

type Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	LinkTTL   time.Duration
}

type Publisher struct {
	cfg  Config
	http *http.Client
	now  func() time.Time
}

func NewPublisher(cfg Config) *Publisher {
	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = 24 * time.Hour
	}
	return &Publisher{cfg: cfg, http: &http.Client{Timeout: time.Minute}, now: time.Now}
}

// Enabled reports whether a bucket is configured.
func (p *Publisher) Enabled() bool { return p.cfg.Bucket != "" }

// ObjectKey places an export under a dated prefix with a unique segment.
func (p *Publisher) ObjectKey(name string) string {
	d := p.now()
	return fmt.Sprintf("exports/%d/%02d/%02d/%s/%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), path.Base(name))
}

func (p *Publisher) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(p.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.cfg.AccessKey,
			p.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if p.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(p.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// Publish uploads body as name and returns a presigned GET URL valid for
// the configured link TTL.
func (p *Publisher) Publish(ctx context.Context, name, contentType string, body []byte) (string, error) {
	if !p.Enabled() {
		return "", ErrDisabled
	}

	pc, err := p.presignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := p.cfg.Bucket
	key := p.ObjectKey(name)

	put, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := upload(ctx, p.http, put.URL, contentType, body); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	get, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(p.cfg.LinkTTL))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}

	return get.URL, nil
}
