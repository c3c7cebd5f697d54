package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	feedapp "github.com/shopfeed/backend/internal/application/feed"
	infraconfig "github.com/shopfeed/backend/internal/infrastructure/config"
)

// Ensure S3Publisher implements the feed Publisher contract
var _ feedapp.Publisher = (*S3Publisher)(nil)

// S3Publisher uploads finished feed files to an S3-compatible bucket.
// It works with AWS S3, MinIO, RustFS and similar backends. The upload
// happens only after the export succeeded, so the bucket never holds a
// partial feed.
type S3Publisher struct {
	client    *s3.Client
	bucket    string
	objectKey string
	logger    *zap.Logger
}

// S3PublisherOption is a functional option for configuring S3Publisher
type S3PublisherOption func(*S3Publisher)

// WithLogger sets a custom logger for S3Publisher
func WithLogger(logger *zap.Logger) S3PublisherOption {
	return func(p *S3Publisher) {
		p.logger = logger
	}
}

// NewS3Publisher creates a new S3Publisher from configuration
func NewS3Publisher(cfg *infraconfig.StorageConfig, opts ...S3PublisherOption) (*S3Publisher, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	endpoint, err := normalizeEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"", // session token (not used for static credentials)
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	publisher := &S3Publisher{
		client:    client,
		bucket:    cfg.Bucket,
		objectKey: cfg.ObjectKey,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(publisher)
	}
	return publisher, nil
}

// normalizeEndpoint prefixes a bare host:port endpoint with the scheme
// implied by useSSL. An empty endpoint means the default AWS endpoints.
func normalizeEndpoint(endpoint string, useSSL bool) (string, error) {
	if endpoint == "" {
		return "", nil
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		if useSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}
	if _, err := url.Parse(endpoint); err != nil {
		return "", fmt.Errorf("invalid storage endpoint: %w", err)
	}
	return endpoint, nil
}

// Publish uploads the staged feed file and returns its object location
func (p *S3Publisher) Publish(ctx context.Context, sourcePath string) (string, error) {
	file, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open staged feed: %w", err)
	}
	defer file.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.objectKey),
		Body:        file,
		ContentType: aws.String("application/xml"),
	})
	if err != nil {
		return "", fmt.Errorf("upload feed to bucket %s: %w", p.bucket, err)
	}

	location := fmt.Sprintf("s3://%s/%s", p.bucket, p.objectKey)
	p.logger.Info("feed published", zap.String("location", location))

	// The staged copy is no longer needed once the upload succeeded
	if err := os.Remove(sourcePath); err != nil {
		p.logger.Warn("failed to remove staged feed", zap.Error(err))
	}
	return location, nil
}
