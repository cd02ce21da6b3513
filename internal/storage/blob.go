// Package storage provides the blob store client used to fetch the source
// workbook from Google Cloud Storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"mpreview/internal/config"
)

// ErrEmptyObject is returned when the downloaded object contains no bytes.
var ErrEmptyObject = errors.New("storage: object is empty")

// GCSClient wraps the Google Cloud Storage client with the operations the
// service needs.
type GCSClient struct {
	client  *gcs.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewGCSClient creates a storage client. When a credentials file is
// configured it is used explicitly, otherwise application default
// credentials apply.
func NewGCSClient(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*GCSClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSClient{
		client:  client,
		timeout: cfg.DownloadTimeout,
		logger:  logger.With(slog.String("component", "storage")),
	}, nil
}

// Download fetches the full contents of an object.
func (c *GCSClient) Download(ctx context.Context, bucket, object string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.InfoContext(ctx, "downloading object",
		slog.String("bucket", bucket),
		slog.String("object", object))

	reader, err := c.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s/%s: %w", bucket, object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s/%s: %w", bucket, object, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("object %s/%s: %w", bucket, object, ErrEmptyObject)
	}

	c.logger.InfoContext(ctx, "object downloaded",
		slog.String("object", object),
		slog.Int("bytes", len(data)))

	return data, nil
}

// Close releases the underlying client.
func (c *GCSClient) Close() error {
	return c.client.Close()
}
