// Package storage provides the object-storage implementation for product images.
package storage

import (
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/s3blob" // register the s3:// bucket scheme
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type s3ImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and returns it as a service.ImageStorage.
func New(params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &s3ImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Store uploads an image payload under a key namespaced by the product ID.
// The original filename only contributes its extension.
func (s *s3ImageStorage) Store(ctx context.Context, payload []byte, contentType, filename string, productID uuid.UUID) (*service.StoredImage, error) {
	key := imageKey(productID, filename)

	err := s.bucket.WriteAll(ctx, key, payload, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write image blob %s", key)
	}

	return &service.StoredImage{
		URL: s.publicBaseURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes a blob by key. Failures are logged and suppressed so that a
// missing or unreachable blob never blocks catalog writes.
func (s *s3ImageStorage) Delete(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to delete image blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// SignedURL returns a time-limited URL for reading a blob.
func (s *s3ImageStorage) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: ttl,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign URL for blob %s", key)
	}

	return signed, nil
}

func imageKey(productID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return "products/" + productID.String() + "/" + strconv.FormatInt(time.Now().UnixNano(), 10) + ext
}
