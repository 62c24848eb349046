package storage

import (
	"context"
	"fmt"

	"cfp_agreements/internal/infrastructure/config"
	"cfp_agreements/internal/usecase/interfaces"
)

// New builds the signature store selected by BLOB_DRIVER.
func New(ctx context.Context, cfg config.Config) (interfaces.ISignatureStore, error) {
	switch cfg.BlobDriver {
	case config.BlobS3:
		return NewS3Store(ctx, S3Config{
			Region:    cfg.AWSRegion,
			Bucket:    cfg.BlobBucket,
			Endpoint:  cfg.BlobEndpoint,
			AccessKey: cfg.BlobAccessKey,
			SecretKey: cfg.BlobSecretKey,
			URLExpiry: cfg.BlobURLExpiry,
		})
	case config.BlobMinio:
		store, err := NewMinioStore(MinioConfig{
			Endpoint:  cfg.BlobEndpoint,
			AccessKey: cfg.BlobAccessKey,
			SecretKey: cfg.BlobSecretKey,
			UseSSL:    cfg.BlobUseSSL,
			Bucket:    cfg.BlobBucket,
			URLExpiry: cfg.BlobURLExpiry,
		})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case config.BlobMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported blob driver %q", cfg.BlobDriver)
	}
}
