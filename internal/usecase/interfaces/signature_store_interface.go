package interfaces

import "context"

// ISignatureStore stores signature images and returns a URL they can be
// fetched from.
type ISignatureStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
	Delete(ctx context.Context, key string) error
}
