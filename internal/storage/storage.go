package storage

import (
	"context"
)

type FileStorage interface {
	Upload(ctx context.Context, objectKey string, data []byte, contentType string) error

	Download(ctx context.Context, objectKey string) ([]byte, error)

	Delete(ctx context.Context, objectKey string) error
}
