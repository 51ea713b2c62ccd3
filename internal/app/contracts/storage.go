package contracts

import (
	"context"
	"io"
	"time"
)

type StoredObject struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error
	ListObjects(ctx context.Context, bucketName, prefix string) ([]StoredObject, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
