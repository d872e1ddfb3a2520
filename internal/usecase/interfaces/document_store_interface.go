package interfaces

import (
	"context"
	"time"
)

// IDocumentStore issues upload URLs for dispute resolution documents.
type IDocumentStore interface {
	PresignUpload(ctx context.Context, key, contentType string) (uploadURL string, expiresIn time.Duration, err error)
	ObjectURL(key string) string
}
