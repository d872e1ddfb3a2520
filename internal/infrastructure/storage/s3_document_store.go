package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var ErrMissingBucket = errors.New("missing RESOLUTION_DOCS_BUCKET")

// Presigner is the part of *s3.PresignClient the store needs.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3DocumentStore hands out presigned PUT URLs for dispute resolution documents.
type S3DocumentStore struct {
	presigner Presigner
	bucket    string
	region    string
	endpoint  string
	ttl       time.Duration
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

// NewS3DocumentStore builds a store. endpoint is only set for S3-compatible local stacks
// and switches object URLs to path style.
func NewS3DocumentStore(presigner Presigner, bucket, region, endpoint string, ttl time.Duration) (*S3DocumentStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, ErrMissingBucket
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3DocumentStore{
		presigner: presigner,
		bucket:    bucket,
		region:    region,
		endpoint:  strings.TrimRight(endpoint, "/"),
		ttl:       ttl,
	}, nil
}

func (s *S3DocumentStore) PresignUpload(ctx context.Context, key, contentType string) (string, time.Duration, error) {
	input := &s3.PutObjectInput{
		Bucket:               aws.String(s.bucket),
		Key:                  aws.String(key),
		ContentType:          aws.String(contentType),
		ServerSideEncryption: types.ServerSideEncryptionAes256,
	}

	req, err := s.presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) { o.Expires = s.ttl })
	if err != nil {
		log.Printf("[documents][s3] presign failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", 0, err
	}
	log.Printf("[documents][s3] presigned bucket=%s key=%s ttl=%s", s.bucket, key, s.ttl)
	return req.URL, s.ttl, nil
}

func (s *S3DocumentStore) ObjectURL(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
