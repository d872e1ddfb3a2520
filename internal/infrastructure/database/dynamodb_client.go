package database

import (
	"context"

	appconfig "contractor_escrow/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewAWSConfig builds the shared AWS configuration.
//
// Static credentials are always set: DynamoDB Local and MinIO ignore them, but the SDK
// refuses to sign without them.
func NewAWSConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

// ConnectDynamoDB creates a DynamoDB client, pointed at endpoint when one is set
// (e.g. http://dynamodb:8000).
func ConnectDynamoDB(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// ConnectS3 creates an S3 client. A custom endpoint switches to path-style addressing.
func ConnectS3(awsCfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}
