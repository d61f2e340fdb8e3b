package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/classikwoods/site-backend/config"
	"github.com/classikwoods/site-backend/internal/uploads"
)

func NewUploader(ctx context.Context, cfg config.StorageConfig) (*uploads.S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return uploads.NewS3Uploader(client, cfg.Bucket, cfg.Region, cfg.PublicBaseURL), nil
}
