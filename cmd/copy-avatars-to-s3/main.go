// One-off migration: copies the avatars stored on disk into the S3 bucket so AVATAR_S3_BUCKET can
// be switched on without losing uploaded profile pictures.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fairfinder/fair-finder/pkg/avatar"
	"github.com/fairfinder/fair-finder/pkg/config"
	"github.com/fairfinder/fair-finder/pkg/storage"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	if !cfg.Avatar.UseS3() {
		log.Fatal("AVATAR_S3_BUCKET is not set")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	s3Client, err := setupS3Client(ctx, cfg.Avatar)
	if err != nil {
		log.Fatalf("s3 client setup: %v", err)
	}

	from, err := avatar.NewDiskStore(logger, cfg.Avatar.Directory)
	if err != nil {
		log.Fatalf("disk store setup: %v", err)
	}
	to := avatar.NewS3Store(storage.NewS3Client(logger, s3Client, manager.NewUploader(s3Client)), cfg.Avatar.S3Bucket)

	copied, err := avatar.Copy(ctx, logger, from, to)
	if err != nil {
		log.Fatalf("Copy failed after %d avatars: %v", copied, err)
	}
	logger.Info("Copied avatars", "count", copied, "bucket", cfg.Avatar.S3Bucket)
}

func setupS3Client(ctx context.Context, c config.Avatar) (*s3.Client, error) {
	awsConfig, err := s3config.LoadDefaultConfig(ctx, s3config.WithRegion(c.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %v", err)
	}
	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if c.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(c.S3Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
