package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader distributes generated per-leader workbooks to an S3 bucket.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
	Prefix string
	Logger *slog.Logger
}

// NewS3Uploader creates a new uploader.
func NewS3Uploader(cfg aws.Config, bucket, prefix string, logger *slog.Logger) *S3Uploader {
	if logger == nil {
		logger = slog.Default()
	}
	return &S3Uploader{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
		Prefix: prefix,
		Logger: logger,
	}
}

// UploadOutputs uploads each generated workbook from a split summary,
// keyed by its filename under the configured prefix.
func (u *S3Uploader) UploadOutputs(ctx context.Context, summary *Summary) error {
	for leader, path := range summary.Outputs {
		key := u.keyFor(filepath.Base(path))
		if err := u.UploadFile(ctx, path, key); err != nil {
			return fmt.Errorf("uploading workbook for %s: %w", leader, err)
		}
	}
	return nil
}

// UploadFile uploads a single file to S3.
func (u *S3Uploader) UploadFile(ctx context.Context, localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer file.Close()

	u.Logger.Info("uploading to S3", "local", localPath, "bucket", u.Bucket, "key", key)

	_, err = u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.Bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3: %w", err)
	}
	return nil
}

func (u *S3Uploader) keyFor(name string) string {
	key := filepath.ToSlash(filepath.Join(u.Prefix, name))
	return strings.TrimPrefix(key, "/")
}
