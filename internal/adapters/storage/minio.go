package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ArtifactStore uploads exported report artifacts to an S3-compatible bucket
type ArtifactStore struct {
	client *minio.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewArtifactStore connects to the object store and ensures the bucket exists
func NewArtifactStore(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool, logger *zap.Logger) (*ArtifactStore, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &ArtifactStore{
		client: cli,
		bucket: bucket,
		region: region,
		logger: logger,
	}, nil
}

// Upload stores a local artifact under the given key and returns its URL
func (s *ArtifactStore) Upload(ctx context.Context, localPath, key string) (string, error) {
	_, err := s.client.FPutObject(ctx, s.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentTypeFor(localPath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artifact: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key)
	s.logger.Info("Uploaded report artifact",
		zap.String("key", key),
		zap.String("bucket", s.bucket))
	return url, nil
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
