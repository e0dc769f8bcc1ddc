package chunk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"wordle-web/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// List returns the chunk names found under prefix in fsys, sorted.
func List(fsys fs.FS, prefix string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}

// CheckBucket returns the names whose chunk object is missing from bucket.
func CheckBucket(ctx context.Context, client storage.Client, bucket, prefix string, names []string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var missing []string
	for _, name := range names {
		_, err := client.StatObject(ctx, bucket, ObjectName(prefix, name), minio.StatObjectOptions{})
		if err == nil {
			continue
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return nil, fmt.Errorf("failed to stat chunk %s: %w", name, err)
		}
		missing = append(missing, name)
	}
	return missing, nil
}

// Publish uploads the named chunks from fsys to bucket, creating the bucket
// when it does not exist yet.
func Publish(ctx context.Context, client storage.Client, bucket, prefix string, fsys fs.FS, names []string, logger *zap.Logger) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	var errs []error
	for _, name := range names {
		objectName := ObjectName(prefix, name)
		data, err := fs.ReadFile(fsys, path.Join(prefix, name+Extension))
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", name, err))
			continue
		}

		_, err = client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType:  "text/html; charset=utf-8",
			CacheControl: "no-cache",
		})
		if err != nil {
			logger.Error("Failed to publish chunk", zap.String("chunk", name), zap.Error(err))
			errs = append(errs, fmt.Errorf("upload %s: %w", name, err))
			continue
		}
		logger.Info("Published chunk", zap.String("chunk", name), zap.String("object", objectName), zap.Int("bytes", len(data)))
	}
	return errors.Join(errs...)
}
