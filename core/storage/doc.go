// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the
// application needs: checking and creating the chunk bucket, uploading
// chunks, and reading them back. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit
// tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
